package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/middleware"
	"github.com/serenity-space/serenity/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Set(types.ContextUserKey, middleware.AuthenticatedUser{ID: 42, Name: "Alice"})

	id, err := GetCurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestGetCurrentUserIDUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetCurrentUserID(ctx)
	assert.Error(t, err)
}

func TestGetCurrentUserIDWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Set(types.ContextUserKey, "not a user")

	_, err := GetCurrentUserID(ctx)
	assert.Error(t, err)
}
