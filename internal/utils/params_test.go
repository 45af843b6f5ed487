package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramContext(value string) *gin.Context {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Params = gin.Params{{Key: "id", Value: value}}

	return ctx
}

func TestGetIDParamValid(t *testing.T) {
	id, err := GetIDParam(paramContext("42"), "id", "Post not found")

	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestGetIDParamInvalidIsNotFound(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "0", "", "1.5", "66f3a1b9c2d4"} {
		_, err := GetIDParam(paramContext(raw), "id", "Post not found")

		require.Error(t, err, "value %q", raw)
		assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))
		assert.Equal(t, "Post not found", apperrors.Message(err))
	}
}
