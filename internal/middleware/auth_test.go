package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/auth"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func doAuthRequest(t *testing.T, header string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)

	if header != "" {
		req.Header.Set("Authorization", header)
	}

	w := httptest.NewRecorder()
	authTestRouter().ServeHTTP(w, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return w, body
}

func TestAuthMissingHeader(t *testing.T) {
	w, body := doAuthRequest(t, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token not provided", body["error"])
}

func TestAuthMissingBearerPrefix(t *testing.T) {
	w, body := doAuthRequest(t, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer not defined", body["error"])
}

func TestAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	w, body := doAuthRequest(t, "Bearer not.a.valid.token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", body["error"])
}

func TestAuthInternalFaultYields500(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	token, err := auth.GenerateJWT(1)
	require.NoError(t, err)

	// valid token but no store connection: the gate reports an internal
	// fault instead of leaking a panic
	w, _ := doAuthRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthStoreFailureYields500NotUnauthenticated(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	// a handle whose dial fails on first use: the lookup error is a
	// store fault, not a missing user
	broken, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=serenity dbname=serenity sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	db.DB = broken
	t.Cleanup(func() { db.DB = nil })

	token, err := auth.GenerateJWT(1)
	require.NoError(t, err)

	w, body := doAuthRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Unexpected error", body["message"])
	assert.NotContains(t, body, "error")
}

func TestAuthDeletedUserYields401(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	store, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, store.AutoMigrate(&models.User{}))

	db.DB = store
	t.Cleanup(func() { db.DB = nil })

	// token is valid but its user no longer exists
	token, err := auth.GenerateJWT(9999)
	require.NoError(t, err)

	w, body := doAuthRequest(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthenticated", body["error"])
}
