package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(NewValidation("bad input")))
	assert.Equal(t, http.StatusNotFound, StatusCode(NewNotFound("missing")))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(NewAuth("nope")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(NewInternal("boom", nil)))
}

func TestStatusCodeUnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("raw store error")))
}

func TestStatusCodeWrapped(t *testing.T) {
	err := fmt.Errorf("loading post: %w", NewNotFound("Post not found"))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Equal(t, "Post not found", Message(err))
}

func TestMessageNeverLeaksInternals(t *testing.T) {
	cause := errors.New("pq: connection refused")
	assert.Equal(t, "Unexpected error", Message(cause))

	wrapped := NewInternal("Failed to retrieve posts", cause)
	assert.Equal(t, "Failed to retrieve posts", Message(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("missing")))
	assert.False(t, IsNotFound(NewValidation("bad")))
	assert.False(t, IsNotFound(errors.New("other")))
}
