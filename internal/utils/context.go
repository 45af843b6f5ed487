package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/middleware"
	"github.com/serenity-space/serenity/internal/types"
)

// GetCurrentUserID reads the acting user's id out of the request
// context populated by the auth middleware. Handlers only ever need the
// id; the full user record stays in the middleware layer.
func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return 0, fmt.Errorf("User not authenticated")
	}

	user, ok := value.(middleware.AuthenticatedUser)

	if !ok {
		return 0, fmt.Errorf("Invalid user type in context")
	}

	return user.ID, nil
}
