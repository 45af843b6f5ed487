package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/serenity-space/serenity/internal/repos"
	"github.com/serenity-space/serenity/internal/types"
	"github.com/serenity-space/serenity/internal/utils"
)

type UpdateUserRequest struct {
	Name              *string `json:"name"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Role              *string `json:"role"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

func ListUsers(ctx *gin.Context) {
	users, err := repos.ListUsers()

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, types.NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetUser(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "User not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	user, err := repos.FindUserByID(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(*user))
}

// UpdateUser merges only the provided fields; omitted fields are left
// untouched.
func UpdateUser(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "User not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	var req UpdateUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}

	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}

		updates["role"] = *req.Role
	}

	if req.ProfilePictureURL != nil {
		updates["profile_picture_url"] = *req.ProfilePictureURL
	}

	user, err := repos.UpdateUserByID(id, updates)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(*user))
}

func DeleteUser(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "User not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := repos.DeleteUserByID(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
