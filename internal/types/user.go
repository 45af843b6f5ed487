package types

import (
	"time"

	"github.com/serenity-space/serenity/internal/models"
)

// UserResponse is the client-facing user shape. The password hash is
// never part of it.
type UserResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	ProfilePictureURL string    `json:"profilePictureUrl"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Country           string    `json:"country"`
	Description       string    `json:"description"`
	University        string    `json:"university"`
	Speciality        string    `json:"speciality"`
	CreatedAt         time.Time `json:"createdAt"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		Role:              user.Role,
		ProfilePictureURL: user.ProfilePictureURL,
		City:              user.City,
		State:             user.State,
		Country:           user.Country,
		Description:       user.Description,
		University:        user.University,
		Speciality:        user.Speciality,
		CreatedAt:         user.CreatedAt,
	}
}
