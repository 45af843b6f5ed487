package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleDoctor     = "doctor"
	RoleIndividual = "individual"
)

// ValidRole reports whether role is one of the three supported roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleDoctor || role == RoleIndividual
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:individual" json:"role"`

	ProfilePictureURL string `json:"profilePictureUrl"`
	City              string `json:"city"`
	State             string `json:"state"`
	Country           string `json:"country"`
	Description       string `json:"description"`
	University        string `json:"university"`
	// Speciality is only meaningful for doctor accounts.
	Speciality string `json:"speciality"`

	CreatedAt time.Time `json:"createdAt"`
}
