package repos

import (
	"errors"

	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
	"gorm.io/gorm"
)

func CreateUser(user *models.User) error {
	if err := db.DB.Create(user).Error; err != nil {
		return apperrors.NewInternal("Error registering user", err)
	}

	return nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User

	if err := db.DB.First(&user, id).Error; err != nil {
		return nil, translate(err, "User not found")
	}

	return &user, nil
}

// FindUserByEmail returns (nil, nil) when no user has the address, so
// callers can distinguish "absent" from a store failure.
func FindUserByEmail(email string) (*models.User, error) {
	var user models.User

	err := db.DB.Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, apperrors.NewInternal("Unexpected error", err)
	}

	return &user, nil
}

func ListUsers() ([]models.User, error) {
	var users []models.User

	if err := db.DB.Find(&users).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve users", err)
	}

	return users, nil
}

// FindUsersByIDs resolves a batch of author references in one query.
// Missing ids are simply absent from the result map.
func FindUsersByIDs(ids []uint) (map[uint]models.User, error) {
	index := make(map[uint]models.User, len(ids))

	if len(ids) == 0 {
		return index, nil
	}

	var users []models.User

	if err := db.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to resolve authors", err)
	}

	for _, user := range users {
		index[user.ID] = user
	}

	return index, nil
}

func UpdateUserByID(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := FindUserByID(id)

	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.DB.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.NewInternal("Error updating user", err)
		}
	}

	return user, nil
}

func DeleteUserByID(id uint) error {
	user, err := FindUserByID(id)

	if err != nil {
		return err
	}

	if err := db.DB.Delete(user).Error; err != nil {
		return apperrors.NewInternal("Error deleting user", err)
	}

	return nil
}
