package repos

import (
	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
)

func CreateContactMessage(message *models.ContactMessage) error {
	if err := db.DB.Create(message).Error; err != nil {
		return apperrors.NewInternal("Failed to create contact message", err)
	}

	return nil
}

func FindContactMessageByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage

	if err := db.DB.First(&message, id).Error; err != nil {
		return nil, translate(err, "Contact message not found")
	}

	return &message, nil
}

func ListContactMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage

	if err := db.DB.Find(&messages).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve contact messages", err)
	}

	return messages, nil
}

func ListContactMessagesByUser(userID uint) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage

	if err := db.DB.Where("user_id = ?", userID).Find(&messages).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve contact messages", err)
	}

	return messages, nil
}
