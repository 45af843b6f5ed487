package repos

import (
	"errors"

	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
	"gorm.io/gorm"
)

func CreateSubscriber(subscriber *models.Subscriber) error {
	if err := db.DB.Create(subscriber).Error; err != nil {
		return apperrors.NewInternal("Subscription failed.", err)
	}

	return nil
}

// FindSubscriberByEmail returns (nil, nil) when the address is not
// subscribed.
func FindSubscriberByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber

	err := db.DB.Where("email = ?", email).First(&subscriber).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, apperrors.NewInternal("Unexpected error", err)
	}

	return &subscriber, nil
}

func ListSubscribers() ([]models.Subscriber, error) {
	var subscribers []models.Subscriber

	if err := db.DB.Find(&subscribers).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve subscribers.", err)
	}

	return subscribers, nil
}

func DeleteSubscriberByID(id uint) (*models.Subscriber, error) {
	var subscriber models.Subscriber

	if err := db.DB.First(&subscriber, id).Error; err != nil {
		return nil, translate(err, "Subscriber not found!")
	}

	if err := db.DB.Delete(&subscriber).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to delete subscriber.", err)
	}

	return &subscriber, nil
}
