package repos

import (
	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
)

func CreateArea(area *models.HealthcareArea) error {
	if err := db.DB.Create(area).Error; err != nil {
		return apperrors.NewInternal("Failed to create healthcare area", err)
	}

	return nil
}

func FindAreaByID(id uint) (*models.HealthcareArea, error) {
	var area models.HealthcareArea

	if err := db.DB.Preload("Posts").First(&area, id).Error; err != nil {
		return nil, translate(err, "Healthcare area not found")
	}

	return &area, nil
}

func ListAreas() ([]models.HealthcareArea, error) {
	var areas []models.HealthcareArea

	if err := db.DB.Preload("Posts").Find(&areas).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve healthcare areas", err)
	}

	return areas, nil
}

func UpdateAreaByID(id uint, updates map[string]interface{}) (*models.HealthcareArea, error) {
	area, err := FindAreaByID(id)

	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.DB.Model(area).Updates(updates).Error; err != nil {
			return nil, apperrors.NewInternal("Failed to update healthcare area", err)
		}
	}

	return area, nil
}

func DeleteAreaByID(id uint) error {
	area, err := FindAreaByID(id)

	if err != nil {
		return err
	}

	if err := db.DB.Delete(area).Error; err != nil {
		return apperrors.NewInternal("Failed to delete healthcare area", err)
	}

	return nil
}
