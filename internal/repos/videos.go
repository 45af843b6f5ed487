package repos

import (
	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
	"gorm.io/gorm"
)

// VideoFilter scopes video queries. A nil AreaID means all areas.
type VideoFilter struct {
	AreaID *uint
}

func (f VideoFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.AreaID != nil {
		tx = tx.Where("area_id = ?", *f.AreaID)
	}

	return tx
}

func CreateVideo(video *models.Video) error {
	if err := db.DB.Create(video).Error; err != nil {
		return apperrors.NewInternal("Failed to create video", err)
	}

	return nil
}

// FindVideoByID resolves the video with its area reference populated.
func FindVideoByID(id uint) (*models.Video, error) {
	var video models.Video

	if err := db.DB.Preload("Area").First(&video, id).Error; err != nil {
		return nil, translate(err, "Video not found")
	}

	return &video, nil
}

func ListVideos(filter VideoFilter, opts ListOptions) ([]models.Video, error) {
	var videos []models.Video

	tx := applyListOptions(filter.apply(db.DB.Model(&models.Video{})), opts).Preload("Area")

	if err := tx.Find(&videos).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve videos", err)
	}

	return videos, nil
}

func CountVideos(filter VideoFilter) (int64, error) {
	var total int64

	if err := filter.apply(db.DB.Model(&models.Video{})).Count(&total).Error; err != nil {
		return 0, apperrors.NewInternal("Failed to count videos", err)
	}

	return total, nil
}

func UpdateVideoByID(id uint, updates map[string]interface{}) (*models.Video, error) {
	video, err := FindVideoByID(id)

	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.DB.Model(video).Updates(updates).Error; err != nil {
			return nil, apperrors.NewInternal("Failed to update video", err)
		}
	}

	return video, nil
}

func DeleteVideoByID(id uint) error {
	video, err := FindVideoByID(id)

	if err != nil {
		return err
	}

	if err := db.DB.Delete(video).Error; err != nil {
		return apperrors.NewInternal("Failed to delete video", err)
	}

	return nil
}
