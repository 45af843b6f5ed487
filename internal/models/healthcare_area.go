package models

import (
	"time"

	"gorm.io/datatypes"
)

type HealthcareArea struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	BannerImage string `json:"bannerImage"`
	// Videos is a JSON array of video URLs.
	Videos    datatypes.JSON `json:"videos"`
	CreatedAt time.Time      `json:"createdAt"`

	Posts []Post `gorm:"foreignKey:AreaID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"posts,omitempty"`
}
