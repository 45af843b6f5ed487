package models

import "time"

type Video struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	AreaID      *uint  `gorm:"index" json:"areaId"`

	Area *HealthcareArea `gorm:"foreignKey:AreaID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"area,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
