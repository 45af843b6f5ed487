package models

import "time"

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Username  string    `gorm:"not null" json:"username"`
	Useremail string    `gorm:"not null" json:"useremail"`
	Message   string    `gorm:"not null" json:"message"`
	Date      time.Time `gorm:"autoCreateTime" json:"date"`
}
