package models

import "time"

type Comment struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	AuthorID *uint `gorm:"index" json:"authorId"`
	// AuthorName is a snapshot of the author's name at creation time.
	// It is not kept in sync with later name changes.
	AuthorName string    `json:"authorName"`
	Body       string    `json:"body"`
	PostID     uint      `gorm:"not null;index" json:"postId"`
	CreatedAt  time.Time `json:"createdAt"`
}
