package models

import "time"

type Post struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Image string `json:"image"`
	// Area is the legacy free-text area label; AreaID is the current reference.
	Area        string `json:"area"`
	AreaID      *uint  `gorm:"index" json:"areaId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`

	// AuthorID is stored as a plain identifier, not a GORM association.
	// Authors are resolved manually so a deleted user degrades to a
	// placeholder instead of failing the query.
	AuthorID *uint `gorm:"index" json:"authorId"`

	CreatedAt time.Time `json:"createdAt"`
	PostDate  time.Time `json:"postDate"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"comments"`
}
