package models

import "time"

// Image is one successfully generated image. ImageURL points at the external
// generator resource; bytes are never stored locally.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Prompt    string    `gorm:"type:text;not null" json:"prompt"`
	ImageURL  string    `gorm:"type:text;not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// GalleryImage is the public-gallery projection: an image joined with the
// username of its creator.
type GalleryImage struct {
	Image
	Username string `json:"username"`
}
