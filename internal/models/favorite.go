package models

import "time"

// Favorite bookmarks an image for a user. The composite unique index is the
// source of the "already in favorites" condition; deleting an image cascades
// to its favorite rows.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_image" json:"user_id"`
	ImageID   uint      `gorm:"not null;uniqueIndex:idx_user_image" json:"image_id"`
	CreatedAt time.Time `json:"created_at"`

	Image *Image `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE" json:"-"`
}

// FavoriteImage is the favorites-listing projection: the image plus the
// moment it was favorited.
type FavoriteImage struct {
	Image
	FavoritedAt time.Time `json:"favorited_at"`
}
