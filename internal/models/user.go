package models

import "time"

// User is the acting identity referenced by images, favorites and history.
// This service never registers users; a demo account is seeded at startup.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
