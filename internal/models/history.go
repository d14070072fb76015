package models

import "time"

const (
	GenerationStatusSuccess = "success"
	GenerationStatusFailed  = "failed"
)

// GenerationHistoryEntry is the append-only log of generation attempts.
// Exactly one entry exists per attempt regardless of outcome; entries are
// never updated or deleted.
type GenerationHistoryEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Prompt    string    `gorm:"type:text;not null" json:"prompt"`
	Status    string    `gorm:"size:16;not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the original table name instead of gorm's pluralization.
func (GenerationHistoryEntry) TableName() string {
	return "generation_history"
}
