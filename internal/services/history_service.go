package services

import (
	"github.com/promptgallery/backend/internal/models"
	"gorm.io/gorm"
)

const historyLimit = 20

// HistoryService reads the append-only generation log. Writing happens in
// GenerationService; nothing ever updates or deletes entries.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// ListByUser returns the user's most recent attempts, newest first, capped at
// 20 rows.
func (s *HistoryService) ListByUser(userID uint) ([]models.GenerationHistoryEntry, error) {
	entries := []models.GenerationHistoryEntry{}
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
