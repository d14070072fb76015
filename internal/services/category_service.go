package services

import (
	"github.com/promptgallery/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryService serves the static category reference data.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns all categories. Order is unspecified.
func (s *CategoryService) List() ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// SeedDefaults inserts the default category set if missing. Idempotent.
func (s *CategoryService) SeedDefaults() error {
	defaults := []string{"Nature", "Portrait", "Abstract", "Sci-Fi", "Fantasy", "Architecture", "Animals"}
	for _, name := range defaults {
		category := models.Category{Name: name}
		if err := s.db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
