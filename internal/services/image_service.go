package services

import (
	"github.com/promptgallery/backend/internal/models"
	"gorm.io/gorm"
)

const galleryLimit = 50

// ImageService owns read and delete access to the images table.
type ImageService struct {
	db *gorm.DB
}

func NewImageService(db *gorm.DB) *ImageService {
	return &ImageService{db: db}
}

// ListRecent returns the public gallery: newest images first, joined with the
// creator's username, capped at 50 rows.
func (s *ImageService) ListRecent() ([]models.GalleryImage, error) {
	images := []models.GalleryImage{}
	err := s.db.Table("images").
		Select("images.*, users.username").
		Joins("JOIN users ON users.id = images.user_id").
		Order("images.created_at DESC").
		Limit(galleryLimit).
		Scan(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// ListByUser returns all images of one user, newest first.
func (s *ImageService) ListByUser(userID uint) ([]models.Image, error) {
	images := []models.Image{}
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// GetByID loads a single image.
func (s *ImageService) GetByID(imageID uint) (*models.Image, error) {
	var image models.Image
	if err := s.db.First(&image, imageID).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// Delete removes an image by id. There is no existence or ownership check:
// deleting an id that affects zero rows still succeeds. Favorite rows go with
// the image via the cascade.
func (s *ImageService) Delete(imageID uint) error {
	return s.db.Delete(&models.Image{}, imageID).Error
}
