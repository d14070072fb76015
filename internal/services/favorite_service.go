package services

import (
	"fmt"

	"github.com/promptgallery/backend/internal/models"
	"gorm.io/gorm"
)

// FavoriteService owns the favorites relation.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add bookmarks an image for a user. A second insert for the same pair is
// rejected by the unique index and comes back as models.ErrDuplicateFavorite;
// every other failure is passed through wrapped.
func (s *FavoriteService) Add(userID, imageID uint) error {
	favorite := &models.Favorite{UserID: userID, ImageID: imageID}
	if err := s.db.Create(favorite).Error; err != nil {
		if models.IsUniqueViolation(err) {
			return models.ErrDuplicateFavorite
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// ListByUser returns a user's favorited images, most recently favorited
// first, each carrying the favorite timestamp.
func (s *FavoriteService) ListByUser(userID uint) ([]models.FavoriteImage, error) {
	favorites := []models.FavoriteImage{}
	err := s.db.Table("favorites").
		Select("images.*, favorites.created_at AS favorited_at").
		Joins("JOIN images ON images.id = favorites.image_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Scan(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
