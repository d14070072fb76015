package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptgallery/backend/internal/models"
	"github.com/promptgallery/backend/internal/services"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

type addFavoriteRequest struct {
	UserID  uint `json:"userId" binding:"required"`
	ImageID uint `json:"imageId" binding:"required"`
}

// AddFavorite bookmarks an image for a user
// POST /api/favorites
// A duplicate pair is a 400, anything else a 500.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and imageId are required"})
		return
	}

	if err := h.favoriteService.Add(req.UserID, req.ImageID); err != nil {
		if errors.Is(err, models.ErrDuplicateFavorite) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already in favorites"})
			return
		}
		log.Printf("Error adding favorite: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetFavorites returns a user's favorited images, newest favorite first
// GET /api/user/:userId/favorites
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	favorites, err := h.favoriteService.ListByUser(userID)
	if err != nil {
		log.Printf("Error fetching favorites: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}
	c.JSON(http.StatusOK, favorites)
}
