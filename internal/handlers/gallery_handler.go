package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/promptgallery/backend/internal/services"
	"gorm.io/gorm"
)

type GalleryHandler struct {
	imageService    *services.ImageService
	categoryService *services.CategoryService
	shareService    *services.ShareService
}

func NewGalleryHandler(imageService *services.ImageService, categoryService *services.CategoryService, shareService *services.ShareService) *GalleryHandler {
	return &GalleryHandler{
		imageService:    imageService,
		categoryService: categoryService,
		shareService:    shareService,
	}
}

// GetImages returns the public gallery (≤50 rows, joined username)
// GET /api/images
func (h *GalleryHandler) GetImages(c *gin.Context) {
	images, err := h.imageService.ListRecent()
	if err != nil {
		log.Printf("Error fetching images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetUserImages returns all images of one user
// GET /api/user/:userId/images
func (h *GalleryHandler) GetUserImages(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	images, err := h.imageService.ListByUser(userID)
	if err != nil {
		log.Printf("Error fetching user images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetCategories returns the static category list
// GET /api/categories
func (h *GalleryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// DeleteImage deletes an image by id; a missing id still reports success
// DELETE /api/images/:id
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.imageService.Delete(imageID); err != nil {
		log.Printf("Error deleting image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetImageQRPDF exports a share PDF with a QR code for the image URL
// GET /api/images/:id/qr.pdf
func (h *GalleryHandler) GetImageQRPDF(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	image, err := h.imageService.GetByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		log.Printf("Error loading image for QR export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load image"})
		return
	}

	pdf, err := h.shareService.GenerateImageQRPDF(image)
	if err != nil {
		log.Printf("Error generating QR PDF: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=image-%d-qr.pdf", image.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// parseIDParam reads a positive numeric path parameter, answering 400 itself
// when the value is malformed.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return 0, false
	}
	return uint(value), true
}
