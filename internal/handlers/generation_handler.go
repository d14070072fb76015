package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptgallery/backend/internal/middleware"
	"github.com/promptgallery/backend/internal/services"
)

type GenerationHandler struct {
	generationService *services.GenerationService
}

func NewGenerationHandler(generationService *services.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	UserID uint   `json:"userId"`
}

// Generate handles one generation attempt
// POST /api/generate
// Body: {prompt, userId?} — userId falls back to the bearer-token identity.
// The prompt is forwarded to the generator as-is, empty included.
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := req.UserID
	if userID == 0 {
		tokenUserID, ok := middleware.UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}
		userID = tokenUserID
	}

	result, err := h.generationService.Generate(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		log.Printf("Generation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Generation failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": result.ImageURL,
		"imageId":  result.ImageID,
	})
}
