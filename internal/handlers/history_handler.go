package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/promptgallery/backend/internal/services"
)

type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GetHistory returns the user's latest generation attempts (≤20)
// GET /api/user/:userId/history
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	entries, err := h.historyService.ListByUser(userID)
	if err != nil {
		log.Printf("Error fetching history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
