package services

import (
	"context"
	"fmt"
	"log"

	"github.com/promptgallery/backend/internal/models"
	"gorm.io/gorm"
)

// GenerationService orchestrates one generation attempt: probe the external
// generator, then record the outcome. The image insert and the history insert
// are independent statements; callers must not assume atomicity across them.
type GenerationService struct {
	db        *gorm.DB
	generator *GeneratorService
}

// GenerationResult is what a successful attempt returns to the caller.
type GenerationResult struct {
	ImageID  uint
	ImageURL string
}

func NewGenerationService(db *gorm.DB, generator *GeneratorService) *GenerationService {
	return &GenerationService{db: db, generator: generator}
}

// Generate runs a single attempt for (userID, prompt). The prompt is
// forwarded as-is, empty included. On any failure — probe or primary write —
// a failed history entry is written best-effort and the original error is
// returned untouched.
func (s *GenerationService) Generate(ctx context.Context, userID uint, prompt string) (*GenerationResult, error) {
	// A client disconnect must not abort the probe or the writes; only the
	// probe timeout bounds the attempt.
	ctx = context.WithoutCancel(ctx)

	imageURL := s.generator.ImageURL(prompt)

	if err := s.generator.Probe(ctx, imageURL); err != nil {
		s.recordFailure(userID, prompt)
		return nil, err
	}

	image := &models.Image{
		UserID:   userID,
		Prompt:   prompt,
		ImageURL: imageURL,
	}
	if err := s.db.WithContext(ctx).Create(image).Error; err != nil {
		s.recordFailure(userID, prompt)
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	entry := &models.GenerationHistoryEntry{
		UserID: userID,
		Prompt: prompt,
		Status: models.GenerationStatusSuccess,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		// Image row already exists; this inconsistency is accepted.
		s.recordFailure(userID, prompt)
		return nil, fmt.Errorf("failed to save history: %w", err)
	}

	log.Printf("Image generated: %q (user %d, image %d)", prompt, userID, image.ID)
	return &GenerationResult{ImageID: image.ID, ImageURL: imageURL}, nil
}

// recordFailure appends a failed history entry. A persistence error here is
// logged and swallowed so it never masks the error that triggered it.
func (s *GenerationService) recordFailure(userID uint, prompt string) {
	entry := &models.GenerationHistoryEntry{
		UserID: userID,
		Prompt: prompt,
		Status: models.GenerationStatusFailed,
	}
	if err := s.db.Create(entry).Error; err != nil {
		log.Printf("Failed to record generation failure: %v", err)
	}
}
