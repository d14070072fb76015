package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/promptgallery/backend/internal/config"
)

// GeneratorService talks to the external image generator. The generator has
// no API beyond URL construction: embedding the prompt in the path yields the
// image, so "generation" is a single bounded GET confirming the resource is
// reachable.
type GeneratorService struct {
	cfg    *config.Config
	client *http.Client
}

func NewGeneratorService(cfg *config.Config) *GeneratorService {
	return &GeneratorService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.GeneratorTimeout},
	}
}

// ImageURL builds the generator URL for a prompt:
// <base>/prompt/<encoded>?width=W&height=H&nologo=true
func (s *GeneratorService) ImageURL(prompt string) string {
	return fmt.Sprintf("%s/prompt/%s?width=%d&height=%d&nologo=true",
		s.cfg.GeneratorBaseURL, url.PathEscape(prompt), s.cfg.GeneratorWidth, s.cfg.GeneratorHeight)
}

// Probe issues one bounded GET against imageURL. Only reachability matters;
// the body is discarded. No retries.
func (s *GeneratorService) Probe(ctx context.Context, imageURL string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GeneratorTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("generator unreachable: %w", err)
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("generator returned status %d", resp.StatusCode)
	}
	return nil
}
