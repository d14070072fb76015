package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/promptgallery/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatorConfig(baseURL string) *config.Config {
	return &config.Config{
		GeneratorBaseURL: baseURL,
		GeneratorTimeout: 2 * time.Second,
		GeneratorWidth:   512,
		GeneratorHeight:  512,
	}
}

func TestGeneratorServiceImageURL(t *testing.T) {
	svc := NewGeneratorService(generatorConfig("https://image.pollinations.ai"))

	url := svc.ImageURL("a cat in space")
	assert.Equal(t, "https://image.pollinations.ai/prompt/a%20cat%20in%20space?width=512&height=512&nologo=true", url)

	// Prompt content must never form extra path segments
	url = svc.ImageURL("red/blue")
	assert.Equal(t, "https://image.pollinations.ai/prompt/red%2Fblue?width=512&height=512&nologo=true", url)

	// Empty prompts are forwarded as-is
	url = svc.ImageURL("")
	assert.Equal(t, "https://image.pollinations.ai/prompt/?width=512&height=512&nologo=true", url)
}

func TestGeneratorServiceProbeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("fake image bytes"))
	}))
	defer server.Close()

	svc := NewGeneratorService(generatorConfig(server.URL))
	err := svc.Probe(context.Background(), svc.ImageURL("sunset"))
	require.NoError(t, err)
}

func TestGeneratorServiceProbeNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewGeneratorService(generatorConfig(server.URL))
	err := svc.Probe(context.Background(), svc.ImageURL("sunset"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGeneratorServiceProbeTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := generatorConfig(server.URL)
	cfg.GeneratorTimeout = 20 * time.Millisecond
	svc := NewGeneratorService(cfg)

	err := svc.Probe(context.Background(), svc.ImageURL("sunset"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator unreachable")
}

func TestGeneratorServiceProbeNetworkError(t *testing.T) {
	// Closed server: connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewGeneratorService(generatorConfig(server.URL))
	err := svc.Probe(context.Background(), svc.ImageURL("sunset"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generator unreachable")
}
