package ai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notesia/config"
	domainerrors "notesia/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *geminiGenerator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gen, err := NewGeminiGenerator(context.Background(), &config.GeminiConfig{
		APIKey:   "test-key",
		Model:    "gemini-1.5-flash",
		Endpoint: server.URL,
	}, discardLogger())
	require.NoError(t, err)

	return gen.(*geminiGenerator)
}

func TestGeminiGenerator_GenerateText(t *testing.T) {
	var (
		path   string
		apiKey string
		body   map[string]any
	)
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		apiKey = r.Header.Get("X-Goog-Api-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello "},{"text":"there\n"}]}}]}`)
	})

	text, err := gen.GenerateText(context.Background(), "Say hello")
	require.NoError(t, err)

	assert.Equal(t, "Hello there", text)
	assert.True(t, strings.HasSuffix(path, "/models/gemini-1.5-flash:generateContent"), path)
	assert.Equal(t, "test-key", apiKey)

	contents := body["contents"].([]any)
	require.Len(t, contents, 1)
	first := contents[0].(map[string]any)
	assert.Equal(t, "user", first["role"])
	parts := first["parts"].([]any)
	require.Len(t, parts, 1)
	assert.Equal(t, "Say hello", parts[0].(map[string]any)["text"])
}

func TestNewGeminiGenerator_StripsModelsPrefix(t *testing.T) {
	gen, err := NewGeminiGenerator(context.Background(), &config.GeminiConfig{
		APIKey: "test-key",
		Model:  "models/gemini-1.5-pro",
	}, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "gemini-1.5-pro", gen.(*geminiGenerator).model)
}

func TestGeminiGenerator_EmptyCandidates(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	_, err := gen.GenerateText(context.Background(), "prompt")
	assert.True(t, errors.Is(err, domainerrors.ErrAIGenerationFailed))
}

func TestGeminiGenerator_UpstreamError(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota exceeded"}}`)
	})

	_, err := gen.GenerateText(context.Background(), "prompt")
	assert.True(t, errors.Is(err, domainerrors.ErrAIGenerationFailed))
}

func TestNewTextGenerator_NoAPIKey(t *testing.T) {
	gen, err := NewTextGenerator(Params{
		Ctx:    context.Background(),
		Config: &config.Config{Gemini: &config.GeminiConfig{}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	_, err = gen.GenerateText(context.Background(), "prompt")
	assert.True(t, errors.Is(err, domainerrors.ErrAIUnavailable))
}
