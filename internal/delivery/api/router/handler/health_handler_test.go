package handler

import (
	"context"
	"net/http"
	"testing"

	"notesia/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name         string
		pingErr      error
		apiKey       string
		expectStatus int
		expect       HealthResponse
	}{
		{
			name:         "healthy",
			apiKey:       "key",
			expectStatus: http.StatusOK,
			expect:       HealthResponse{Status: "healthy", Database: "connected", AI: "ready"},
		},
		{
			name:         "assistant not configured",
			expectStatus: http.StatusOK,
			expect:       HealthResponse{Status: "healthy", Database: "connected", AI: "not_configured"},
		},
		{
			name:         "database down",
			pingErr:      assert.AnError,
			apiKey:       "key",
			expectStatus: http.StatusServiceUnavailable,
			expect:       HealthResponse{Status: "unhealthy", Database: "disconnected", AI: "ready"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Gemini: &config.GeminiConfig{APIKey: tt.apiKey}}
			h := NewHealthHandler(HealthHandlerParams{DB: fakePinger{err: tt.pingErr}, Config: cfg, Logger: discardLogger()})

			c, rec := newTestContext(http.MethodGet, "/health", "", nil)
			require.NoError(t, h.Health(c))
			assert.Equal(t, tt.expectStatus, rec.Code)

			var got HealthResponse
			decodeData(t, rec, &got)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestHealthHandler_Root(t *testing.T) {
	h := NewHealthHandler(HealthHandlerParams{DB: fakePinger{}, Config: &config.Config{}, Logger: discardLogger()})

	c, rec := newTestContext(http.MethodGet, "/", "", nil)
	require.NoError(t, h.Root(c))

	var got RootResponse
	decodeData(t, rec, &got)
	assert.Equal(t, RootResponse{Message: "Welcome to NOTESIA API", Version: "1.0.0", Status: "active"}, got)
}
