package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notesia/config"
	deliverycontext "notesia/internal/delivery/context"
	domainerrors "notesia/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware(t *testing.T) {
	logger, _ := newBufferLogger()
	m := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "keeps client id",
			header: "client-req-1",
			expectID: func(t *testing.T, id string) {
				assert.Equal(t, "client-req-1", id)
			},
		},
		{
			name: "generates id",
			expectID: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:   "replaces oversized id",
			header: strings.Repeat("x", maxRequestIDLength+1),
			expectID: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var ctxID string
			var ctxLogger *slog.Logger
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				ctxLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			tt.expectID(t, headerID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			assert.NotNil(t, ctxLogger)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		expectLog string
	}{
		{
			name:  "success is quiet outside debug",
			debug: false,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
		},
		{
			name:  "success logged in debug",
			debug: true,
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			expectLog: `"level":"INFO"`,
		},
		{
			name:  "client error logged as warning in debug",
			debug: true,
			handler: func(c echo.Context) error {
				return domainerrors.ErrNoteNotFound
			},
			expectLog: `"status":404`,
		},
		{
			name:  "unexpected error always logged",
			debug: false,
			handler: func(c echo.Context) error {
				return assert.AnError
			},
			expectLog: `"level":"ERROR"`,
		},
		{
			name:  "client error quiet outside debug",
			debug: false,
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusMethodNotAllowed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(logger, cfg)

			req := httptest.NewRequest(http.MethodGet, "/api/notes?limit=5", nil)
			c := echo.New().NewContext(req, httptest.NewRecorder())

			_ = m.Handle(tt.handler)(c)

			if tt.expectLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.expectLog)
			assert.Contains(t, buf.String(), `"query":"limit=5"`)
		})
	}
}
