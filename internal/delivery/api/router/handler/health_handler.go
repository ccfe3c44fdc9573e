package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"notesia/config"
	"notesia/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	apiVersion         = "1.0.0"
	healthCheckTimeout = 2 * time.Second
)

// Pinger checks that a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     Pinger
	Config *config.Config
	Logger *slog.Logger
}

// HealthHandler serves the service banner and health probe
type HealthHandler struct {
	db           Pinger
	aiConfigured bool
	logger       *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		db:           params.DB,
		aiConfigured: params.Config.Gemini != nil && strings.TrimSpace(params.Config.Gemini.APIKey) != "",
		logger:       params.Logger,
	}
}

// RootResponse describes the running service
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthResponse reports the state of the service and its dependencies
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	AI       string `json:"ai"`
}

// Root returns the service banner
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, &RootResponse{
		Message: "Welcome to NOTESIA API",
		Version: apiVersion,
		Status:  "active",
	})
}

// Health reports whether the database is reachable and the assistant is configured
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	result := &HealthResponse{
		Status:   "healthy",
		Database: "connected",
		AI:       "ready",
	}
	statusCode := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.WarnContext(ctx, "Health check database ping failed", slog.Any("error", err))
		result.Status = "unhealthy"
		result.Database = "disconnected"
		statusCode = http.StatusServiceUnavailable
	}

	if !h.aiConfigured {
		result.AI = "not_configured"
	}

	return response.Success(c, statusCode, result)
}
