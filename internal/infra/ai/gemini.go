// Package ai implements the TextGenerator domain service on top of the Gemini API.
package ai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"notesia/config"
	deliverycontext "notesia/internal/delivery/context"
	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/genai"
)

// Params defines the dependencies of the text generator
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// geminiGenerator implements service.TextGenerator with the Gemini API.
type geminiGenerator struct {
	models  *genai.Models
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// unavailableGenerator is used when no API key is configured.
type unavailableGenerator struct{}

// NewTextGenerator returns a Gemini-backed generator, or one that always
// fails with ErrAIUnavailable when no API key is configured.
func NewTextGenerator(params Params) (service.TextGenerator, error) {
	cfg := params.Config.Gemini
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("Gemini API key not configured, AI endpoints are disabled")

		return unavailableGenerator{}, nil
	}

	return NewGeminiGenerator(params.Ctx, cfg, params.Logger)
}

// NewGeminiGenerator builds a client for the configured model.
func NewGeminiGenerator(ctx context.Context, cfg *config.GeminiConfig, logger *slog.Logger) (service.TextGenerator, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Endpoint != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	model := strings.TrimPrefix(cfg.Model, "models/")

	logger.Info("Gemini text generator initialized", slog.String("model", model))

	return &geminiGenerator{
		models:  client.Models,
		model:   model,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// GenerateText sends prompt as a single user turn and returns the text of the first candidate.
func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrAIGenerationFailed, err.Error())
	}

	text := responseText(resp)
	if text == "" {
		return "", domainerrors.ErrAIGenerationFailed.WrapMessage("model returned no text")
	}

	deliverycontext.GetLoggerOrDefault(ctx, g.logger).Debug("Gemini generation finished",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("prompt_chars", len(prompt)),
		slog.Int("answer_chars", len(text)),
	)

	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	return strings.TrimSpace(resp.Text())
}

func (unavailableGenerator) GenerateText(context.Context, string) (string, error) {
	return "", domainerrors.ErrAIUnavailable
}
