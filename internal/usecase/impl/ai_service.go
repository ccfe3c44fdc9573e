package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "notesia/internal/delivery/context"
	"notesia/internal/domain/entity"
	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/repository"
	"notesia/internal/domain/service"
	"notesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxSuggestions        = 5
	titleSourceLength     = 200
	analysisContentLength = 200
	analysisNoteLimit     = 10
)

// aiService implements the AIUsecase interface.
type aiService struct {
	noteRepo  repository.NoteRepository
	generator service.TextGenerator
	now       func() time.Time
	logger    *slog.Logger
}

// AIServiceParams holds dependencies for AIService, injected by Fx.
type AIServiceParams struct {
	fx.In

	NoteRepo  repository.NoteRepository
	Generator service.TextGenerator
	Logger    *slog.Logger
}

// NewAIService is the constructor for aiService.
func NewAIService(params AIServiceParams) usecase.AIUsecase {
	return &aiService{
		noteRepo:  params.NoteRepo,
		generator: params.Generator,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *aiService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Chat answers a free-form question as the note-taking assistant.
func (srv *aiService) Chat(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prompt is required")
	}

	answer, err := srv.generate(ctx, "chat", chatPrompt(input.Prompt, input.Context))
	if err != nil {
		return nil, err
	}

	return &usecase.ChatOutput{
		Response: answer,
		Prompt:   input.Prompt,
	}, nil
}

// Summarize produces a short summary of one of the user's notes.
func (srv *aiService) Summarize(ctx context.Context, userID, noteID uuid.UUID) (*entity.NoteInsight, error) {
	note, err := srv.findNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	summary, err := srv.generate(ctx, "summarize", summarizePrompt(note))
	if err != nil {
		return nil, err
	}

	return &entity.NoteInsight{
		Note:        note,
		Summary:     summary,
		Suggestions: []string{},
	}, nil
}

// Enhance rewrites a note and proposes up to five follow-up suggestions.
func (srv *aiService) Enhance(ctx context.Context, userID, noteID uuid.UUID, enhancementType entity.EnhancementType) (*entity.NoteInsight, error) {
	note, err := srv.findNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	enhancementType = entity.NormalizeEnhancementType(enhancementType)

	enhanced, err := srv.generate(ctx, "enhance", enhancePrompt(note, enhancementType))
	if err != nil {
		return nil, err
	}

	suggestions, err := srv.generate(ctx, "suggestions", suggestionsPrompt(note))
	if err != nil {
		return nil, err
	}

	return &entity.NoteInsight{
		Note:            note,
		EnhancedContent: enhanced,
		Suggestions:     parseSuggestions(suggestions, maxSuggestions),
	}, nil
}

// Generate drafts note content from a request, deriving a title when none is given.
func (srv *aiService) Generate(ctx context.Context, input *usecase.GenerateInput) (*usecase.GenerateOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prompt is required")
	}

	content, err := srv.generate(ctx, "generate", generatePrompt(input.Prompt))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		rawTitle, err := srv.generate(ctx, "title", titlePrompt(content))
		if err != nil {
			return nil, err
		}
		title = cleanTitle(rawTitle)
	}

	return &usecase.GenerateOutput{
		Title:               title,
		Content:             content,
		GeneratedFromPrompt: input.Prompt,
	}, nil
}

// AnalyzeNotes reviews the user's most recent notes.
func (srv *aiService) AnalyzeNotes(ctx context.Context, userID uuid.UUID) (*entity.NotesAnalysis, error) {
	total, err := srv.noteRepo.Count(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notes")
	}
	if total == 0 {
		return &entity.NotesAnalysis{AnalysisDate: srv.now()}, nil
	}

	notes, err := srv.noteRepo.List(ctx, userID, entity.NoteFilter{Limit: analysisNoteLimit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	insights, err := srv.generate(ctx, "analyze", analyzePrompt(notes))
	if err != nil {
		return nil, err
	}

	return &entity.NotesAnalysis{
		TotalNotesAnalyzed: int(total),
		Insights:           insights,
		AnalysisDate:       srv.now(),
	}, nil
}

func (srv *aiService) findNote(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := srv.noteRepo.FindByID(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	return note, nil
}

// generate calls the model and normalises failures to the AI error types.
func (srv *aiService) generate(ctx context.Context, operation, prompt string) (string, error) {
	start := time.Now()

	text, err := srv.generator.GenerateText(ctx, prompt)
	if err != nil {
		srv.log(ctx).Error("AI generation failed",
			slog.String("operation", operation),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		if errors.Is(err, domainerrors.ErrAIUnavailable) || errors.Is(err, domainerrors.ErrAIGenerationFailed) {
			return "", err
		}

		return "", errors.Wrap(domainerrors.ErrAIGenerationFailed, err.Error())
	}

	srv.log(ctx).Debug("AI generation finished",
		slog.String("operation", operation),
		slog.Duration("elapsed", time.Since(start)),
	)

	return text, nil
}

// parseSuggestions keeps non-empty lines that are not markdown headings.
func parseSuggestions(text string, limit int) []string {
	suggestions := make([]string, 0, limit)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == limit {
			break
		}
	}

	return suggestions
}

// cleanTitle strips quotes and a leading "Title:" label from a generated title.
func cleanTitle(raw string) string {
	title := strings.ReplaceAll(raw, `"`, "")
	title = strings.TrimSpace(title)
	title = strings.TrimPrefix(title, "Title:")

	return strings.TrimSpace(title)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
