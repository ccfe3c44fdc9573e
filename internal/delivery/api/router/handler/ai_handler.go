package handler

import (
	"log/slog"
	"net/http"

	"notesia/internal/delivery/api/middleware"
	"notesia/internal/delivery/api/response"
	"notesia/internal/delivery/api/validator"
	"notesia/internal/domain/entity"
	"notesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AIHandlerParams holds dependencies for AIHandler, injected by Fx.
type AIHandlerParams struct {
	fx.In

	AIUC   usecase.AIUsecase
	Logger *slog.Logger
}

// AIHandler holds dependencies for the assistant handlers
type AIHandler struct {
	aiUC   usecase.AIUsecase
	logger *slog.Logger
}

// NewAIHandler is the constructor for AIHandler
func NewAIHandler(params AIHandlerParams) *AIHandler {
	return &AIHandler{
		aiUC:   params.AIUC,
		logger: params.Logger,
	}
}

// ChatRequest is a free-form question to the assistant
type ChatRequest struct {
	Prompt  string `json:"prompt" validate:"required,max=8000"`
	Context string `json:"context" validate:"max=20000"`
}

// ChatResponse carries the assistant's answer
type ChatResponse struct {
	Response string `json:"response"`
	Prompt   string `json:"prompt"`
}

// SummarizeRequest selects the note to summarize
type SummarizeRequest struct {
	NoteID string `json:"note_id" validate:"required,uuid"`
}

// EnhanceRequest selects the note to rewrite and how
type EnhanceRequest struct {
	NoteID          string `json:"note_id" validate:"required,uuid"`
	EnhancementType string `json:"enhancement_type"`
}

// GenerateRequest asks the assistant to draft a note
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required,max=8000"`
	Title  string `json:"title" validate:"max=255"`
}

// GenerateResponse is a drafted note. It is not saved.
type GenerateResponse struct {
	Title               string `json:"title"`
	Content             string `json:"content"`
	GeneratedFromPrompt string `json:"generated_from_prompt"`
}

// AnalysisResponse is the review of the user's notes
type AnalysisResponse struct {
	TotalNotesAnalyzed int    `json:"total_notes_analyzed"`
	Insights           string `json:"insights"`
	AnalysisDate       string `json:"analysis_date"`
}

// EmptyAnalysisResponse is returned to users without notes
type EmptyAnalysisResponse struct {
	Message  string   `json:"message"`
	Insights []string `json:"insights"`
}

// Chat handles a conversation turn with the assistant
func (h *AIHandler) Chat(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", validator.Details(err))
	}

	output, err := h.aiUC.Chat(c.Request().Context(), &usecase.ChatInput{
		Prompt:  req.Prompt,
		Context: req.Context,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ChatResponse{
		Response: output.Response,
		Prompt:   output.Prompt,
	})
}

// Summarize handles summarizing one of the user's notes
func (h *AIHandler) Summarize(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid summarize input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", validator.Details(err))
	}

	noteID, err := uuid.Parse(req.NoteID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid note ID")
	}

	insight, err := h.aiUC.Summarize(c.Request().Context(), userID, noteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNoteInsightResponse(insight))
}

// Enhance handles rewriting one of the user's notes
func (h *AIHandler) Enhance(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req EnhanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enhance input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", validator.Details(err))
	}

	noteID, err := uuid.Parse(req.NoteID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid note ID")
	}

	insight, err := h.aiUC.Enhance(c.Request().Context(), userID, noteID, entity.EnhancementType(req.EnhancementType))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNoteInsightResponse(insight))
}

// Generate handles drafting a note from a prompt
func (h *AIHandler) Generate(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid generate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", validator.Details(err))
	}

	output, err := h.aiUC.Generate(c.Request().Context(), &usecase.GenerateInput{
		Prompt: req.Prompt,
		Title:  req.Title,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &GenerateResponse{
		Title:               output.Title,
		Content:             output.Content,
		GeneratedFromPrompt: output.GeneratedFromPrompt,
	})
}

// AnalyzeNotes handles reviewing the user's most recent notes
func (h *AIHandler) AnalyzeNotes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	analysis, err := h.aiUC.AnalyzeNotes(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if analysis.TotalNotesAnalyzed == 0 {
		return response.Success(c, http.StatusOK, &EmptyAnalysisResponse{
			Message:  "No notes to analyze",
			Insights: []string{},
		})
	}

	return response.Success(c, http.StatusOK, &AnalysisResponse{
		TotalNotesAnalyzed: analysis.TotalNotesAnalyzed,
		Insights:           analysis.Insights,
		AnalysisDate:       analysis.AnalysisDate.Format(analysisDateLayout),
	})
}
