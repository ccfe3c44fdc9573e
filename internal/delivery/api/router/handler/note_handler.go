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

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
	Logger *slog.Logger
}

// NoteHandler holds dependencies for note handlers
type NoteHandler struct {
	noteUC usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{
		noteUC: params.NoteUC,
		logger: params.Logger,
	}
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required,max=255"`
	Content string   `json:"content"`
	Tags    []string `json:"tags" validate:"max=50,dive,max=64"`
	Status  string   `json:"status" validate:"omitempty,oneof=draft published archived"`
}

// UpdateNoteRequest represents a partial update. Omitted fields are left unchanged.
type UpdateNoteRequest struct {
	Title   *string  `json:"title" validate:"omitempty,max=255"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags" validate:"max=50,dive,max=64"`
	Status  *string  `json:"status" validate:"omitempty,oneof=draft published archived"`
}

// ListNotesRequest represents the query parameters of a note listing
type ListNotesRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=draft published archived"`
	Search string `query:"search" validate:"max=255"`
	Limit  int    `query:"limit" validate:"gte=0,lte=100"`
	Offset int    `query:"offset" validate:"gte=0"`
}

// TagsResponse lists the distinct tags of the user's notes
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// CreateNote handles note creation
func (h *NoteHandler) CreateNote(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", validator.Details(err))
	}

	note, err := h.noteUC.CreateNote(c.Request().Context(), userID, &usecase.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Status:  entity.NoteStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newNoteResponse(note))
}

// ListNotes handles listing the user's notes, most recently updated first
func (h *NoteHandler) ListNotes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ListNotesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", validator.Details(err))
	}

	filter := entity.NoteFilter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.Status != "" {
		status := entity.NoteStatus(req.Status)
		filter.Status = &status
	}

	notes, err := h.noteUC.ListNotes(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNoteResponses(notes))
}

// ListTags handles listing the distinct tags across the user's notes
func (h *NoteHandler) ListTags(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tags, err := h.noteUC.ListTags(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &TagsResponse{Tags: tags})
}

// GetNote handles retrieving a single note
func (h *NoteHandler) GetNote(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid note ID")
	}

	note, err := h.noteUC.GetNote(c.Request().Context(), userID, noteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNoteResponse(note))
}

// UpdateNote handles partial note updates
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid note ID")
	}

	var req UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Input validation failed", validator.Details(err))
	}

	input := &usecase.UpdateNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}
	if req.Status != nil {
		status := entity.NoteStatus(*req.Status)
		input.Status = &status
	}

	note, err := h.noteUC.UpdateNote(c.Request().Context(), userID, noteID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNoteResponse(note))
}

// DeleteNote handles note deletion
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid note ID")
	}

	if err := h.noteUC.DeleteNote(c.Request().Context(), userID, noteID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "Note deleted successfully"})
}
