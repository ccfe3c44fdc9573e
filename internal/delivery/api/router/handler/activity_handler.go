package handler

import (
	"net/http"

	"notesia/internal/delivery/api/middleware"
	"notesia/internal/delivery/api/response"
	"notesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
}

// ActivityHandler serves the activity trail recorded by the note worker.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{activityUC: params.ActivityUC}
}

// ListNoteActivity returns the newest activity of one of the caller's notes.
// Deleted notes keep their trail.
func (h *ActivityHandler) ListNoteActivity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid note ID")
	}

	activities, err := h.activityUC.ListNoteActivity(c.Request().Context(), userID, noteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"note_id":  noteID,
		"activity": newNoteActivityResponses(activities),
	})
}
