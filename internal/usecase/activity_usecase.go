package usecase

import (
	"context"

	"notesia/internal/domain/entity"
	"notesia/internal/domain/service"

	"github.com/google/uuid"
)

// ActivityUsecase records and reads the note activity trail fed by note events.
type ActivityUsecase interface {
	// RecordNoteEvent stores a delivered event. Redeliveries of messageID are ignored.
	RecordNoteEvent(ctx context.Context, messageID string, event *service.NoteEvent) error

	// ListNoteActivity returns the newest activity first. Activity outlives the note it describes.
	ListNoteActivity(ctx context.Context, userID, noteID uuid.UUID) ([]*entity.NoteActivity, error)
}
