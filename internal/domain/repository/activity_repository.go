package repository

import (
	"context"

	"notesia/internal/domain/entity"

	"github.com/google/uuid"
)

// NoteActivityRepository stores the note activity trail.
type NoteActivityRepository interface {
	// Record stores the activity unless one with the same MessageID exists.
	// It reports whether a new row was written.
	Record(ctx context.Context, activity *entity.NoteActivity) (bool, error)

	// ListByNote returns the newest activity first for a note owned by userID.
	ListByNote(ctx context.Context, userID, noteID uuid.UUID, limit int) ([]*entity.NoteActivity, error)
}
