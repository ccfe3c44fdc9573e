package repository

import (
	"context"

	"notesia/internal/domain/entity"
	"notesia/internal/errors"

	"github.com/google/uuid"
)

// ErrNoteNotFound is returned when a note does not exist or belongs to another user.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines persistence operations for notes. Every method is scoped to an owner.
type NoteRepository interface {
	// Create persists a new note with its tags. The generated ID and timestamps are written back.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID returns the note only if it belongs to userID.
	FindByID(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error)

	// List returns the user's notes ordered by most recently updated first.
	List(ctx context.Context, userID uuid.UUID, filter entity.NoteFilter) ([]*entity.Note, error)

	// Count returns the number of notes owned by userID.
	Count(ctx context.Context, userID uuid.UUID) (int64, error)

	// Update saves title, content, status and updated_at, and replaces the tag set.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes the note and its tags.
	Delete(ctx context.Context, userID, noteID uuid.UUID) error

	// ListTags returns the distinct tags used across the user's notes, sorted.
	ListTags(ctx context.Context, userID uuid.UUID) ([]string, error)
}
