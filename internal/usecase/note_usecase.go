package usecase

import (
	"context"

	"notesia/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNoteInput defines the data required to create a note.
type CreateNoteInput struct {
	Title   string
	Content string
	Tags    []string
	Status  entity.NoteStatus // Empty means draft.
}

// UpdateNoteInput carries a partial update. Nil fields are left unchanged;
// a non-nil Tags replaces the whole tag set.
type UpdateNoteInput struct {
	Title   *string
	Content *string
	Tags    []string
	Status  *entity.NoteStatus
}

// NoteUsecase defines note operations. Every operation is scoped to userID.
type NoteUsecase interface {
	CreateNote(ctx context.Context, userID uuid.UUID, input *CreateNoteInput) (*entity.Note, error)
	GetNote(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, input *UpdateNoteInput) (*entity.Note, error)
	DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error
	ListNotes(ctx context.Context, userID uuid.UUID, filter entity.NoteFilter) ([]*entity.Note, error)
	ListTags(ctx context.Context, userID uuid.UUID) ([]string, error)
}
