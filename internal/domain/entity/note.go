package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteStatus is the publication state of a note.
type NoteStatus string

const (
	NoteStatusDraft     NoteStatus = "draft"
	NoteStatusPublished NoteStatus = "published"
	NoteStatusArchived  NoteStatus = "archived"
)

// IsValid reports whether s is one of the known statuses.
func (s NoteStatus) IsValid() bool {
	switch s {
	case NoteStatusDraft, NoteStatusPublished, NoteStatusArchived:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s NoteStatus) String() string {
	return string(s)
}

// Note is a piece of user-authored content.
type Note struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Owner. Every read and write is scoped to it.
	Title     string
	Content   string
	Tags      []string
	Status    NoteStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteFilter narrows a note listing.
type NoteFilter struct {
	Status *NoteStatus // nil means any status
	Search string      // case-insensitive substring matched against title or content
	Limit  int
	Offset int
}

const (
	// DefaultNoteListLimit is used when a listing does not specify a limit.
	DefaultNoteListLimit = 50

	// MaxNoteListLimit caps a single page of notes.
	MaxNoteListLimit = 100
)
