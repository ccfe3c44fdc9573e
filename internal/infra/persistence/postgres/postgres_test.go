package postgres

import (
	"testing"
	"time"

	"notesia/internal/domain/entity"
	"notesia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "meeting", want: "meeting"},
		{in: "100%", want: `100\%`},
		{in: "snake_case", want: `snake\_case`},
		{in: `C:\notes`, want: `C:\\notes`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLikePattern(tt.in))
	}
}

func TestConstraintErrors(t *testing.T) {
	wrapped := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert")

	assert.True(t, isUniqueConstraintViolation(wrapped))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}

func TestNoteMapping_KeepsTagOrder(t *testing.T) {
	note := &entity.Note{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		Title:   "Groceries",
		Content: "milk",
		Tags:    []string{"home", "errands", "weekly"},
		Status:  entity.NoteStatusDraft,
	}

	noteM := fromNoteDomain(note)
	assert.Len(t, noteM.Tags, 3)
	for i, tag := range noteM.Tags {
		assert.Equal(t, note.ID, tag.NoteID)
		assert.Equal(t, i, tag.Position)
	}

	back := toNoteDomain(noteM)
	assert.Equal(t, note.Tags, back.Tags)
	assert.Equal(t, note.Status, back.Status)
}

func TestNoteMapping_NoTags(t *testing.T) {
	back := toNoteDomain(&model.NoteModel{Status: "published"})

	assert.NotNil(t, back.Tags)
	assert.Empty(t, back.Tags)
	assert.Equal(t, entity.NoteStatusPublished, back.Status)
}

func TestActivityMapping(t *testing.T) {
	occurredAt := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	activity := &entity.NoteActivity{
		ID:         uuid.New(),
		MessageID:  "msg-1",
		Type:       "note.updated",
		NoteID:     uuid.New(),
		UserID:     uuid.New(),
		Status:     "published",
		Tags:       []string{"work"},
		RequestID:  "req-1",
		OccurredAt: occurredAt,
		ReceivedAt: occurredAt.Add(time.Second),
	}

	assert.Equal(t, activity, toActivityDomain(fromActivityDomain(activity)))

	noTags := toActivityDomain(&model.NoteActivityModel{MessageID: "msg-2"})
	assert.NotNil(t, noTags.Tags)
	assert.Empty(t, noTags.Tags)
}
