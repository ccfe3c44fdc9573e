package handler

import (
	"net/http"
	"testing"
	"time"

	"notesia/internal/domain/entity"
	domainerrors "notesia/internal/domain/errors"
	mockUsecase "notesia/internal/mocks/usecase"
	"notesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNoteHandler(t *testing.T) (*NoteHandler, *mockUsecase.MockNoteUsecase) {
	noteUC := mockUsecase.NewMockNoteUsecase(t)

	return NewNoteHandler(NoteHandlerParams{NoteUC: noteUC, Logger: discardLogger()}), noteUC
}

func sampleNote(userID uuid.UUID) *entity.Note {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Groceries",
		Content:   "milk, eggs",
		Tags:      []string{"home"},
		Status:    entity.NoteStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNoteHandler_CreateNote(t *testing.T) {
	userID := uuid.New()
	note := sampleNote(userID)

	tests := []struct {
		name         string
		body         string
		setupMock    func(noteUC *mockUsecase.MockNoteUsecase)
		expectStatus int
		expectCode   string
	}{
		{
			name: "created",
			body: `{"title":"Groceries","content":"milk, eggs","tags":["home"]}`,
			setupMock: func(noteUC *mockUsecase.MockNoteUsecase) {
				noteUC.EXPECT().CreateNote(mock.Anything, userID, &usecase.CreateNoteInput{
					Title:   "Groceries",
					Content: "milk, eggs",
					Tags:    []string{"home"},
				}).Return(note, nil).Once()
			},
			expectStatus: http.StatusCreated,
		},
		{
			name:         "missing title",
			body:         `{"content":"milk"}`,
			expectStatus: http.StatusBadRequest,
			expectCode:   "VALIDATION_ERROR",
		},
		{
			name:         "unknown status",
			body:         `{"title":"x","status":"deleted"}`,
			expectStatus: http.StatusBadRequest,
			expectCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, noteUC := newNoteHandler(t)
			if tt.setupMock != nil {
				tt.setupMock(noteUC)
			}
			c, rec := newTestContext(http.MethodPost, "/api/notes", tt.body, &userID)

			require.NoError(t, h.CreateNote(c))
			assert.Equal(t, tt.expectStatus, rec.Code)

			if tt.expectCode != "" {
				env := decodeEnvelope(t, rec)
				assert.Equal(t, tt.expectCode, env.Error.Code)
				assert.NotNil(t, env.Error.Details)

				return
			}

			var got NoteResponse
			decodeData(t, rec, &got)
			assert.Equal(t, note.ID, got.ID)
			assert.Equal(t, []string{"home"}, got.Tags)
			assert.Equal(t, entity.NoteStatusDraft, got.Status)
		})
	}
}

func TestNoteHandler_ListNotes(t *testing.T) {
	userID := uuid.New()
	archived := entity.NoteStatusArchived

	t.Run("passes filter", func(t *testing.T) {
		h, noteUC := newNoteHandler(t)
		noteUC.EXPECT().ListNotes(mock.Anything, userID, entity.NoteFilter{
			Status: &archived,
			Search: "milk",
			Limit:  10,
			Offset: 20,
		}).Return([]*entity.Note{sampleNote(userID)}, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/notes?status=archived&search=milk&limit=10&offset=20", "", &userID)
		require.NoError(t, h.ListNotes(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got []NoteResponse
		decodeData(t, rec, &got)
		assert.Len(t, got, 1)
	})

	t.Run("empty list renders as array", func(t *testing.T) {
		h, noteUC := newNoteHandler(t)
		noteUC.EXPECT().ListNotes(mock.Anything, userID, entity.NoteFilter{}).Return(nil, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/notes", "", &userID)
		require.NoError(t, h.ListNotes(c))
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})

	tests := []struct {
		name  string
		query string
	}{
		{name: "limit over maximum", query: "limit=101"},
		{name: "negative offset", query: "offset=-1"},
		{name: "unknown status", query: "status=deleted"},
		{name: "non numeric limit", query: "limit=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newNoteHandler(t)

			c, rec := newTestContext(http.MethodGet, "/api/notes?"+tt.query, "", &userID)
			require.NoError(t, h.ListNotes(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestNoteHandler_ListTags(t *testing.T) {
	userID := uuid.New()
	h, noteUC := newNoteHandler(t)
	noteUC.EXPECT().ListTags(mock.Anything, userID).Return([]string{"home", "work"}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/notes/tags/list", "", &userID)
	require.NoError(t, h.ListTags(c))

	var got TagsResponse
	decodeData(t, rec, &got)
	assert.Equal(t, []string{"home", "work"}, got.Tags)
}

func TestNoteHandler_GetNote(t *testing.T) {
	userID := uuid.New()
	note := sampleNote(userID)

	t.Run("found", func(t *testing.T) {
		h, noteUC := newNoteHandler(t)
		noteUC.EXPECT().GetNote(mock.Anything, userID, note.ID).Return(note, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/notes/"+note.ID.String(), "", &userID)
		c.SetParamNames("id")
		c.SetParamValues(note.ID.String())

		require.NoError(t, h.GetNote(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("owned by someone else", func(t *testing.T) {
		h, noteUC := newNoteHandler(t)
		noteUC.EXPECT().GetNote(mock.Anything, userID, note.ID).Return(nil, domainerrors.ErrNoteNotFound).Once()

		c, rec := newTestContext(http.MethodGet, "/api/notes/"+note.ID.String(), "", &userID)
		c.SetParamNames("id")
		c.SetParamValues(note.ID.String())

		require.NoError(t, h.GetNote(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOTE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newNoteHandler(t)

		c, rec := newTestContext(http.MethodGet, "/api/notes/abc", "", &userID)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.GetNote(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestNoteHandler_UpdateNote(t *testing.T) {
	userID := uuid.New()
	note := sampleNote(userID)
	published := entity.NoteStatusPublished

	tests := []struct {
		name   string
		body   string
		expect *usecase.UpdateNoteInput
	}{
		{
			name:   "title only",
			body:   `{"title":"Renamed"}`,
			expect: &usecase.UpdateNoteInput{Title: ptr("Renamed")},
		},
		{
			name:   "clear tags and publish",
			body:   `{"tags":[],"status":"published"}`,
			expect: &usecase.UpdateNoteInput{Tags: []string{}, Status: &published},
		},
		{
			name:   "null tags leave tags unchanged",
			body:   `{"content":"","tags":null}`,
			expect: &usecase.UpdateNoteInput{Content: ptr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, noteUC := newNoteHandler(t)
			noteUC.EXPECT().UpdateNote(mock.Anything, userID, note.ID, tt.expect).Return(note, nil).Once()

			c, rec := newTestContext(http.MethodPut, "/api/notes/"+note.ID.String(), tt.body, &userID)
			c.SetParamNames("id")
			c.SetParamValues(note.ID.String())

			require.NoError(t, h.UpdateNote(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("server error is returned to the error handler", func(t *testing.T) {
		h, noteUC := newNoteHandler(t)
		noteUC.EXPECT().UpdateNote(mock.Anything, userID, note.ID, mock.Anything).Return(nil, domainerrors.ErrNoteUpdateFailed).Once()

		c, _ := newTestContext(http.MethodPut, "/api/notes/"+note.ID.String(), `{"title":"x"}`, &userID)
		c.SetParamNames("id")
		c.SetParamValues(note.ID.String())

		err := h.UpdateNote(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrNoteUpdateFailed)
	})
}

func TestNoteHandler_DeleteNote(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()
	h, noteUC := newNoteHandler(t)
	noteUC.EXPECT().DeleteNote(mock.Anything, userID, noteID).Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/api/notes/"+noteID.String(), "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(noteID.String())

	require.NoError(t, h.DeleteNote(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got MessageResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "Note deleted successfully", got.Message)
}
