package handler

import (
	"net/http"
	"testing"
	"time"

	"notesia/internal/domain/entity"
	mockUsecase "notesia/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityHandler_ListNoteActivity(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()
	occurred := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		userID       *uuid.UUID
		param        string
		setupMock    func(activityUC *mockUsecase.MockActivityUsecase)
		expectStatus int
		expectCode   string
		expectErr    bool
		expectLen    int
	}{
		{
			name:   "lists activity",
			userID: &userID,
			param:  noteID.String(),
			setupMock: func(activityUC *mockUsecase.MockActivityUsecase) {
				activityUC.EXPECT().ListNoteActivity(mock.Anything, userID, noteID).Return([]*entity.NoteActivity{
					{ID: uuid.New(), Type: "note.deleted", NoteID: noteID, UserID: userID, OccurredAt: occurred, ReceivedAt: occurred},
					{ID: uuid.New(), Type: "note.created", NoteID: noteID, UserID: userID, Tags: []string{"home"}, OccurredAt: occurred, ReceivedAt: occurred},
				}, nil).Once()
			},
			expectStatus: http.StatusOK,
			expectLen:    2,
		},
		{
			name:   "empty trail",
			userID: &userID,
			param:  noteID.String(),
			setupMock: func(activityUC *mockUsecase.MockActivityUsecase) {
				activityUC.EXPECT().ListNoteActivity(mock.Anything, userID, noteID).Return(nil, nil).Once()
			},
			expectStatus: http.StatusOK,
			expectLen:    0,
		},
		{
			name:         "invalid note id",
			userID:       &userID,
			param:        "not-a-uuid",
			expectStatus: http.StatusBadRequest,
			expectCode:   "INVALID_ID",
		},
		{
			name:         "anonymous",
			param:        noteID.String(),
			expectStatus: http.StatusUnauthorized,
			expectCode:   "INVALID_TOKEN",
		},
		{
			name:   "storage failure is returned",
			userID: &userID,
			param:  noteID.String(),
			setupMock: func(activityUC *mockUsecase.MockActivityUsecase) {
				activityUC.EXPECT().ListNoteActivity(mock.Anything, userID, noteID).Return(nil, assert.AnError).Once()
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activityUC := mockUsecase.NewMockActivityUsecase(t)
			if tt.setupMock != nil {
				tt.setupMock(activityUC)
			}
			h := NewActivityHandler(ActivityHandlerParams{ActivityUC: activityUC})

			c, rec := newTestContext(http.MethodGet, "/api/notes/"+tt.param+"/activity", "", tt.userID)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			err := h.ListNoteActivity(c)
			if tt.expectErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectStatus, rec.Code)

			if tt.expectCode != "" {
				env := decodeEnvelope(t, rec)
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.expectCode, env.Error.Code)

				return
			}

			var body struct {
				NoteID   uuid.UUID               `json:"note_id"`
				Activity []*NoteActivityResponse `json:"activity"`
			}
			decodeData(t, rec, &body)
			assert.Equal(t, noteID, body.NoteID)
			require.Len(t, body.Activity, tt.expectLen)
			for _, a := range body.Activity {
				assert.NotNil(t, a.Tags)
			}
		})
	}
}
