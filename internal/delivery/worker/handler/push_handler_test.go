package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notesia/config"
	deliverycontext "notesia/internal/delivery/context"
	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/service"
	mockUsecase "notesia/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockActivityUsecase) {
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ActivityUC: activityUC,
	})

	return h, activityUC
}

func pushBody(t *testing.T, messageID string, attrs map[string]string, event any) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = messageID
	msg.Message.Attributes = attrs
	msg.Subscription = "projects/test/subscriptions/note-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.NoteEvent{
		RequestID: "req-from-api",
		Type:      service.NoteEventCreated,
		NoteID:    "8a2b3c4d-0000-4000-8000-000000000001",
		UserID:    "8a2b3c4d-0000-4000-8000-000000000002",
	}

	tests := []struct {
		name         string
		body         func(t *testing.T) string
		setupMock    func(activityUC *mockUsecase.MockActivityUsecase)
		expectStatus int
	}{
		{
			name: "records event",
			body: func(t *testing.T) string { return pushBody(t, "msg-1", nil, event) },
			setupMock: func(activityUC *mockUsecase.MockActivityUsecase) {
				activityUC.EXPECT().
					RecordNoteEvent(mock.Anything, "msg-1", mock.MatchedBy(func(e *service.NoteEvent) bool {
						return e.NoteID == event.NoteID && e.Type == service.NoteEventCreated
					})).
					RunAndReturn(func(ctx context.Context, _ string, _ *service.NoteEvent) error {
						assert.Equal(t, "req-from-api", deliverycontext.GetRequestIDFromContext(ctx))

						return nil
					}).Once()
			},
			expectStatus: http.StatusOK,
		},
		{
			name: "attribute request id wins",
			body: func(t *testing.T) string {
				return pushBody(t, "msg-2", map[string]string{"request_id": "req-attr"}, event)
			},
			setupMock: func(activityUC *mockUsecase.MockActivityUsecase) {
				activityUC.EXPECT().RecordNoteEvent(mock.Anything, "msg-2", mock.Anything).
					RunAndReturn(func(ctx context.Context, _ string, _ *service.NoteEvent) error {
						assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))

						return nil
					}).Once()
			},
			expectStatus: http.StatusOK,
		},
		{
			name: "invalid event is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, "msg-3", nil, event) },
			setupMock: func(activityUC *mockUsecase.MockActivityUsecase) {
				activityUC.EXPECT().RecordNoteEvent(mock.Anything, "msg-3", mock.Anything).
					Return(domainerrors.ErrValidationFailed.WithDetails("unknown event type")).Once()
			},
			expectStatus: http.StatusOK,
		},
		{
			name: "storage failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, "msg-4", nil, event) },
			setupMock: func(activityUC *mockUsecase.MockActivityUsecase) {
				activityUC.EXPECT().RecordNoteEvent(mock.Anything, "msg-4", mock.Anything).Return(assert.AnError).Once()
			},
			expectStatus: http.StatusServiceUnavailable,
		},
		{
			name:         "malformed envelope",
			body:         func(*testing.T) string { return `{"message":` },
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "data is not base64",
			body:         func(*testing.T) string { return `{"message":{"data":"%%%","messageId":"m"}}` },
			expectStatus: http.StatusBadRequest,
		},
		{
			name: "data is not an event",
			body: func(*testing.T) string {
				return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `","messageId":"m"}}`
			},
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, activityUC := newPushHandler(t, &config.Config{})
			if tt.setupMock != nil {
				tt.setupMock(activityUC)
			}

			rec := doPush(h, tt.body(t), nil)
			assert.Equal(t, tt.expectStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"

	event := &service.NoteEvent{Type: service.NoteEventDeleted, NoteID: "n", UserID: "u"}

	tests := []struct {
		name         string
		header       string
		payload      *idtoken.Payload
		validateErr  error
		expectStatus int
		expectRecord bool
	}{
		{name: "missing header", expectStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", expectStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", validateErr: assert.AnError, expectStatus: http.StatusUnauthorized},
		{
			name:         "wrong issuer",
			header:       "Bearer tok",
			payload:      &idtoken.Payload{Issuer: "https://evil.test"},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "unverified email",
			header:       "Bearer tok",
			payload:      &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "valid token",
			header:       "Bearer tok",
			payload:      &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			expectStatus: http.StatusOK,
			expectRecord: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, activityUC := newPushHandler(t, cfg)
			require.True(t, h.verifyPushAuth)

			var gotAudience string
			h.validateToken = func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
				gotAudience = audience

				return tt.payload, tt.validateErr
			}
			if tt.expectRecord {
				activityUC.EXPECT().RecordNoteEvent(mock.Anything, "msg-1", mock.Anything).Return(nil).Once()
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := doPush(h, pushBody(t, "msg-1", nil, event), header)

			assert.Equal(t, tt.expectStatus, rec.Code)
			if tt.payload != nil {
				assert.Equal(t, "http://example.com/push", gotAudience)
			}
		})
	}
}

func TestNewPushHandler_SkipsAuthOutsideGoogleProduction(t *testing.T) {
	develop := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	develop.Env.Env = "develop"

	local := &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}
	local.Env.Env = "production"

	for _, cfg := range []*config.Config{develop, local, {}} {
		h, _ := newPushHandler(t, cfg)
		assert.False(t, h.verifyPushAuth)
	}
}
