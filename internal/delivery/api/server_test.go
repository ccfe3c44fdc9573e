package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notesia/config"
	apimiddleware "notesia/internal/delivery/api/middleware"
	"notesia/internal/delivery/api/response"
	"notesia/internal/delivery/api/router"
	"notesia/internal/delivery/api/router/handler"
	deliverycontext "notesia/internal/delivery/context"
	"notesia/internal/domain/entity"
	domainerrors "notesia/internal/domain/errors"
	mockSvc "notesia/internal/mocks/service"
	mockUsecase "notesia/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type okPinger struct{}

func (okPinger) PingContext(_ context.Context) error { return nil }

type testServer struct {
	echo     *echo.Echo
	tokenSvc *mockSvc.MockTokenService
	authUC   *mockUsecase.MockAuthUsecase
	noteUC   *mockUsecase.MockNoteUsecase
	aiUC     *mockUsecase.MockAIUsecase
	activity *mockUsecase.MockActivityUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.CORS.AllowOrigins = []string{"https://app.notesia.test"}

	s := &testServer{
		tokenSvc: mockSvc.NewMockTokenService(t),
		authUC:   mockUsecase.NewMockAuthUsecase(t),
		noteUC:   mockUsecase.NewMockNoteUsecase(t),
		aiUC:     mockUsecase.NewMockAIUsecase(t),
		activity: mockUsecase.NewMockActivityUsecase(t),
	}

	s.echo = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		HealthHandler:   handler.NewHealthHandler(handler.HealthHandlerParams{DB: okPinger{}, Config: cfg, Logger: logger}),
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: s.authUC, Logger: logger}),
		NoteHandler:     handler.NewNoteHandler(handler.NoteHandlerParams{NoteUC: s.noteUC, Logger: logger}),
		AIHandler:       handler.NewAIHandler(handler.AIHandlerParams{AIUC: s.aiUC, Logger: logger}),
		ActivityHandler: handler.NewActivityHandler(handler.ActivityHandlerParams{ActivityUC: s.activity}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(s.tokenSvc),
	}).RegisterRoutes(s.echo)

	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return &body
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/notes"},
		{http.MethodPost, "/api/notes"},
		{http.MethodGet, "/api/notes/tags/list"},
		{http.MethodGet, "/api/notes/" + uuid.NewString()},
		{http.MethodPut, "/api/notes/" + uuid.NewString()},
		{http.MethodDelete, "/api/notes/" + uuid.NewString()},
		{http.MethodGet, "/api/notes/" + uuid.NewString() + "/activity"},
		{http.MethodPost, "/api/ai/chat"},
		{http.MethodPost, "/api/ai/summarize"},
		{http.MethodPost, "/api/ai/enhance"},
		{http.MethodPost, "/api/ai/generate"},
		{http.MethodPost, "/api/ai/analyze-notes"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := s.do(httptest.NewRequest(route.method, route.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, "MISSING_TOKEN", decodeError(t, rec).Error.Code)
		})
	}
}

func TestServer_AuthenticatedNoteListing(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()

	s.tokenSvc.EXPECT().SubjectOf("session").Return(userID.String(), nil).Once()
	s.noteUC.EXPECT().ListNotes(mock.Anything, userID, entity.NoteFilter{Limit: 5}).
		Return([]*entity.Note{{ID: uuid.New(), UserID: userID, Title: "a", Status: entity.NoteStatusDraft}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/notes?limit=5", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer session")
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-1")
	rec := s.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-1", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body struct {
		Data []handler.NoteResponse `json:"data"`
		Meta response.MetaInfo      `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, []string{}, body.Data[0].Tags)
	assert.Equal(t, "trace-1", body.Meta.RequestID)
}

func TestServer_ErrorRendering(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()

	t.Run("server errors are logged and hidden", func(t *testing.T) {
		s.tokenSvc.EXPECT().SubjectOf("session").Return(userID.String(), nil).Once()
		s.aiUC.EXPECT().Generate(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrAIGenerationFailed.WithDetails("upstream 429")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/ai/generate", strings.NewReader(`{"prompt":"x"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer session")
		rec := s.do(req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "AI_GENERATION_FAILED", body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)
	})

	t.Run("body over limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"`+strings.Repeat("a", 2048)+`"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := s.do(req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestServer_PublicRoutes(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/", "/health"} {
		rec := s.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	s.authUC.EXPECT().Logout(mock.Anything, uuid.Nil).Return(nil).Once()
	rec := s.do(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/notes", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.notesia.test")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPut)
	rec := s.do(req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.notesia.test", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPut)

	req = httptest.NewRequest(http.MethodOptions, "/api/notes", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.test")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPut)
	rec = s.do(req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
