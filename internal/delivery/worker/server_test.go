package worker

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notesia/config"
	deliverycontext "notesia/internal/delivery/context"
	"notesia/internal/delivery/worker/handler"
	mockUsecase "notesia/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockActivityUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	activityUC := mockUsecase.NewMockActivityUsecase(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:     cfg,
		Logger:     logger,
		ActivityUC: activityUC,
	})

	return newEcho(cfg, logger, pushHandler), activityUC
}

func TestWorkerServer_Routes(t *testing.T) {
	e, activityUC := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	activityUC.EXPECT().RecordNoteEvent(mock.Anything, "msg-1", mock.Anything).Return(nil).Once()

	data := base64.StdEncoding.EncodeToString([]byte(`{"type":"note.created","note_id":"n","user_id":"u"}`))
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"`+data+`","messageId":"msg-1"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkerServer_RejectsOversizedPush(t *testing.T) {
	e, _ := newTestEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"`+strings.Repeat("A", 4096)+`"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
