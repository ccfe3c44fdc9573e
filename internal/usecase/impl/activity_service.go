package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "notesia/internal/delivery/context"
	"notesia/internal/domain/entity"
	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/repository"
	"notesia/internal/domain/service"
	"notesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activityService struct {
	activityRepo repository.NoteActivityRepository
	logger       *slog.Logger
	now          func() time.Time
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.NoteActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordNoteEvent validates the event and appends it to the activity trail.
// Malformed events are validation errors and will never succeed on retry.
func (srv *activityService) RecordNoteEvent(ctx context.Context, messageID string, event *service.NoteEvent) error {
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("message id is required")
	}
	if event == nil {
		return domainerrors.ErrValidationFailed.WithDetails("event payload is required")
	}

	switch event.Type {
	case service.NoteEventCreated, service.NoteEventUpdated, service.NoteEventDeleted:
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown event type: " + string(event.Type))
	}

	noteID, err := uuid.Parse(event.NoteID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("note_id is not a valid UUID")
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("user_id is not a valid UUID")
	}

	receivedAt := srv.now().UTC()
	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = receivedAt
	}

	activity := &entity.NoteActivity{
		MessageID:  messageID,
		Type:       string(event.Type),
		NoteID:     noteID,
		UserID:     userID,
		Status:     event.Status,
		Tags:       event.Tags,
		RequestID:  event.RequestID,
		OccurredAt: occurredAt,
		ReceivedAt: receivedAt,
	}

	created, err := srv.activityRepo.Record(ctx, activity)
	if err != nil {
		return errors.Wrap(err, "failed to record note activity")
	}

	if !created {
		srv.log(ctx).Debug("Duplicate note event ignored", slog.String("message_id", messageID))

		return nil
	}

	srv.log(ctx).Info("Note activity recorded",
		slog.String("type", activity.Type),
		slog.String("note_id", noteID.String()),
		slog.String("message_id", messageID),
	)

	return nil
}

// ListNoteActivity returns the newest activity first for the user's note.
func (srv *activityService) ListNoteActivity(ctx context.Context, userID, noteID uuid.UUID) ([]*entity.NoteActivity, error) {
	activities, err := srv.activityRepo.ListByNote(ctx, userID, noteID, entity.DefaultActivityListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list note activity")
	}

	return activities, nil
}
