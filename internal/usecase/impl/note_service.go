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

const maxTitleLength = 255

// noteService implements the NoteUsecase interface.
type noteService struct {
	txManager repository.TransactionManager
	noteRepo  repository.NoteRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	NoteRepo  repository.NoteRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		txManager: params.TxManager,
		noteRepo:  params.NoteRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateNote stores a new note owned by userID.
func (srv *noteService) CreateNote(ctx context.Context, userID uuid.UUID, input *usecase.CreateNoteInput) (*entity.Note, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.NoteStatusDraft
	}
	if !status.IsValid() {
		return nil, invalidStatusError(status)
	}

	note := &entity.Note{
		UserID:  userID,
		Title:   title,
		Content: input.Content,
		Tags:    normalizeTags(input.Tags),
		Status:  status,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NoteRepo().Create(ctx, note)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create note", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create note")
	}

	srv.log(ctx).Debug("Note created", slog.Any("note_id", note.ID))
	srv.publish(ctx, service.NoteEventCreated, note)

	return note, nil
}

// GetNote returns a note owned by userID.
func (srv *noteService) GetNote(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := srv.noteRepo.FindByID(ctx, userID, noteID)
	if err != nil {
		return nil, translateNoteError(err, "failed to find note")
	}

	return note, nil
}

// UpdateNote applies a partial update. Only supplied fields change and updated_at is always bumped.
func (srv *noteService) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, input *usecase.UpdateNoteInput) (*entity.Note, error) {
	var updated *entity.Note

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		noteRepo := repoFactory.NoteRepo()

		note, err := noteRepo.FindByID(ctx, userID, noteID)
		if err != nil {
			return err
		}

		if err := applyNoteUpdate(note, input); err != nil {
			return err
		}

		if err := noteRepo.Update(ctx, note); err != nil {
			return err
		}
		updated = note

		return nil
	})
	if err != nil {
		if isClientError(err) {
			return nil, translateNoteError(err, "failed to update note")
		}
		srv.log(ctx).Error("Failed to update note", slog.Any("note_id", noteID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrNoteUpdateFailed, err.Error())
	}

	srv.publish(ctx, service.NoteEventUpdated, updated)

	return updated, nil
}

// DeleteNote removes a note owned by userID.
func (srv *noteService) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NoteRepo().Delete(ctx, userID, noteID)
	})
	if err != nil {
		return translateNoteError(err, "failed to delete note")
	}

	srv.publish(ctx, service.NoteEventDeleted, &entity.Note{ID: noteID, UserID: userID})

	return nil
}

// ListNotes returns a page of the user's notes, most recently updated first.
func (srv *noteService) ListNotes(ctx context.Context, userID uuid.UUID, filter entity.NoteFilter) ([]*entity.Note, error) {
	if filter.Limit == 0 {
		filter.Limit = entity.DefaultNoteListLimit
	}
	if filter.Limit < 1 || filter.Limit > entity.MaxNoteListLimit {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit must be between 1 and 100")
	}
	if filter.Offset < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offset must not be negative")
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, invalidStatusError(*filter.Status)
	}
	filter.Search = strings.TrimSpace(filter.Search)

	notes, err := srv.noteRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	return notes, nil
}

// ListTags returns the sorted distinct tags across the user's notes.
func (srv *noteService) ListTags(ctx context.Context, userID uuid.UUID) ([]string, error) {
	tags, err := srv.noteRepo.ListTags(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}
	if tags == nil {
		tags = []string{}
	}

	return tags, nil
}

// publish emits a note event. Failures are logged and never reach the caller.
func (srv *noteService) publish(ctx context.Context, eventType service.NoteEventType, note *entity.Note) {
	event := &service.NoteEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		NoteID:     note.ID.String(),
		UserID:     note.UserID.String(),
		Status:     note.Status.String(),
		Tags:       note.Tags,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishNoteEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish note event",
			slog.String("type", string(eventType)),
			slog.String("note_id", event.NoteID),
			slog.Any("error", err),
		)
	}
}

func applyNoteUpdate(note *entity.Note, input *usecase.UpdateNoteInput) error {
	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return err
		}
		note.Title = title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Tags != nil {
		note.Tags = normalizeTags(input.Tags)
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return invalidStatusError(*input.Status)
		}
		note.Status = *input.Status
	}

	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if len([]rune(title)) > maxTitleLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("title must be at most 255 characters")
	}

	return title, nil
}

func invalidStatusError(status entity.NoteStatus) error {
	return domainerrors.ErrValidationFailed.WithDetails("unknown status: " + status.String())
}

// normalizeTags trims tags and drops empty and repeated ones, keeping first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

func isClientError(err error) bool {
	return errors.Is(err, repository.ErrNoteNotFound) || errors.Is(err, domainerrors.ErrValidationFailed)
}

func translateNoteError(err error, msg string) error {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return domainerrors.ErrNoteNotFound
	}
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return err
	}

	return errors.Wrap(err, msg)
}
