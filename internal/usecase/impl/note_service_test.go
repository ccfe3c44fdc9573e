package impl

import (
	"context"
	"testing"

	deliverycontext "notesia/internal/delivery/context"
	"notesia/internal/domain/entity"
	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/repository"
	"notesia/internal/domain/service"
	mockRepo "notesia/internal/mocks/repository"
	mockSvc "notesia/internal/mocks/service"
	"notesia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type noteFixture struct {
	txManager *mockRepo.MockTransactionManager
	noteRepo  *mockRepo.MockNoteRepository
	publisher *mockSvc.MockEventPublisher
	service   usecase.NoteUsecase
}

func newNoteFixture(t *testing.T) *noteFixture {
	f := &noteFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		noteRepo:  mockRepo.NewMockNoteRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewNoteService(NoteServiceParams{
		TxManager: f.txManager,
		NoteRepo:  f.noteRepo,
		Publisher: f.publisher,
		Logger:    discardLogger(),
	})

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func TestNoteService_CreateNote_Defaults(t *testing.T) {
	f := newNoteFixture(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")
	userID := uuid.New()
	factory, txNoteRepo := newNoteFactory(t)
	expectTx(f.txManager, factory)

	txNoteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Note")).
		RunAndReturn(func(_ context.Context, note *entity.Note) error {
			note.ID = uuid.New()
			return nil
		})
	f.publisher.EXPECT().PublishNoteEvent(ctx, mock.MatchedBy(func(e *service.NoteEvent) bool {
		return e.Type == service.NoteEventCreated && e.RequestID == "req-7" && e.UserID == userID.String()
	})).Return(nil)

	note, err := f.service.CreateNote(ctx, userID, &usecase.CreateNoteInput{
		Title:   "  Groceries ",
		Content: "milk, eggs",
		Tags:    []string{"home", " home", "", "errands"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, entity.NoteStatusDraft, note.Status)
	assert.Equal(t, []string{"home", "errands"}, note.Tags)
	assert.Equal(t, userID, note.UserID)
}

func TestNoteService_CreateNote_PublishFailureIsIgnored(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	factory, txNoteRepo := newNoteFactory(t)
	expectTx(f.txManager, factory)

	txNoteRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishNoteEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := f.service.CreateNote(ctx, uuid.New(), &usecase.CreateNoteInput{Title: "t", Status: entity.NoteStatusPublished})
	assert.NoError(t, err)
}

func TestNoteService_CreateNote_Validation(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateNote(ctx, uuid.New(), &usecase.CreateNoteInput{Title: "   "})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = f.service.CreateNote(ctx, uuid.New(), &usecase.CreateNoteInput{Title: "t", Status: "deleted"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNoteService_GetNote_NotFound(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	userID, noteID := uuid.New(), uuid.New()

	f.noteRepo.EXPECT().FindByID(ctx, userID, noteID).Return(nil, repository.ErrNoteNotFound)

	_, err := f.service.GetNote(ctx, userID, noteID)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_UpdateNote_Partial(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	userID, noteID := uuid.New(), uuid.New()
	existing := &entity.Note{
		ID:      noteID,
		UserID:  userID,
		Title:   "Old",
		Content: "unchanged",
		Tags:    []string{"a"},
		Status:  entity.NoteStatusDraft,
	}
	factory, txNoteRepo := newNoteFactory(t)
	expectTx(f.txManager, factory)

	txNoteRepo.EXPECT().FindByID(ctx, userID, noteID).Return(existing, nil)
	txNoteRepo.EXPECT().Update(ctx, existing).Return(nil)
	f.publisher.EXPECT().PublishNoteEvent(ctx, mock.MatchedBy(func(e *service.NoteEvent) bool {
		return e.Type == service.NoteEventUpdated && e.Status == "archived"
	})).Return(nil)

	note, err := f.service.UpdateNote(ctx, userID, noteID, &usecase.UpdateNoteInput{
		Title:  ptr("New"),
		Status: ptr(entity.NoteStatusArchived),
	})

	require.NoError(t, err)
	assert.Equal(t, "New", note.Title)
	assert.Equal(t, "unchanged", note.Content)
	assert.Equal(t, []string{"a"}, note.Tags)
	assert.Equal(t, entity.NoteStatusArchived, note.Status)
}

func TestNoteService_UpdateNote_ReplacesTags(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	userID, noteID := uuid.New(), uuid.New()
	existing := &entity.Note{ID: noteID, UserID: userID, Title: "t", Tags: []string{"a", "b"}, Status: entity.NoteStatusDraft}
	factory, txNoteRepo := newNoteFactory(t)
	expectTx(f.txManager, factory)

	txNoteRepo.EXPECT().FindByID(ctx, userID, noteID).Return(existing, nil)
	txNoteRepo.EXPECT().Update(ctx, existing).Return(nil)
	f.publisher.EXPECT().PublishNoteEvent(ctx, mock.Anything).Return(nil)

	note, err := f.service.UpdateNote(ctx, userID, noteID, &usecase.UpdateNoteInput{Tags: []string{}})

	require.NoError(t, err)
	assert.Empty(t, note.Tags)
}

func TestNoteService_UpdateNote_OtherUsersNote(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	userID, noteID := uuid.New(), uuid.New()
	factory, txNoteRepo := newNoteFactory(t)
	expectTx(f.txManager, factory)

	txNoteRepo.EXPECT().FindByID(ctx, userID, noteID).Return(nil, repository.ErrNoteNotFound)

	_, err := f.service.UpdateNote(ctx, userID, noteID, &usecase.UpdateNoteInput{Title: ptr("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_UpdateNote_InvalidStatus(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	userID, noteID := uuid.New(), uuid.New()
	factory, txNoteRepo := newNoteFactory(t)
	expectTx(f.txManager, factory)

	txNoteRepo.EXPECT().FindByID(ctx, userID, noteID).
		Return(&entity.Note{ID: noteID, UserID: userID, Title: "t", Status: entity.NoteStatusDraft}, nil)

	_, err := f.service.UpdateNote(ctx, userID, noteID, &usecase.UpdateNoteInput{Status: ptr(entity.NoteStatus("gone"))})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNoteService_DeleteNote(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	userID, noteID := uuid.New(), uuid.New()
	factory, txNoteRepo := newNoteFactory(t)
	expectTx(f.txManager, factory)

	txNoteRepo.EXPECT().Delete(ctx, userID, noteID).Return(nil)
	f.publisher.EXPECT().PublishNoteEvent(ctx, mock.MatchedBy(func(e *service.NoteEvent) bool {
		return e.Type == service.NoteEventDeleted && e.NoteID == noteID.String()
	})).Return(nil)

	assert.NoError(t, f.service.DeleteNote(ctx, userID, noteID))
}

func TestNoteService_DeleteNote_NotFound(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	factory, txNoteRepo := newNoteFactory(t)
	expectTx(f.txManager, factory)

	txNoteRepo.EXPECT().Delete(ctx, mock.Anything, mock.Anything).Return(repository.ErrNoteNotFound)

	err := f.service.DeleteNote(ctx, uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_ListNotes(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("applies default limit", func(t *testing.T) {
		f := newNoteFixture(t)
		f.noteRepo.EXPECT().List(ctx, userID, mock.MatchedBy(func(filter entity.NoteFilter) bool {
			return filter.Limit == entity.DefaultNoteListLimit && filter.Search == "meeting"
		})).Return([]*entity.Note{{Title: "Meeting notes"}}, nil)

		notes, err := f.service.ListNotes(ctx, userID, entity.NoteFilter{Search: " meeting "})
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		f := newNoteFixture(t)
		archived := entity.NoteStatus("trash")

		for _, filter := range []entity.NoteFilter{
			{Limit: 101},
			{Limit: -1},
			{Offset: -5},
			{Status: &archived},
		} {
			_, err := f.service.ListNotes(ctx, userID, filter)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "%+v", filter)
		}
	})
}

func TestNoteService_ListTags(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.noteRepo.EXPECT().ListTags(ctx, userID).Return(nil, nil)

	tags, err := f.service.ListTags(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, normalizeTags([]string{" b", "a", "b ", "  "}))
	assert.Equal(t, []string{}, normalizeTags(nil))
}
