package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"notesia/internal/domain/repository"
	mockRepo "notesia/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes txManager run the callback against factory and return its result.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newNoteFactory(t *testing.T) (*mockRepo.MockRepositoryFactory, *mockRepo.MockNoteRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	noteRepo := mockRepo.NewMockNoteRepository(t)
	factory.EXPECT().NoteRepo().Return(noteRepo).Maybe()

	return factory, noteRepo
}
