package postgres

import (
	"context"
	"testing"

	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// nonTxPool is a connection pool that cannot start transactions.
type nonTxPool struct {
	gorm.ConnPool
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: nonTxPool{}}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	called := false
	err = NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.False(t, called)
}
