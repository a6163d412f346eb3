package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prosperitycompass/backend/pkg/domain"
	"github.com/prosperitycompass/backend/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockUoW(t *testing.T) (*UoW, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() }) //nolint:errcheck
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewUoW(db), mock
}

func TestUoW_DoAndGetRepository(t *testing.T) {
	uow, mock := newMockUoW(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		userRepo, err := txUow.UserRepository()
		require.NoError(t, err)
		assert.NotNil(t, userRepo)

		accRepo, err := txUow.AccountRepository()
		require.NoError(t, err)
		assert.NotNil(t, accRepo)

		txRepo, err := txUow.TransactionRepository()
		require.NoError(t, err)
		assert.NotNil(t, txRepo)

		seedRepo, err := txUow.SeedRepository()
		require.NoError(t, err)
		assert.NotNil(t, seedRepo)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackAndMapsErrors(t *testing.T) {
	uow, mock := newMockUoW(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error {
		return gorm.ErrRecordNotFound
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mock.ExpectBegin()
	mock.ExpectRollback()
	boom := errors.New("boom")
	err = uow.Do(context.Background(), func(repository.UnitOfWork) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_GetRepository_Unsupported(t *testing.T) {
	uow, _ := newMockUoW(t)

	_, err := uow.GetRepository(reflect.TypeOf(""))
	assert.Error(t, err)

	// Outside Do the pool session is used.
	repo, err := uow.GetRepository(repository.UserRepositoryType)
	require.NoError(t, err)
	assert.NotNil(t, repo)
}
