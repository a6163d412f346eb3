package account

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var accountColumns = []string{
	"id", "user_id", "name", "institution", "type", "subtype", "mask", "created_at",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	mask := "1111"

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), dto.AccountCreate{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Checking",
		Type:      "depository",
		Mask:      &mask,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOwned_ScopesByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id, owner := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 AND user_id = \$2 .*FOR SHARE`).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(id.String(), owner.String(), "Checking", nil, "depository", nil, "1111", time.Now()))

	got, err := repo.GetOwned(context.Background(), id, owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, owner, got.UserID)
	assert.Equal(t, "1111", *got.Mask)
	assert.Nil(t, got.Institution)
}

func TestRepository_GetOwned_Foreign(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	got, err := repo.GetOwned(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	owner := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(uuid.NewString(), owner.String(), "Card", "Seed Bank", "credit", "credit card", "2222", now).
			AddRow(uuid.NewString(), owner.String(), "Checking", "Seed Bank", "depository", "checking", "1111", now.Add(-time.Minute)))

	got, err := repo.ListByUser(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Card", got[0].Name)
	assert.Equal(t, "Seed Bank", *got[1].Institution)
}
