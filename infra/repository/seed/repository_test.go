package seed

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/repository/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRepository_Purge(t *testing.T) {
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDb.Close() //nolint:errcheck
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	userID := uuid.New()
	tag := seed.Tag{Note: "seed", Institution: "Seed Bank"}

	mock.ExpectExec(`DELETE FROM "transactions" WHERE \(note = \$1 OR account_id IN \(SELECT id FROM "accounts" WHERE institution = \$2 AND user_id = \$3\)\) AND user_id = \$4`).
		WithArgs("seed", "Seed Bank", userID, userID).
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec(`DELETE FROM "accounts" WHERE institution = \$1 AND user_id = \$2`).
		WithArgs("Seed Bank", userID).
		WillReturnResult(sqlmock.NewResult(0, 2))

	purged, err := New(db).Purge(context.Background(), &userID, tag)
	require.NoError(t, err)
	assert.Equal(t, int64(10), purged.Transactions)
	assert.Equal(t, int64(2), purged.Accounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
