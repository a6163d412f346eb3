package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/domain"
	accountdomain "github.com/prosperitycompass/backend/pkg/domain/account"
	"github.com/prosperitycompass/backend/pkg/domain/user"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_RollsBackOnError(t *testing.T) {
	uow := NewUoW()
	ctx := context.Background()
	boom := errors.New("boom")

	err := uow.Do(ctx, func(tx repository.UnitOfWork) error {
		repo, _ := tx.UserRepository()
		require.NoError(t, repo.Create(ctx, &dto.UserCreate{ID: uuid.New(), Email: "a@example.com"}))
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, uow.Store().Users())
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	uow := NewUoW()
	ctx := context.Background()
	repo, _ := uow.UserRepository()

	require.NoError(t, repo.Create(ctx, &dto.UserCreate{ID: uuid.New(), Email: "a@example.com"}))
	err := repo.Create(ctx, &dto.UserCreate{ID: uuid.New(), Email: "a@example.com"})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestTransactionRepository_ListOrderAndLimit(t *testing.T) {
	uow := NewUoW()
	ctx := context.Background()
	users, _ := uow.UserRepository()
	accounts, _ := uow.AccountRepository()
	txs, _ := uow.TransactionRepository()

	uid, aid := uuid.New(), uuid.New()
	require.NoError(t, users.Create(ctx, &dto.UserCreate{ID: uid, Email: "a@example.com"}))
	require.NoError(t, accounts.Create(ctx, dto.AccountCreate{ID: aid, UserID: uid, Name: "Checking", Type: "depository"}))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, txs.Create(ctx, dto.TransactionCreate{
			ID: uuid.New(), UserID: uid, AccountID: aid,
			PostedAt: base.AddDate(0, 0, i), CreatedAt: base,
		}))
	}

	got, err := txs.List(ctx, dto.TransactionFilter{UserID: uid, Limit: 3})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, base.AddDate(0, 0, 4), got[0].PostedAt)
	assert.Equal(t, base.AddDate(0, 0, 2), got[2].PostedAt)

	other, err := txs.List(ctx, dto.TransactionFilter{UserID: uuid.New(), Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCreate_RequiresParentRow(t *testing.T) {
	uow := NewUoW()
	ctx := context.Background()

	accounts, err := uow.AccountRepository()
	require.NoError(t, err)
	err = accounts.Create(ctx, dto.AccountCreate{ID: uuid.New(), UserID: uuid.New(), Name: "Orphan", Type: "depository"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	txs, err := uow.TransactionRepository()
	require.NoError(t, err)
	err = txs.Create(ctx, dto.TransactionCreate{ID: uuid.New(), UserID: uuid.New(), AccountID: uuid.New()})
	assert.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
	assert.Empty(t, uow.Store().Transactions())
}
