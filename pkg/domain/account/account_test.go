package account

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/domain"
	"github.com/prosperitycompass/backend/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuilder(t *testing.T) {
	userID := uuid.New()
	acc, err := New().
		WithUserID(userID).
		WithName(" Checking ").
		WithType("depository").
		WithSubtype(strPtr("checking")).
		WithMask(strPtr("1111")).
		Build()
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, acc.ID)
	assert.Equal(t, userID, acc.UserID)
	assert.Equal(t, "Checking", acc.Name)
	assert.Equal(t, "depository", acc.Type)
	assert.Nil(t, acc.Institution)
	assert.Equal(t, "1111", *acc.Mask)
	assert.True(t, acc.OwnedBy(userID))
	assert.False(t, acc.OwnedBy(uuid.New()))
}

func TestBuilder_Invariants(t *testing.T) {
	_, err := New().WithName("x").WithType("credit").Build()
	assert.ErrorIs(t, err, errUserRequired, "owner is mandatory")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = New().WithUserID(uuid.New()).WithType("credit").Build()
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = New().WithUserID(uuid.New()).WithName("x").Build()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPost(t *testing.T) {
	owner := uuid.New()
	acc, err := New().WithUserID(owner).WithName("Checking").WithType("depository").Build()
	require.NoError(t, err)

	posted := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tx, err := acc.Post(owner, Posting{
		PostedAt: posted,
		Amount:   decimal.RequireFromString("-18.75"),
	})
	require.NoError(t, err)
	assert.Equal(t, acc.ID, tx.AccountID)
	assert.Equal(t, owner, tx.UserID)
	assert.Equal(t, money.USD, tx.Currency)
	assert.False(t, tx.Pending)
	assert.Equal(t, "-18.75", tx.Amount.String())
	assert.True(t, posted.Equal(tx.PostedAt))
}

func TestPost_Forbidden(t *testing.T) {
	acc, err := New().WithUserID(uuid.New()).WithName("Checking").WithType("depository").Build()
	require.NoError(t, err)

	tx, err := acc.Post(uuid.New(), Posting{Amount: decimal.NewFromInt(1)})
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, ErrForbiddenAccount)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	var missing *Account
	_, err = missing.Post(uuid.New(), Posting{})
	assert.ErrorIs(t, err, ErrForbiddenAccount)
}

func TestPost_InvalidAmount(t *testing.T) {
	owner := uuid.New()
	acc, err := New().WithUserID(owner).WithName("Card").WithType("credit").Build()
	require.NoError(t, err)

	_, err = acc.Post(owner, Posting{Amount: decimal.RequireFromString("0.001")})
	assert.ErrorIs(t, err, money.ErrAmountPrecision)

	_, err = acc.Post(owner, Posting{Amount: decimal.NewFromInt(1), Currency: "usd"})
	assert.ErrorIs(t, err, money.ErrInvalidCurrency)
}
