package mapper

import (
	"github.com/prosperitycompass/backend/pkg/domain/account"
	"github.com/prosperitycompass/backend/pkg/dto"
)

// MapAccountReadToDomain maps a dto.AccountRead to a domain Account.
func MapAccountReadToDomain(read *dto.AccountRead) (*account.Account, error) {
	return account.New().
		WithID(read.ID).
		WithUserID(read.UserID).
		WithName(read.Name).
		WithInstitution(read.Institution).
		WithType(read.Type).
		WithSubtype(read.Subtype).
		WithMask(read.Mask).
		WithCreatedAt(read.CreatedAt).
		Build()
}

// MapAccountToCreateDTO maps a domain Account to its persistence DTO.
func MapAccountToCreateDTO(a *account.Account) dto.AccountCreate {
	return dto.AccountCreate{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Institution: a.Institution,
		Type:        a.Type,
		Subtype:     a.Subtype,
		Mask:        a.Mask,
		CreatedAt:   a.CreatedAt,
	}
}

// MapAccountToReadDTO maps a domain Account to its API representation.
func MapAccountToReadDTO(a *account.Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Institution: a.Institution,
		Type:        a.Type,
		Subtype:     a.Subtype,
		Mask:        a.Mask,
		CreatedAt:   a.CreatedAt,
	}
}

// MapTransactionToCreateDTO maps a domain Transaction to its persistence DTO.
func MapTransactionToCreateDTO(t *account.Transaction) dto.TransactionCreate {
	return dto.TransactionCreate{
		ID:        t.ID,
		UserID:    t.UserID,
		AccountID: t.AccountID,
		PostedAt:  t.PostedAt,
		Amount:    t.Amount,
		Pending:   t.Pending,
		Currency:  t.Currency.String(),
		Merchant:  t.Merchant,
		Category:  t.Category,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}

// MapTransactionToReadDTO maps a domain Transaction to its API representation.
func MapTransactionToReadDTO(t *account.Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:        t.ID,
		UserID:    t.UserID,
		AccountID: t.AccountID,
		PostedAt:  t.PostedAt,
		Amount:    t.Amount,
		Pending:   t.Pending,
		Currency:  t.Currency.String(),
		Merchant:  t.Merchant,
		Category:  t.Category,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}
