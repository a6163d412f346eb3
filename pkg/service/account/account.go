// Package account provides business logic for accounts and their transactions.
// Every operation is scoped to the authenticated user id passed in by the caller.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/commands"
	"github.com/prosperitycompass/backend/pkg/domain/account"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/mapper"
	"github.com/prosperitycompass/backend/pkg/money"
	"github.com/prosperitycompass/backend/pkg/repository"
)

// MaxTransactions caps a transaction listing.
const MaxTransactions = 100

// Service provides account and transaction operations.
type Service struct {
	uow      repository.UnitOfWork
	currency money.Code
	logger   *slog.Logger
}

// New creates a new account Service. Transactions are recorded in currency,
// normalized to upper case, falling back to money.DefaultCode when it is
// empty or malformed.
func New(
	uow repository.UnitOfWork,
	currency string,
	logger *slog.Logger,
) *Service {
	code, err := money.ParseCode(currency)
	if err != nil {
		logger.Warn("Invalid currency, using default", "currency", currency, "default", money.DefaultCode)
		code = money.DefaultCode
	}
	return &Service{uow: uow, currency: code, logger: logger}
}

// CreateAccount stores a new account owned by userID.
func (s *Service) CreateAccount(
	ctx context.Context,
	userID uuid.UUID,
	cmd commands.CreateAccount,
) (*dto.AccountRead, error) {
	log := s.logger.With("context", "CreateAccount", "userID", userID)
	acc, err := account.New().
		WithUserID(userID).
		WithName(cmd.Name).
		WithType(cmd.Type).
		WithInstitution(cmd.Institution).
		WithSubtype(cmd.Subtype).
		WithMask(cmd.Mask).
		Build()
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, mapper.MapAccountToCreateDTO(acc))
	})
	if err != nil {
		log.Error("create account failed", "error", err)
		return nil, err
	}
	log.Info("account created", "accountID", acc.ID)
	return mapper.MapAccountToReadDTO(acc), nil
}

// ListAccounts returns the user's accounts, newest first.
func (s *Service) ListAccounts(
	ctx context.Context,
	userID uuid.UUID,
) (accounts []*dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("list accounts failed", "userID", userID, "error", err)
		return nil, err
	}
	return accounts, nil
}
