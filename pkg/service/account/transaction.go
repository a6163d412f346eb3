package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/commands"
	"github.com/prosperitycompass/backend/pkg/domain/account"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/mapper"
	"github.com/prosperitycompass/backend/pkg/queries"
	"github.com/prosperitycompass/backend/pkg/repository"
)

// CreateTransaction records a transaction on an account owned by userID. The
// ownership lookup and the insert share one unit of work. A malformed,
// missing or foreign account id yields account.ErrForbiddenAccount and
// nothing is written.
func (s *Service) CreateTransaction(
	ctx context.Context,
	userID uuid.UUID,
	cmd commands.CreateTransaction,
) (*dto.TransactionRead, error) {
	log := s.logger.With("context", "CreateTransaction", "userID", userID)
	accountID, err := uuid.Parse(cmd.AccountID)
	if err != nil {
		log.Warn("malformed account id", "accountID", cmd.AccountID)
		return nil, account.ErrForbiddenAccount
	}

	var tx *account.Transaction
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		read, err := accRepo.GetOwned(ctx, accountID, userID)
		if err != nil {
			return err
		}
		if read == nil {
			return account.ErrForbiddenAccount
		}
		acc, err := mapper.MapAccountReadToDomain(read)
		if err != nil {
			return err
		}
		tx, err = acc.Post(userID, account.Posting{
			PostedAt: cmd.PostedAt,
			Amount:   cmd.Amount,
			Pending:  cmd.Pending,
			Currency: s.currency,
			Merchant: cmd.Merchant,
			Category: cmd.Category,
			Note:     cmd.Note,
		})
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		return txRepo.Create(ctx, mapper.MapTransactionToCreateDTO(tx))
	})
	if err != nil {
		log.Warn("create transaction failed", "accountID", accountID, "error", err)
		return nil, err
	}
	log.Info("transaction created", "transactionID", tx.ID, "accountID", accountID)
	return mapper.MapTransactionToReadDTO(tx), nil
}

// ListTransactions returns up to MaxTransactions of the caller's
// transactions, newest posting first.
func (s *Service) ListTransactions(
	ctx context.Context,
	q queries.ListTransactions,
) (txs []*dto.TransactionRead, err error) {
	filter := dto.TransactionFilter{UserID: q.UserID, Limit: MaxTransactions}
	if q.AccountID != "" {
		accountID, err := uuid.Parse(q.AccountID)
		if err != nil {
			return []*dto.TransactionRead{}, nil
		}
		filter.AccountID = &accountID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		txs, err = repo.List(ctx, filter)
		return err
	})
	if err != nil {
		s.logger.Error("list transactions failed", "userID", q.UserID, "error", err)
		return nil, err
	}
	return txs, nil
}
