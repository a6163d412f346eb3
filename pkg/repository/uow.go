package repository

import (
	"context"
	"reflect"

	"github.com/prosperitycompass/backend/pkg/repository/account"
	"github.com/prosperitycompass/backend/pkg/repository/seed"
	"github.com/prosperitycompass/backend/pkg/repository/transaction"
	"github.com/prosperitycompass/backend/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Repositories obtained inside Do share the same database session, so an
// ownership check and the insert that depends on it commit or roll back together.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction/session.
	//
	//	repoAny, err := uow.GetRepository(repository.UserRepositoryType)
	GetRepository(repoType reflect.Type) (any, error)

	UserRepository() (user.Repository, error)
	AccountRepository() (account.Repository, error)
	TransactionRepository() (transaction.Repository, error)
	SeedRepository() (seed.Repository, error)
}

// Types used as GetRepository keys.
var (
	UserRepositoryType        = reflect.TypeOf((*user.Repository)(nil)).Elem()
	AccountRepositoryType     = reflect.TypeOf((*account.Repository)(nil)).Elem()
	TransactionRepositoryType = reflect.TypeOf((*transaction.Repository)(nil)).Elem()
	SeedRepositoryType        = reflect.TypeOf((*seed.Repository)(nil)).Elem()
)
