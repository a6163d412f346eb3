package repository

import (
	"context"
	"fmt"
	"reflect"

	accountrepo "github.com/prosperitycompass/backend/infra/repository/account"
	seedrepo "github.com/prosperitycompass/backend/infra/repository/seed"
	transactionrepo "github.com/prosperitycompass/backend/infra/repository/transaction"
	userrepo "github.com/prosperitycompass/backend/infra/repository/user"
	"github.com/prosperitycompass/backend/pkg/repository"
	"github.com/prosperitycompass/backend/pkg/repository/account"
	"github.com/prosperitycompass/backend/pkg/repository/seed"
	"github.com/prosperitycompass/backend/pkg/repository/transaction"
	"github.com/prosperitycompass/backend/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories returned inside Do are bound to the transaction session;
// outside Do they use the pool directly.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			repository.UserRepositoryType:        func(db *gorm.DB) any { return userrepo.New(db) },
			repository.AccountRepositoryType:     func(db *gorm.DB) any { return accountrepo.New(db) },
			repository.TransactionRepositoryType: func(db *gorm.DB) any { return transactionrepo.New(db) },
			repository.SeedRepositoryType:        func(db *gorm.DB) any { return seedrepo.New(db) },
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
// Untranslated GORM errors escaping fn are mapped to domain errors.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
	return MapGormErrorToDomain(err)
}

// GetRepository provides type-safe access to repositories using the current session.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

func (u *UoW) UserRepository() (user.Repository, error) {
	return get[user.Repository](u, repository.UserRepositoryType)
}

func (u *UoW) AccountRepository() (account.Repository, error) {
	return get[account.Repository](u, repository.AccountRepositoryType)
}

func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return get[transaction.Repository](u, repository.TransactionRepositoryType)
}

func (u *UoW) SeedRepository() (seed.Repository, error) {
	return get[seed.Repository](u, repository.SeedRepositoryType)
}

func get[T any](u *UoW, repoType reflect.Type) (T, error) {
	var zero T
	repoAny, err := u.GetRepository(repoType)
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
