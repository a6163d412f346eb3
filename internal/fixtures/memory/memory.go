// Package memory provides an in-memory UnitOfWork used by service and HTTP
// tests. Do serializes units of work and restores a snapshot when fn fails.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"
	accountdomain "github.com/prosperitycompass/backend/pkg/domain/account"
	"github.com/prosperitycompass/backend/pkg/domain/user"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/repository"
	"github.com/prosperitycompass/backend/pkg/repository/account"
	"github.com/prosperitycompass/backend/pkg/repository/seed"
	"github.com/prosperitycompass/backend/pkg/repository/transaction"
	userrepo "github.com/prosperitycompass/backend/pkg/repository/user"
)

type state struct {
	users        []dto.UserRead
	accounts     []dto.AccountRead
	transactions []dto.TransactionRead
}

func (s state) clone() state {
	return state{
		users:        slices.Clone(s.users),
		accounts:     slices.Clone(s.accounts),
		transactions: slices.Clone(s.transactions),
	}
}

// Store holds the rows shared by every UoW created from it.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// UoW implements repository.UnitOfWork over a Store.
type UoW struct {
	store *Store
}

// NewUoW returns a UnitOfWork backed by a fresh store.
func NewUoW() *UoW {
	return &UoW{store: NewStore()}
}

// Store exposes the underlying rows for assertions.
func (u *UoW) Store() *Store { return u.store }

// Do runs fn with all-or-nothing semantics.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	u.store.mu.RLock()
	snapshot := u.store.data.clone()
	u.store.mu.RUnlock()

	if err := fn(u); err != nil {
		u.store.mu.Lock()
		u.store.data = snapshot
		u.store.mu.Unlock()
		return err
	}
	return nil
}

// GetRepository returns the in-memory repository for repoType.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	switch repoType {
	case repository.UserRepositoryType:
		return &userRepository{store: u.store}, nil
	case repository.AccountRepositoryType:
		return &accountRepository{store: u.store}, nil
	case repository.TransactionRepositoryType:
		return &transactionRepository{store: u.store}, nil
	case repository.SeedRepositoryType:
		return &seedRepository{store: u.store}, nil
	}
	return nil, fmt.Errorf("unsupported repository type: %v", repoType)
}

func (u *UoW) UserRepository() (userrepo.Repository, error) {
	return &userRepository{store: u.store}, nil
}

func (u *UoW) AccountRepository() (account.Repository, error) {
	return &accountRepository{store: u.store}, nil
}

func (u *UoW) TransactionRepository() (transaction.Repository, error) {
	return &transactionRepository{store: u.store}, nil
}

func (u *UoW) SeedRepository() (seed.Repository, error) {
	return &seedRepository{store: u.store}, nil
}

// Users returns a copy of the stored users.
func (s *Store) Users() []dto.UserRead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.users)
}

// Accounts returns a copy of the stored accounts.
func (s *Store) Accounts() []dto.AccountRead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.accounts)
}

// Transactions returns a copy of the stored transactions.
func (s *Store) Transactions() []dto.TransactionRead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.transactions)
}

type userRepository struct{ store *Store }

func (r *userRepository) Create(_ context.Context, create *dto.UserCreate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.data.users {
		if u.Email == create.Email {
			return user.ErrDuplicateEmail
		}
	}
	r.store.data.users = append(r.store.data.users, dto.UserRead{
		ID:             create.ID,
		Email:          create.Email,
		Name:           create.Name,
		HashedPassword: create.PasswordHash,
		CreatedAt:      create.CreatedAt,
	})
	return nil
}

func (r *userRepository) find(match func(dto.UserRead) bool) *dto.UserRead {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.data.users {
		if match(u) {
			found := u
			return &found
		}
	}
	return nil
}

func (r *userRepository) Get(_ context.Context, id uuid.UUID) (*dto.UserRead, error) {
	return r.find(func(u dto.UserRead) bool { return u.ID == id }), nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*dto.UserRead, error) {
	return r.find(func(u dto.UserRead) bool { return u.Email == email }), nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

func (r *userRepository) List(context.Context) ([]*dto.UserRead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*dto.UserRead, 0, len(r.store.data.users))
	for i := len(r.store.data.users) - 1; i >= 0; i-- {
		u := r.store.data.users[i]
		out = append(out, &u)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type accountRepository struct{ store *Store }

func (r *accountRepository) Create(_ context.Context, create dto.AccountCreate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !slices.ContainsFunc(r.store.data.users, func(u dto.UserRead) bool { return u.ID == create.UserID }) {
		return user.ErrUserNotFound
	}
	r.store.data.accounts = append(r.store.data.accounts, dto.AccountRead{
		ID:          create.ID,
		UserID:      create.UserID,
		Name:        create.Name,
		Institution: create.Institution,
		Type:        create.Type,
		Subtype:     create.Subtype,
		Mask:        create.Mask,
		CreatedAt:   create.CreatedAt,
	})
	return nil
}

func (r *accountRepository) GetOwned(_ context.Context, id, userID uuid.UUID) (*dto.AccountRead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, a := range r.store.data.accounts {
		if a.ID == id && a.UserID == userID {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *accountRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*dto.AccountRead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*dto.AccountRead, 0)
	for i := len(r.store.data.accounts) - 1; i >= 0; i-- {
		if a := r.store.data.accounts[i]; a.UserID == userID {
			out = append(out, &a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type transactionRepository struct{ store *Store }

func (r *transactionRepository) Create(_ context.Context, create dto.TransactionCreate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if !slices.ContainsFunc(r.store.data.accounts, func(a dto.AccountRead) bool { return a.ID == create.AccountID }) {
		return accountdomain.ErrAccountNotFound
	}
	r.store.data.transactions = append(r.store.data.transactions, dto.TransactionRead{
		ID:        create.ID,
		UserID:    create.UserID,
		AccountID: create.AccountID,
		PostedAt:  create.PostedAt,
		Amount:    create.Amount,
		Pending:   create.Pending,
		Currency:  create.Currency,
		Merchant:  create.Merchant,
		Category:  create.Category,
		Note:      create.Note,
		CreatedAt: create.CreatedAt,
	})
	return nil
}

func (r *transactionRepository) List(_ context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*dto.TransactionRead, 0)
	for i := len(r.store.data.transactions) - 1; i >= 0; i-- {
		t := r.store.data.transactions[i]
		if t.UserID != filter.UserID {
			continue
		}
		if filter.AccountID != nil && t.AccountID != *filter.AccountID {
			continue
		}
		out = append(out, &t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PostedAt.Equal(out[j].PostedAt) {
			return out[i].PostedAt.After(out[j].PostedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

type seedRepository struct{ store *Store }

func (r *seedRepository) Purge(_ context.Context, userID *uuid.UUID, tag seed.Tag) (seed.Purged, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var purged seed.Purged
	scoped := func(owner uuid.UUID) bool { return userID == nil || owner == *userID }

	tagged := map[uuid.UUID]bool{}
	for _, a := range r.store.data.accounts {
		if scoped(a.UserID) && a.Institution != nil && *a.Institution == tag.Institution {
			tagged[a.ID] = true
		}
	}
	r.store.data.transactions = slices.DeleteFunc(r.store.data.transactions, func(t dto.TransactionRead) bool {
		hit := scoped(t.UserID) && (tagged[t.AccountID] || (t.Note != nil && *t.Note == tag.Note))
		if hit {
			purged.Transactions++
		}
		return hit
	})
	r.store.data.accounts = slices.DeleteFunc(r.store.data.accounts, func(a dto.AccountRead) bool {
		if tagged[a.ID] {
			purged.Accounts++
			return true
		}
		return false
	})
	return purged, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
