// Package seed loads and removes the demo dataset used for local
// development. Seeded rows are tagged so a reseed or reset never touches data
// created through the API.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/commands"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/repository"
	seedrepo "github.com/prosperitycompass/backend/pkg/repository/seed"
	accountsvc "github.com/prosperitycompass/backend/pkg/service/account"
	usersvc "github.com/prosperitycompass/backend/pkg/service/user"
	"github.com/shopspring/decimal"
)

const (
	TagNote        = "seed"
	TagInstitution = "Seed Bank"
	// DemoPassword is the password of every demo user created by Run.
	DemoPassword = "password123"
)

// Tag marks seeded rows.
var Tag = seedrepo.Tag{Note: TagNote, Institution: TagInstitution}

type demoUser struct {
	email string
	name  string
}

type demoTx struct {
	daysAgo  int
	amount   string
	merchant string
	category string
}

type demoAccount struct {
	name    string
	kind    string
	subtype string
	mask    string
	txs     []demoTx
}

var demoUsers = []demoUser{
	{email: "alice@example.com", name: "Alice"},
	{email: "bob@example.com", name: "Bob"},
	{email: "carol@example.com", name: "Carol"},
}

var demoAccounts = []demoAccount{
	{
		name: "Everyday Checking", kind: "depository", subtype: "checking", mask: "1111",
		txs: []demoTx{
			{1, "-18.75", "Coffee Shop", "Coffee"},
			{2, "-42.10", "Grocery Town", "Groceries"},
			{3, "-12.99", "App Store", "Digital"},
			{5, "950.00", "Acme, Inc.", "Income"},
			{7, "-64.50", "Fuel Station", "Gas"},
			{9, "-28.00", "Takeout Place", "Dining"},
		},
	},
	{
		name: "Rewards Credit Card", kind: "credit", subtype: "credit card", mask: "2222",
		txs: []demoTx{
			{1, "-35.20", "Amazon", "Shopping"},
			{4, "-89.99", "ElectroMart", "Electronics"},
			{8, "-14.29", "MusicStream", "Subscriptions"},
			{12, "-120.00", "Restaurant", "Dining"},
		},
	},
}

// Result describes what Run did for one demo user.
type Result struct {
	User         *dto.UserRead
	Created      bool
	Purged       seedrepo.Purged
	Accounts     int
	Transactions int
}

// Seeder writes the demo dataset through the same services the API uses.
type Seeder struct {
	uow      repository.UnitOfWork
	users    *usersvc.Service
	accounts *accountsvc.Service
	logger   *slog.Logger
	now      func() time.Time
}

func New(
	uow repository.UnitOfWork,
	users *usersvc.Service,
	accounts *accountsvc.Service,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		uow:      uow,
		users:    users,
		accounts: accounts,
		logger:   logger,
		now:      time.Now,
	}
}

// Run creates the demo users when missing, leaving existing ones untouched,
// then replaces their previously seeded accounts and transactions.
func (s *Seeder) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(demoUsers))
	for _, du := range demoUsers {
		res, err := s.seedUser(ctx, du)
		if err != nil {
			return results, fmt.Errorf("seed %s: %w", du.email, err)
		}
		s.logger.Info("Demo user seeded",
			"email", res.User.Email,
			"userID", res.User.ID,
			"created", res.Created,
			"accounts", res.Accounts,
			"transactions", res.Transactions,
		)
		results = append(results, res)
	}
	return results, nil
}

// Reset removes every seeded transaction and seeded account.
func (s *Seeder) Reset(ctx context.Context) (purged seedrepo.Purged, err error) {
	purged, err = s.purge(ctx, nil)
	if err != nil {
		return purged, err
	}
	s.logger.Info("Seed data removed",
		"transactions", purged.Transactions,
		"accounts", purged.Accounts,
	)
	return purged, nil
}

func (s *Seeder) seedUser(ctx context.Context, du demoUser) (Result, error) {
	var res Result
	u, err := s.users.GetUserByEmail(ctx, du.email)
	if err != nil {
		return res, err
	}
	if u == nil {
		name := du.name
		u, err = s.users.CreateUser(ctx, du.email, &name, DemoPassword)
		if err != nil {
			return res, err
		}
		res.Created = true
	}
	res.User = u

	res.Purged, err = s.purge(ctx, &u.ID)
	if err != nil {
		return res, err
	}

	institution := TagInstitution
	note := TagNote
	for _, da := range demoAccounts {
		subtype, mask := da.subtype, da.mask
		acc, err := s.accounts.CreateAccount(ctx, u.ID, commands.CreateAccount{
			Name:        da.name,
			Institution: &institution,
			Type:        da.kind,
			Subtype:     &subtype,
			Mask:        &mask,
		})
		if err != nil {
			return res, err
		}
		res.Accounts++
		for _, dt := range da.txs {
			merchant, category := dt.merchant, dt.category
			_, err := s.accounts.CreateTransaction(ctx, u.ID, commands.CreateTransaction{
				AccountID: acc.ID.String(),
				PostedAt:  s.now().UTC().AddDate(0, 0, -dt.daysAgo),
				Amount:    decimal.RequireFromString(dt.amount),
				Merchant:  &merchant,
				Category:  &category,
				Note:      &note,
			})
			if err != nil {
				return res, err
			}
			res.Transactions++
		}
	}
	return res, nil
}

func (s *Seeder) purge(ctx context.Context, userID *uuid.UUID) (purged seedrepo.Purged, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.SeedRepository()
		if err != nil {
			return err
		}
		purged, err = repo.Purge(ctx, userID, Tag)
		return err
	})
	return purged, err
}
