// Package app wires configuration and infrastructure into the services the
// HTTP layer and the admin CLI share.
package app

import (
	"log/slog"

	"github.com/prosperitycompass/backend/pkg/config"
	"github.com/prosperitycompass/backend/pkg/middleware"
	"github.com/prosperitycompass/backend/pkg/repository"
	"github.com/prosperitycompass/backend/pkg/service/account"
	"github.com/prosperitycompass/backend/pkg/service/auth"
	"github.com/prosperitycompass/backend/pkg/service/coach"
	"github.com/prosperitycompass/backend/pkg/service/user"
	"gorm.io/gorm"
)

// Deps contains the infrastructure the services are built from. DB is nil
// when the unit of work is not database backed.
type Deps struct {
	Uow    repository.UnitOfWork
	DB     *gorm.DB
	Logger *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	Tokens         *auth.TokenService
	Authenticator  *middleware.Authenticator
	AuthService    *auth.Service
	UserService    *user.Service
	AccountService *account.Service
	CoachService   *coach.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.Tokens = auth.NewTokenService(cfg.Jwt)
	app.Authenticator = middleware.NewAuthenticator(app.Tokens)
	app.UserService = user.New(deps.Uow, deps.Logger)
	app.AuthService = auth.New(app.UserService, app.Tokens, deps.Logger)
	app.AccountService = account.New(deps.Uow, cfg.Currency.Default, deps.Logger)
	app.CoachService = coach.New(deps.Logger)
	return app
}
