// Package initializer builds the process-wide dependencies from configuration.
package initializer

import (
	"fmt"

	"github.com/prosperitycompass/backend/infra"
	infra_repository "github.com/prosperitycompass/backend/infra/repository"
	"github.com/prosperitycompass/backend/pkg/app"
	"github.com/prosperitycompass/backend/pkg/config"
)

// InitializeDependencies sets up logging, opens the database, applies
// migrations when enabled and returns the unit of work the services use.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := SetupLogger(cfg.Log)

	if cfg.DB.Migrate {
		logger.Info("Applying database migrations")
		if err := infra.Migrate(cfg.DB.Url, logger); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}

	return &app.Deps{
		Uow:    infra_repository.NewUoW(db),
		DB:     db,
		Logger: logger,
	}, nil
}
