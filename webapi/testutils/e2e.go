package testutils

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prosperitycompass/backend/infra"
	infrarepo "github.com/prosperitycompass/backend/infra/repository"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// E2EEnv enables the Postgres-backed suites.
const E2EEnv = "POSTGRES_E2E"

// E2ETestSuite provides a test suite with a real Postgres database using
// Testcontainers. It is skipped unless POSTGRES_E2E=1.
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
	App         *fiber.App
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("compass"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
}

// SetupSuite starts Postgres, applies the embedded migrations and wires the app.
func (s *E2ETestSuite) SetupSuite() {
	if os.Getenv(E2EEnv) != "1" {
		s.T().Skipf("set %s=1 to run Postgres end-to-end tests", E2EEnv)
	}
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(infra.Migrate(dsn, slog.Default()))

	cfg := NewConfig()
	cfg.DB.Url = dsn
	s.DB, err = infra.NewDBConnection(cfg.DB, cfg.Env)
	s.Require().NoError(err)

	s.App, _ = NewApp(infrarepo.NewUoW(s.DB), cfg)
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	_ = infra.CloseDB(s.DB)
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// MakeRequest sends a request to the suite's app.
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	return MakeRequest(s.T(), s.App, method, path, body, token)
}
