// Command cli is the admin tool: schema migrations, user creation and the
// demo dataset.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/prosperitycompass/backend/infra"
	"github.com/prosperitycompass/backend/infra/initializer"
	"github.com/prosperitycompass/backend/internal/seed"
	"github.com/prosperitycompass/backend/pkg/app"
	"github.com/prosperitycompass/backend/pkg/config"
	"github.com/prosperitycompass/backend/pkg/utils"
)

const usage = `Usage: cli <command> [arguments]

Commands:
  migrate                       apply pending database migrations
  create-user <email> [name]    create a user, prompting for the password
  seed                          (re)create the demo users, accounts and transactions
  reset                         delete seeded accounts and transactions`

var errUsage = errors.New("invalid usage")

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	infoColor = color.New(color.FgCyan)
	errColor  = color.New(color.FgRed, color.Bold)
)

// env holds what a command needs from the outside world.
type env struct {
	cfg    *config.App
	stdin  io.Reader
	stdout io.Writer
	// open wires the services against the configured database. The returned
	// func releases it.
	open func(cfg *config.App) (*app.App, func(), error)
	// migrate applies the embedded schema.
	migrate func(cfg *config.App) error
	// isTerminal reports whether stdin is an interactive terminal.
	isTerminal func() bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(".env")
	if err != nil {
		errColor.Fprintln(os.Stderr, "Failed to load configuration:", err) //nolint:errcheck
		os.Exit(1)
	}

	e := &env{
		cfg:        cfg,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		open:       openApp,
		migrate:    migrateDB,
		isTerminal: stdinIsTerminal,
	}
	if err := run(ctx, os.Args[1:], e); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		errColor.Fprintln(os.Stderr, "Error:", err) //nolint:errcheck
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, e *env) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "migrate":
		return runMigrate(e)
	case "create-user":
		return runCreateUser(ctx, args[1:], e)
	case "seed":
		return runSeed(ctx, e)
	case "reset":
		return runReset(ctx, e)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runMigrate(e *env) error {
	if err := e.migrate(e.cfg); err != nil {
		return err
	}
	okColor.Fprintln(e.stdout, "Migrations applied.") //nolint:errcheck
	return nil
}

func runCreateUser(ctx context.Context, args []string, e *env) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: create-user <email> [name]", errUsage)
	}
	email := utils.NormalizeEmail(args[0])
	if !utils.IsEmail(email) {
		return fmt.Errorf("invalid email %q", args[0])
	}
	var name *string
	if len(args) == 2 {
		name = &args[1]
	}

	password, err := readPassword(e)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if utf8.RuneCountInString(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if len(password) > utils.MaxPasswordBytes {
		return fmt.Errorf("password must be at most %d bytes", utils.MaxPasswordBytes)
	}

	a, closeFn, err := e.open(e.cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	u, err := a.UserService.CreateUser(ctx, email, name, password)
	if err != nil {
		return err
	}
	okColor.Fprintf(e.stdout, "User created: %s (%s)\n", u.Email, u.ID) //nolint:errcheck
	return nil
}

func runSeed(ctx context.Context, e *env) error {
	a, closeFn, err := e.open(e.cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	infoColor.Fprintln(e.stdout, "Seeding demo data...") //nolint:errcheck
	results, err := newSeeder(a).Run(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(e.stdout, "  %s (%s): %d accounts, %d transactions\n", //nolint:errcheck
			r.User.Email, r.User.ID, r.Accounts, r.Transactions)
	}
	okColor.Fprintf(e.stdout, "Done. Demo users sign in with %q.\n", seed.DemoPassword) //nolint:errcheck
	return nil
}

func runReset(ctx context.Context, e *env) error {
	a, closeFn, err := e.open(e.cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	purged, err := newSeeder(a).Reset(ctx)
	if err != nil {
		return err
	}
	okColor.Fprintf(e.stdout, "Deleted %d seeded transactions and %d seeded accounts.\n", //nolint:errcheck
		purged.Transactions, purged.Accounts)
	return nil
}

func newSeeder(a *app.App) *seed.Seeder {
	return seed.New(a.Deps.Uow, a.UserService, a.AccountService, a.Deps.Logger)
}

// readPassword prompts without echo on a terminal and otherwise reads one
// line from stdin, so the password can be piped in scripts.
func readPassword(e *env) (string, error) {
	if e.isTerminal() {
		fmt.Fprint(e.stdout, "Password: ") //nolint:errcheck
		pw, err := termReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(e.stdout) //nolint:errcheck
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
	line, err := bufio.NewReader(e.stdin).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func openApp(cfg *config.App) (*app.App, func(), error) {
	cfg.DB.Migrate = false
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := infra.CloseDB(deps.DB); err != nil {
			deps.Logger.Warn("Failed to close database", "error", err)
		}
	}
	return app.New(deps, cfg), closeFn, nil
}

func migrateDB(cfg *config.App) error {
	return infra.Migrate(cfg.DB.Url, initializer.SetupLogger(cfg.Log))
}
