package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"learn2trade-backend/internal/application/accounts"
	"learn2trade-backend/internal/application/ledger"
	"learn2trade-backend/internal/config"
	"learn2trade-backend/internal/infrastructure/database"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// openDB loads config and connects to the configured database.
func openDB() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is not set")
	}
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// migrateCmd runs AutoMigrate over every persisted model.
type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "run schema migrations against DATABASE_URL" }
func (*migrateCmd) Usage() string {
	return `admin migrate

  Creates or updates every table the service persists to.
`
}
func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (*migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, db, err := openDB()
	if err != nil {
		return fail(err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return fail(err)
	}
	fmt.Println("migrations applied")
	return subcommands.ExitSuccess
}

// seedCmd creates a demo account and provisions its portfolio.
type seedCmd struct {
	username string
	email    string
	password string
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "create a demo user with a provisioned portfolio" }
func (*seedCmd) Usage() string {
	return `admin seed [-username demo] [-email demo@learn2trade.local] [-password ...]

  Registers a demo account and provisions its paper portfolio with the
  configured starting cash.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", "demo", "username for the demo account")
	f.StringVar(&c.email, "email", "demo@learn2trade.local", "email for the demo account")
	f.StringVar(&c.password, "password", "learn2trade1", "password for the demo account")
}

func (c *seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, db, err := openDB()
	if err != nil {
		return fail(err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return fail(err)
	}

	svc := &accounts.Service{DB: db}
	u, err := svc.Register(ctx, accounts.RegisterInput{
		Username: c.username,
		Email:    c.email,
		Password: c.password,
	})
	if err != nil {
		return fail(err)
	}

	store := ledger.NewStore(db, cfg.StartingCash)
	snap, err := store.Load(ctx, u.ID)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("seeded user %q (id %d) with cash %s\n", u.Username, u.ID, snap.Cash.StringFixed(2))
	return subcommands.ExitSuccess
}

// grantCashCmd tops up a user's paper balance.
type grantCashCmd struct {
	userID uint64
	amount string
}

func (*grantCashCmd) Name() string     { return "grant-cash" }
func (*grantCashCmd) Synopsis() string { return "top up a portfolio's cash balance" }
func (*grantCashCmd) Usage() string {
	return `admin grant-cash -user <id> -amount <decimal>

  Adds the amount to the user's cash balance, provisioning the portfolio
  if it does not exist yet. For classroom resets.
`
}

func (c *grantCashCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.userID, "user", 0, "user id to credit")
	f.StringVar(&c.amount, "amount", "", "amount to add, e.g. 25000.00")
}

func (c *grantCashCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.userID == 0 || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -user and -amount are required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return fail(fmt.Errorf("parsing amount %q: %w", c.amount, err))
	}

	cfg, db, err := openDB()
	if err != nil {
		return fail(err)
	}
	store := ledger.NewStore(db, cfg.StartingCash)
	newCash, err := store.GrantCash(ctx, uint(c.userID), amount)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("user %d cash is now %s\n", c.userID, newCash.StringFixed(2))
	return subcommands.ExitSuccess
}
