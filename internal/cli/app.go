package cli

import (
	"context"
	"log/slog"

	"github.com/invoiceflow/invoiceflow/internal/actionlog"
	"github.com/invoiceflow/invoiceflow/internal/config"
	"github.com/invoiceflow/invoiceflow/internal/identity"
	"github.com/invoiceflow/invoiceflow/internal/repo"
	"github.com/invoiceflow/invoiceflow/internal/store"
)

// App wires the store, logger, and repositories for one command run.
// Repositories are constructed once here and passed by reference;
// nothing reaches them through ambient globals.
type App struct {
	Store     *store.Store
	Log       *actionlog.Logger
	Orgs      *repo.Organizations
	Inventory *repo.Inventory
	Invoices  *repo.Invoices

	locale string
	format string
}

// openApp loads configuration, opens the database, and builds the
// repository graph. Flags override config values where set.
func openApp(ctx context.Context, opts *RootOptions) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}

	path := opts.Database
	if path == "" {
		path = cfg.Database.Path
	}
	locale := opts.Locale
	if locale == "" {
		locale = cfg.Output.Locale
	}

	slog.Debug("opening database", "path", path)
	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open database", err)
	}

	ids := identity.NewUUIDSource()
	log := actionlog.New(st, ids)
	if err := log.Bootstrap(ctx); err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "bootstrap action log", err)
	}

	orgs := repo.NewOrganizations(st, log)
	return &App{
		Store:     st,
		Log:       log,
		Orgs:      orgs,
		Inventory: repo.NewInventory(st, log, ids),
		Invoices:  repo.NewInvoices(st, log, ids, orgs),
		locale:    locale,
		format:    opts.Format,
	}, nil
}

// Close releases the underlying database.
func (a *App) Close() error {
	return a.Store.Close()
}
