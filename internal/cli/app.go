package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"farmstead/internal/config"
	"farmstead/internal/logging"
	"farmstead/internal/products"
	"farmstead/internal/routes"
	"farmstead/internal/session"
	"farmstead/internal/storage"
)

// App wires the session store, the product store and the route guard behind
// the interactive shell.
type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	session  *session.Store
	products *products.Store
	reader   *bufio.Reader
	route    string
}

// NewApp opens the storage database, restores a previously persisted session
// and returns the shell positioned on the screen that session can reach.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing storage", "error", err)
		return nil, err
	}

	sess := session.NewStore(db, logger)
	if err := sess.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:   cfg,
		logger:   logger,
		db:       db,
		session:  sess,
		products: products.NewStore(),
		reader:   bufio.NewReader(os.Stdin),
	}
	a.route = routes.Home(a.state())
	return a, nil
}

// Close releases the storage database.
func (a *App) Close() error {
	return a.db.Close()
}

// Run renders the entry screen and starts the command loop.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to FarmStead (type 'help' for commands)")
	a.render(a.route)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// state derives the route guard state from the current session.
func (a *App) state() routes.State {
	return routes.StateFor(a.session.IsAuthenticated(), a.session.CurrentFarm() != nil)
}

func (a *App) status() string {
	s := ""
	if u := a.session.CurrentUser(); u != nil {
		s = u.Username + " "
	}
	s += a.route
	return fmt.Sprintf("(%s)", s)
}
