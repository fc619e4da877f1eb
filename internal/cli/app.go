package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"pantrypal/internal/api"
	"pantrypal/internal/config"
	"pantrypal/internal/logging"
	"pantrypal/internal/router"
	"pantrypal/internal/session"
	"pantrypal/internal/storage"
)

type App struct {
	config  *config.Config
	session *session.Store
	client  *api.Client
	guard   *router.Guard
	repos   *storage.Repositories
	page    router.Route
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	repos, err := storage.InitDatabase(ctx, cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local storage: %w", err)
	}

	authClient := api.NewAuthClient(cfg.APIBaseURL, cfg.RequestTimeout)
	store := session.NewStore(authClient, repos.Metadata, log)

	a := &App{
		config:  cfg,
		session: store,
		guard:   router.NewGuard(store),
		repos:   repos,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}
	a.page, _ = router.Lookup("login")
	a.client = api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, store, a.sessionInvalidated, log)

	return a, nil
}

// sessionInvalidated is the gateway's hook: the backend rejected the
// credential mid-flight. Log out and land the shell on the login page.
func (a *App) sessionInvalidated(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout after credential rejection failed", "error", err)
	}
	a.page, _ = router.Lookup("login")
	printlnFn("Session expired, please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	s := a.page.Name
	if id := a.session.CurrentIdentity(); id != nil {
		s = id.Username + " @ " + s
	}
	return s
}

func (a *App) Run(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if a.session.IsAuthenticated() {
		a.goTo(mustRoute("dashboard"))
	}

	printlnFn("Welcome to PantryPal CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))

	return a.repos.DB.Close()
}

func mustRoute(name string) router.Route {
	r, ok := router.Lookup(name)
	if !ok {
		panic("unknown route: " + name)
	}
	return r
}
