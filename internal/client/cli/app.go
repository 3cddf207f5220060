package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mathalama/review-universities/internal/client/client"
	"github.com/mathalama/review-universities/internal/client/config"
	"github.com/mathalama/review-universities/internal/client/models"
	"github.com/mathalama/review-universities/internal/client/repositories/metadata"
	"github.com/mathalama/review-universities/internal/client/repositories/universities"
	"github.com/mathalama/review-universities/internal/client/services"
	"github.com/mathalama/review-universities/internal/client/session"
	"github.com/mathalama/review-universities/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single liveness probe of the watcher.
const pingTimeout = 3 * time.Second

// sessionManager is the part of session.Manager the commands use.
type sessionManager interface {
	Initialize(ctx context.Context)
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) error
	Snapshot() session.State
	RequireUser() (models.User, error)
	RequireAdmin() (models.User, error)
}

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	tokens      session.TokenStore
	session     sessionManager
	authService services.AuthService
	catalog     services.CatalogService
	admin       services.AdminService
	clock       clockwork.Clock
	reader      *bufio.Reader
	out         io.Writer

	modeMu sync.RWMutex
	mode   Mode
}

// NewApp opens the local database and wires the HTTP client, the session and
// the services on top of it. Diagnostics go to stderr, command output to
// stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	tokens := session.NewMetadataTokenStore(metadata.NewSQLiteRepository(db))

	api, err := client.NewHTTPClient(c.ServerURL, tokens,
		client.WithTimeout(c.RequestTimeout),
		client.WithRateLimit(c.RateLimit, c.RateBurst),
		client.WithLogger(log.With("component", "http")),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sm := session.NewManager(api, tokens, log.With("component", "session"))
	cache := universities.NewSQLiteRepository(db)

	return &App{
		config:      c,
		log:         log,
		db:          db,
		tokens:      tokens,
		session:     sm,
		authService: services.NewAuthService(api),
		catalog:     services.NewCatalogService(api, cache, sm, log.With("component", "catalog")),
		admin:       services.NewAdminService(api, sm),
		clock:       clockwork.NewRealClock(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores the stored session, starts the connectivity watcher and serves
// the REPL until the user quits or ctx is cancelled. Resources are released
// on return.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Review Universities CLI (type 'help' for commands)")

	a.session.Initialize(ctx)
	a.checkOnline(ctx)

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	ctx := context.Background()
	if err := a.authService.Close(); err != nil {
		a.log.Warn(ctx, "error closing api client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "error closing database", "error", err)
		}
	}
}

func (a *App) getMode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", mode)
	}
}

// getStatus renders the prompt badge: the signed-in email and the mode.
func (a *App) getStatus() string {
	parts := make([]string, 0, 2)
	if s := a.session.Snapshot(); s.Authenticated {
		parts = append(parts, s.User.Email)
	}
	if m := a.getMode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated
}

func (a *App) isAdmin() bool {
	s := a.session.Snapshot()
	return s.Authenticated && s.User.IsAdmin()
}

// StartOnlineStatusWatcher probes the backend every interval and switches
// between online and offline mode. It blocks until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := a.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(pctx)
	cancel()

	if err != nil {
		if ctx.Err() != nil {
			return
		}
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
