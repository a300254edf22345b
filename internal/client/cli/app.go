package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/kouden/internal/client/client"
	"github.com/dmitrijs2005/kouden/internal/client/collection"
	"github.com/dmitrijs2005/kouden/internal/client/config"
	"github.com/dmitrijs2005/kouden/internal/client/notify"
	"github.com/dmitrijs2005/kouden/internal/client/realtime"
	"github.com/dmitrijs2005/kouden/internal/client/services"
	"github.com/dmitrijs2005/kouden/internal/filex"
	"github.com/dmitrijs2005/kouden/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

const pingTimeout = 3 * time.Second

type App struct {
	config        *config.Config
	authService   services.AuthService
	ledgerService services.LedgerService
	photoService  services.PhotoService
	rows          client.RowAPI
	subscriber    collection.Subscriber
	db            *sql.DB
	log           logging.Logger
	notifier      notify.Notifier
	out           io.Writer
	reader        *bufio.Reader

	mu        sync.RWMutex
	mode      Mode
	userName  string
	session   bool
	workspace *services.Workspace
	views     map[string]*viewState
}

// NewApp opens the local database, dials the API server and wires the
// services the REPL drives.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewText(os.Stderr, c.LogLevel)

	if dir := filepath.Dir(c.LocalDBPath); dir != "." {
		if _, err := filex.EnsureSubDir(dir); err != nil {
			return nil, err
		}
	}

	db, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	apiClient, err := client.NewKoudenClientService(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sub := realtime.NewSubscriber(realtime.Config{
		BaseURL:    c.RealtimeURL,
		BackoffMin: c.ReconnectBackoffMin,
		BackoffMax: c.ReconnectBackoffMax,
	}, apiClient, log)

	return &App{
		config:        c,
		authService:   services.NewAuthService(apiClient, db),
		ledgerService: services.NewLedgerService(apiClient, db),
		photoService:  services.NewPhotoService(apiClient, &http.Client{Timeout: c.MutationTimeout}),
		rows:          apiClient,
		subscriber:    sub,
		db:            db,
		log:           log,
		notifier:      notify.NewConsole(os.Stdout),
		out:           os.Stdout,
		reader:        bufio.NewReader(os.Stdin),
		views:         map[string]*viewState{},
	}, nil
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) online() bool {
	return a.Mode() == ModeOnline
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.shutdown(ctx)
	a.Root(ctx)
}

func (a *App) shutdown(ctx context.Context) {
	a.closeWorkspace(ctx)
	if err := a.authService.Close(ctx); err != nil {
		a.log.Warn(ctx, "client close failed", "err", err)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userName != ""
}

func (a *App) hasSession() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *App) currentWorkspace() *services.Workspace {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.workspace
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode between online and offline. A user who logged in offline stays
// offline until they log in again. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}
			pctx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := a.authService.Ping(pctx)
			cancel()

			switch mode := a.Mode(); {
			case err != nil && mode == ModeOnline:
				a.log.Debug(ctx, "server unreachable", "err", err)
				a.setMode(ModeOffline)
			case err == nil && mode == ModeOffline && a.hasSession():
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
