// Package server wires the kouden server: PostgreSQL repositories, business
// services, the gRPC API and the realtime websocket endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/server/config"
	gs "github.com/dmitrijs2005/kouden/internal/server/grpc"
	"github.com/dmitrijs2005/kouden/internal/server/realtime"
	"github.com/dmitrijs2005/kouden/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/kouden/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	grpc   *gs.GRPCServer
	rt     *realtime.Server
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	db, err := sqlOpen("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return newApp(cfg, logger, db, rm), nil
}

func newApp(cfg *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) *App {
	hub := realtime.NewHub(logger)

	svc := gs.Services{
		Users:   services.NewUserService(db, rm, cfg),
		Ledgers: services.NewLedgerService(db, rm),
		Rows:    services.NewRowService(db, rm, hub, logger),
		Photos:  services.NewPhotoService(db, rm, cfg, hub),
	}

	rtHandler := realtime.NewHandler(hub, rm.Ledgers(db), cfg.SecretKey, logger)

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		grpc:   gs.NewGRPCServer(cfg.EndpointAddrGRPC, logger, svc, cfg.SecretKey),
		rt:     realtime.NewServer(cfg.EndpointAddrHTTP, rtHandler, logger),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves gRPC and realtime until ctx is cancelled, a signal arrives or
// either server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpc.Run(gctx) })
	g.Go(func() error { return app.rt.Run(gctx) })

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close failed", "err", cerr)
	}
	app.logger.Info(ctx, "App stopped")
	return err
}
