// Package server wires storage, the change broker, services and transports
// into a runnable FutureLetter server.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/cryptox"
	"github.com/dmitrijs2005/futureletter/internal/logging"
	"github.com/dmitrijs2005/futureletter/internal/server/broker"
	"github.com/dmitrijs2005/futureletter/internal/server/config"
	"github.com/dmitrijs2005/futureletter/internal/server/metrics"
	"github.com/dmitrijs2005/futureletter/internal/server/ops"
	"github.com/dmitrijs2005/futureletter/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/futureletter/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/futureletter/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	broker     broker.Broker
	grpcServer *gs.GRPCServer
	opsServer  *http.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	b, err := newBroker(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("broker init error: %w", err)
	}

	sealer, err := cryptox.NewSealer(c.SealPassphrase, c.SealSalt)
	if err != nil {
		_ = db.Close()
		_ = b.Close()
		return nil, fmt.Errorf("sealer init error: %w", err)
	}

	mt := metrics.New()
	us := services.NewUserService(db, rm, c, mt)
	ls := services.NewLetterService(db, rm, sealer, b, mt, logger)

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		broker:     b,
		grpcServer: gs.NewGRPCServer(c, logger, us, ls, mt),
		opsServer: &http.Server{
			Addr:              c.OpsAddrHTTP,
			Handler:           ops.NewRouter(db, mt.Registry),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// newBroker picks Redis when an address is configured, the in-process
// broker otherwise.
func newBroker(ctx context.Context, c *config.Config) (broker.Broker, error) {
	if c.RedisAddr == "" {
		return broker.NewMemory(), nil
	}
	return broker.DialRedis(ctx, c.RedisAddr)
}

// Run serves gRPC and the ops endpoints until ctx is cancelled, a
// termination signal arrives, or one of the servers fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpcServer.Run(ctx) })
	g.Go(func() error { return app.runOps(ctx) })

	err := g.Wait()
	app.close(ctx)

	app.logger.Info(ctx, "App stopped")
	return err
}

func (app *App) runOps(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = app.opsServer.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting ops server", "address", app.opsServer.Addr)

	if err := app.opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) close(ctx context.Context) {
	if app.broker != nil {
		if err := app.broker.Close(); err != nil {
			app.logger.Warn(ctx, "broker close failed", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close failed", "error", err)
		}
	}
}
