// Package server wires the record server: PostgreSQL storage, the gRPC report
// service for devices and the HTTP dashboard API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/fieldsync/internal/logging"
	"github.com/dmitrijs2005/fieldsync/internal/server/config"
	"github.com/dmitrijs2005/fieldsync/internal/server/httpapi"
	"github.com/dmitrijs2005/fieldsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fieldsync/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/fieldsync/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	reportService  *services.ReportService
	presignService *services.PresignService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, "json", c.LogLevel)

	db, err := repomanager.OpenDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		repomanager:    rm,
		reportService:  services.NewReportService(db, rm),
		presignService: services.NewPresignService(c),
	}, nil
}

// Migrate applies pending schema migrations.
func (app *App) Migrate(ctx context.Context) error {
	app.logger.Info(ctx, "Running migrations...")
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}
	return nil
}

func (app *App) Close() error {
	return app.db.Close()
}

// Run migrates the schema and serves gRPC and HTTP until ctx is done or
// either server fails.
func (app *App) Run(ctx context.Context) error {

	if err := app.Migrate(ctx); err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	gin.SetMode(gin.ReleaseMode)

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.reportService, app.presignService)
	httpServer := httpapi.NewServer(app.config.EndpointAddrHTTP, app.reportService, app.logger)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	run := func(name string, fn func(context.Context) error) {
		defer wg.Done()
		if err := fn(ctx); err != nil {
			app.logger.Error(ctx, err.Error(), "server", name)
			errOnce.Do(func() { firstErr = fmt.Errorf("%s: %w", name, err) })
			cancelFunc()
		}
	}

	wg.Add(2)
	go run("grpc", grpcServer.Run)
	go run("http", httpServer.Run)

	wg.Wait()

	return firstErr
}
