package main

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"

	"expense_tracker/internal/config"
	"expense_tracker/internal/handlers"
	"expense_tracker/internal/logger"
	"expense_tracker/internal/repository"
	"expense_tracker/internal/repository/db"
	"expense_tracker/internal/server"
	"expense_tracker/internal/service"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API. Usage:

	expense-tracker serve --config configs
`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// app holds the wired dependencies of a running service.
type app struct {
	handler *handlers.Handler
	conn    *sql.DB
}

func (a *app) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}

// buildApp opens storage, applies migrations when enabled and wires the layers.
func buildApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*app, error) {
	var (
		repos *repository.Repository
		conn  *sql.DB
	)

	if cfg.DB.Driver == config.DriverMemory {
		log.Warnw("using in-memory credential store; accounts are lost on restart")
		repos = repository.NewMemoryRepository()
	} else {
		var (
			dialect db.Dialect
			err     error
		)
		conn, dialect, err = db.Open(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if cfg.DB.AutoMigrate {
			if err := db.Migrate(ctx, conn, dialect, db.MigrateUp, log); err != nil {
				_ = conn.Close()
				return nil, err
			}
		}
		repos = repository.NewRepository(conn, dialect)
	}

	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	services := service.NewService(repos, hasher)
	h := handlers.NewHandler(services, log, handlers.WithAllowedOrigins(cfg.CORS.AllowedOrigins))

	return &app{handler: h, conn: conn}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		log.Errorw("startup_failed", "err", err, "driver", cfg.DB.Driver)
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Errorw("db_close_failed", "err", cerr)
		}
	}()

	srv := server.New(cfg.Server)
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http_server_started", "port", cfg.Port, "driver", cfg.DB.Driver)
		errCh <- srv.Run(cfg.Port, a.handler.InitRoutes())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
