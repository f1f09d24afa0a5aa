package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"expense_tracker/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder style, error decoding and migrations.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

const (
	sqliteDriverName   = "sqlite"
	postgresDriverName = "pgx"

	pingTimeout = 5 * time.Second
)

// sqlitePragmas are applied to every pooled connection through the DSN.
var sqlitePragmas = []string{
	"journal_mode(WAL)",
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// Open connects to the database selected by cfg.Driver and verifies it is reachable.
// The caller owns the returned pool and must Close it.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, Dialect, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := InitSQLite(ctx, cfg)
		return db, DialectSQLite, err
	case config.DriverPostgres:
		db, err := InitPostgres(ctx, cfg)
		return db, DialectPostgres, err
	default:
		return nil, "", fmt.Errorf("no sql database for driver %q", cfg.Driver)
	}
}

// InitSQLite opens/creates a SQLite DB file.
func InitSQLite(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, sqliteDSN(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", cfg.Path, err)
	}
	applyPool(db, cfg)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// InitPostgres opens a pgx-backed pool using cfg.PostgresDSN.
func InitPostgres(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open(postgresDriverName, cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	applyPool(db, cfg)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func sqliteDSN(path string) string {
	q := url.Values{}
	for _, p := range sqlitePragmas {
		q.Add("_pragma", p)
	}
	return path + "?" + q.Encode()
}

func applyPool(db *sql.DB, cfg config.DBConfig) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// Fail fast if the DB cannot be reached
func ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
