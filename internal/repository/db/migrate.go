package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"expense_tracker/internal/logger"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrations embed.FS

// Migration commands understood by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// goose keeps its FS, dialect and logger in package globals.
var gooseMu sync.Mutex

var gooseDialects = map[Dialect]string{
	DialectSQLite:   "sqlite3",
	DialectPostgres: "postgres",
}

// gooseLogger routes goose output through the service logger.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) { l.log.Infof(format, v...) }
func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.log.Fatalf(format, v...) }

// Migrate applies the embedded migrations for dialect. log may be nil.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect, command string, log *logger.Logger) error {
	name, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("no migrations for dialect %q", dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if log != nil {
		goose.SetLogger(gooseLogger{log: log})
	} else {
		goose.SetLogger(goose.NopLogger())
	}

	if err := goose.SetDialect(name); err != nil {
		return fmt.Errorf("set goose dialect %q: %w", name, err)
	}

	dir := "migrations/" + string(dialect)
	var err error
	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, db, dir)
	case MigrateDown:
		err = goose.DownContext(ctx, db, dir)
	case MigrateStatus:
		err = goose.StatusContext(ctx, db, dir)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}
