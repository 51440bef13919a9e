// Package sqlite persists confirmed matches in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsTable = "schema_migrations"

type Store struct {
	db      *sql.DB
	metrics Metrics
}

// Open opens the database at path and applies pending schema migrations.
func Open(ctx context.Context, path string, metrics Metrics, logger *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=10000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := applyMigrations(db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, metrics: metrics}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func applyMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return fmt.Errorf("init sqlite migration driver: %w", err)
	}

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	// The migrator is not closed: closing the driver would close db.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	m.Log = migrationLogger{logger: logger.Named("sqlite_migrate")}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

type migrationLogger struct {
	logger *zap.Logger
}

func (l migrationLogger) Printf(format string, v ...any) {
	l.logger.Sugar().Debugf(format, v...)
}

func (l migrationLogger) Verbose() bool {
	return l.logger.Core().Enabled(zap.DebugLevel)
}
