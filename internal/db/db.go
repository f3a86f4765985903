package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vytor/eligesaludable/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is the process-wide connection pool shared by all repositories.
type DB struct {
	*sql.DB
	log *logger.Logger
}

// Options controls how the pool is opened.
type Options struct {
	Path          string
	MaxOpenConns  int
	BusyTimeoutMS int
}

// DSN builds the go-sqlite3 connection string. Transactions begin with
// BEGIN IMMEDIATE so concurrent writers to the same session queue on the
// busy timeout instead of interleaving.
func (o Options) DSN() string {
	busy := o.BusyTimeoutMS
	if busy <= 0 {
		busy = 5000
	}
	sep := "?"
	if strings.Contains(o.Path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL&_txlock=immediate", o.Path, sep, busy)
}

// Open opens the pool and applies pending migrations.
func Open(opts Options) (*DB, error) {
	log := logger.Default().WithPrefix("db")
	log.Info("opening database: %s", opts.Path)

	sqlDB, err := sql.Open("sqlite3", opts.DSN())
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)

	db := &DB{DB: sqlDB, log: log}

	if err := db.PingContext(context.Background()); err != nil {
		log.Error("failed to ping database: %v", err)
		sqlDB.Close()
		return nil, err
	}

	log.Debug("applying migrations")
	if err := db.Migrate(context.Background()); err != nil {
		log.Error("failed to apply migrations: %v", err)
		sqlDB.Close()
		return nil, err
	}

	log.Info("database ready (max_open_conns=%d)", maxOpen)
	return db, nil
}

// Migrate applies every embedded migration not yet recorded in
// schema_migrations, in lexical order, each inside its own transaction.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		version := entry.Name()
		applied, err := db.isMigrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			db.log.Debug("migration %s already applied, skipping", version)
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return err
		}

		db.log.Info("applying migration: %s", version)
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			db.log.Error("migration %s failed: %v", version, err)
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", version, err)
		}
		db.log.Info("migration %s applied successfully", version)
	}
	return nil
}

// AppliedMigrations lists recorded migration versions in order.
func (db *DB) AppliedMigrations(ctx context.Context) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func (db *DB) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT version FROM schema_migrations WHERE version = ?`, version).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
