// Package store keeps a SQLite catalogue of enumeration runs: one row per
// run plus its unique coronas in compact form with their canonical keys.
//
// The schema is embedded and applied with golang-migrate. Open the database
// with Open, bring it up to date with Migrate, then use RunRepo.
package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/coronas"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrRunNotFound indicates no run with the requested id (or center) exists.
var ErrRunNotFound = errors.New("store: run not found")

// Open opens the sqlite database at path with foreign keys enabled.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	return db, nil
}

// Migrate applies all pending up migrations to db.
func Migrate(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("store: migrations source: %w", err)
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("store: migrations driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	// m is not closed: closing it would close db as well.

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		coronas.Logger().Debug("store: schema up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: migrate up: %w", err)
	}
	version, dirty, err := m.Version()
	if err != nil {
		coronas.Logger().Warn("store: migrated, version unknown", "err", err)
		return nil
	}
	coronas.Logger().Info("store: migrated", "version", version, "dirty", dirty)

	return nil
}

// WithTx runs fn in a transaction, rolling back if fn fails.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Now returns the current UTC time truncated to seconds, matching what
// SQLite round-trips.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
