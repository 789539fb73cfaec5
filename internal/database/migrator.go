package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationsPath = "db/migrations"
	seedsPath      = "db/seeds"
)

// ErrDirtySchema is returned when a previous migration stopped half way.
// The schema has to be repaired by hand and the version forced.
var ErrDirtySchema = errors.New("database schema is dirty")

// MigrationRunner applies the SQL migrations and optional seed files
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seedsEnabled   bool
	maxRetries     int
	retryInterval  time.Duration
}

// MigrationOption customizes a MigrationRunner
type MigrationOption func(*MigrationRunner)

// WithPaths reads migrations and seeds from the given directories
func WithPaths(migrations, seeds string) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.migrationsPath = migrations
		mr.seedsPath = seeds
	}
}

// WithSeeds enables LoadSeeds
func WithSeeds(enabled bool) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.seedsEnabled = enabled
	}
}

// WithRetry sets how often WaitForDatabase pings before giving up
func WithRetry(attempts int, interval time.Duration) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.maxRetries = attempts
		mr.retryInterval = interval
	}
}

// NewMigrationRunner creates a runner over db/migrations and db/seeds with
// seeding disabled
func NewMigrationRunner(db *sql.DB, opts ...MigrationOption) *MigrationRunner {
	mr := &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
		maxRetries:     30,
		retryInterval:  2 * time.Second,
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until the database answers, the retries run out or
// ctx is done
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.maxRetries; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			slog.Info("database is ready", "attempt", attempt)
			return nil
		}

		slog.Warn("database not ready", "attempt", attempt, "max_attempts", mr.maxRetries, "error", lastErr)
		if attempt == mr.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts: %w", mr.maxRetries, lastErr)
}

// RunMigrations applies every pending up migration. A missing migrations
// directory is not an error so the server can start against a schema
// managed elsewhere.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		slog.Warn("migrations directory not found, skipping", "path", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirtySchema, version)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("schema is up to date", "version", version)
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("applied migrations", "from_version", version, "to_version", newVersion)
	return nil
}

// RollbackMigrations reverts the given number of applied migrations
func (mr *MigrationRunner) RollbackMigrations(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}

	slog.Info("rolled back migrations", "steps", steps)
	return nil
}

// ForceVersion marks the schema as being at version and clears the dirty
// flag without running any migration
func (mr *MigrationRunner) ForceVersion(version int) error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}
	if err := m.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}
	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found at %s", mr.migrationsPath)
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

// LoadSeeds executes the *.sql files of the seeds directory in name order.
// Each file runs in its own transaction; a failing file is rolled back and
// reported, and the remaining files still run. Returns the number of files
// applied.
func (mr *MigrationRunner) LoadSeeds() (int, error) {
	if !mr.seedsEnabled {
		slog.Info("seed loading disabled")
		return 0, nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		slog.Warn("seeds directory not found, skipping", "path", mr.seedsPath)
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to find seed files: %w", err)
	}

	applied := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if err := mr.execSeed(string(content)); err != nil {
			slog.Warn("seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}

		applied++
		slog.Info("seed file applied", "file", filepath.Base(file))
	}

	return applied, nil
}

func (mr *MigrationRunner) execSeed(statements string) error {
	tx, err := mr.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(statements); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

// RunMigrationsIfEnabled waits for the database, migrates it and loads
// seeds when seeding is on. It does nothing when enabled is false.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, enabled, seed bool) error {
	if !enabled {
		slog.Info("auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunner(db, WithSeeds(seed))

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if _, err := runner.LoadSeeds(); err != nil {
		slog.Warn("seed data loading failed", "error", err)
	}

	return nil
}
