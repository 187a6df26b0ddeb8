package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursestaff/assignment-solver/pkg/db"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB implements db.Database on top of a pgx connection pool
type DB struct {
	pool *pgxpool.Pool
}

var _ db.Database = (*DB)(nil)

// NewDB connects to PostgreSQL and verifies the connection
func NewDB(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (d *DB) Close() {
	d.pool.Close()
}

// withTx runs fn inside a transaction, committing on success and rolling back otherwise
func (d *DB) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// MigrationFiles returns the embedded migration file names in execution order
func MigrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	return sqlFiles, nil
}

// RunMigrations executes pending embedded migrations in filename order and returns the
// files it applied. Applied files are tracked in the schema_migrations table.
func (d *DB) RunMigrations(ctx context.Context) ([]string, error) {
	_, err := d.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	rows, err := d.pool.Query(ctx, `SELECT filename FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	applied, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan applied migrations: %w", err)
	}
	alreadyApplied := make(map[string]bool, len(applied))
	for _, filename := range applied {
		alreadyApplied[filename] = true
	}

	sqlFiles, err := MigrationFiles()
	if err != nil {
		return nil, err
	}

	var newlyApplied []string
	for _, filename := range sqlFiles {
		if alreadyApplied[filename] {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, "migrations/"+filename)
		if err != nil {
			return newlyApplied, fmt.Errorf("failed to read migration %s: %w", filename, err)
		}

		err = d.withTx(ctx, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", filename, err)
			}
			if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (filename) VALUES ($1)`, filename); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", filename, err)
			}
			return nil
		})
		if err != nil {
			return newlyApplied, err
		}

		newlyApplied = append(newlyApplied, filename)
	}

	return newlyApplied, nil
}
