package db

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver for the migration connection

	"shareit/internal/pkg/errs"
)

// migrationLockID keys the advisory lock that serializes concurrent migrators.
const migrationLockID = 7_240_117

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate applies every *.sql file in fsys not yet recorded in schema_migrations,
// in lexical order, inside one transaction.
func Migrate(ctx context.Context, dsn string, fsys fs.FS) error {
	conn, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return errs.Wrap(err, "failed to open migration connection")
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			slog.Warn("failed to close migration connection", "error", cerr.Error())
		}
	}()

	files, err := migrationFiles(fsys)
	if err != nil {
		return err
	}

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return errs.Wrap(err, "failed to begin migration transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockID); err != nil {
		return errs.Wrap(err, "failed to acquire migration lock")
	}
	if _, err = tx.ExecContext(ctx, createMigrationsTable); err != nil {
		return errs.Wrap(err, "failed to create schema_migrations")
	}

	var applied []string
	if err = tx.SelectContext(ctx, &applied, "SELECT version FROM schema_migrations"); err != nil {
		return errs.Wrap(err, "failed to read applied migrations")
	}
	done := make(map[string]struct{}, len(applied))
	for _, v := range applied {
		done[v] = struct{}{}
	}

	count := 0
	for _, name := range files {
		version := strings.TrimSuffix(name, ".sql")
		if _, ok := done[version]; ok {
			continue
		}

		body, rerr := fs.ReadFile(fsys, name)
		if rerr != nil {
			return errs.Wrapf(rerr, "failed to read migration %s", name)
		}
		if _, err = tx.ExecContext(ctx, string(body)); err != nil {
			return errs.Wrapf(err, "failed to apply migration %s", name)
		}
		if _, err = tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
			return errs.Wrapf(err, "failed to record migration %s", name)
		}
		slog.Info("migration applied", "version", version)
		count++
	}

	if err = tx.Commit(); err != nil {
		return errs.Wrap(err, "failed to commit migrations")
	}
	slog.Info("migrations up to date", "applied", count, "total", len(files))
	return nil
}

func migrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errs.Wrap(err, "failed to list migrations")
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".sql" {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}
