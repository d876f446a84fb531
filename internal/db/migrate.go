package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Migrate applies schema migrations and optional seed files to the database.
// It creates a `schema_migrations` table to track applied files and applies
// any SQL files in `db/migrations/` that have not yet been recorded. Seed
// files in `db/seed/` are tracked the same way so reapplying them is a no-op.
func Migrate(ctx context.Context, d *DB, migrationFS embed.FS, seedFS embed.FS) error {
	// ensure migrations table exists
	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	if err := applyDir(ctx, d, migrationFS, "migrations", ""); err != nil {
		return err
	}

	// seed versions carry a prefix so they never collide with migration
	// versions in schema_migrations
	if err := applyDir(ctx, d, seedFS, "seed", "seed_"); err != nil {
		return err
	}

	return nil
}

func applyDir(ctx context.Context, d *DB, fsys embed.FS, dir, versionPrefix string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read %s dir: %w", dir, err)
	}

	// collect .sql files and sort
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		// use filename (without extension) as version key
		version := versionPrefix + strings.TrimSuffix(fname, path.Ext(fname))

		// check if already applied
		var count int
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan applied count for %s: %w", version, err)
		}
		if count > 0 {
			// already applied
			continue
		}

		b, err := fs.ReadFile(fsys, path.Join(dir, fname))
		if err != nil {
			return fmt.Errorf("read %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec %s: %w", fname, err)
		}

		if _, err := d.Exec(ctx, `INSERT INTO schema_migrations (version, applied) VALUES (?, strftime('%s','now'))`, version); err != nil {
			return fmt.Errorf("record %s: %w", version, err)
		}
	}

	return nil
}
