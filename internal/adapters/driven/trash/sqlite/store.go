// Package sqlite provides the SQLite-backed trash index.
// Staged files live in the trash directory; this store records where
// each one came from so it can be restored.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.TrashStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS trash_entries (
	id            TEXT PRIMARY KEY,
	original_path TEXT NOT NULL,
	stored_name   TEXT NOT NULL,
	deleted_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trash_original_path
	ON trash_entries (original_path, deleted_at);
`

// Store is a SQLite-backed implementation of driven.TrashStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a trash index at the specified data directory.
// If dataDir is empty, defaults to ~/.filekit/data/trash.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".filekit", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "trash.db")

	// WAL mode for better concurrency between server and CLI use.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{
		db:   db,
		path: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Add records a newly staged deletion.
func (s *Store) Add(ctx context.Context, entry domain.TrashEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO trash_entries (id, original_path, stored_name, deleted_at)
		 VALUES (?, ?, ?, ?)`,
		entry.ID, entry.OriginalPath, entry.StoredName,
		entry.DeletedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting trash entry: %w", err)
	}
	return nil
}

// Latest returns the most recently staged entry for the original path.
func (s *Store) Latest(ctx context.Context, originalPath string) (domain.TrashEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, original_path, stored_name, deleted_at
		 FROM trash_entries
		 WHERE original_path = ?
		 ORDER BY deleted_at DESC
		 LIMIT 1`, originalPath)

	entry, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TrashEntry{}, fmt.Errorf("%w: no trash entry for %s", domain.ErrNotFound, originalPath)
	}
	if err != nil {
		return domain.TrashEntry{}, fmt.Errorf("querying trash entry: %w", err)
	}
	return entry, nil
}

// Remove deletes an entry after a restore or purge.
func (s *Store) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trash_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting trash entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: trash entry %s", domain.ErrNotFound, id)
	}
	return nil
}

// List returns all entries, most recent first.
func (s *Store) List(ctx context.Context) ([]domain.TrashEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, original_path, stored_name, deleted_at
		 FROM trash_entries
		 ORDER BY deleted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing trash entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TrashEntry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning trash entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanEntry(scan func(...any) error) (domain.TrashEntry, error) {
	var entry domain.TrashEntry
	var deletedAt string
	if err := scan(&entry.ID, &entry.OriginalPath, &entry.StoredName, &deletedAt); err != nil {
		return domain.TrashEntry{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, deletedAt)
	if err != nil {
		return domain.TrashEntry{}, fmt.Errorf("parsing deleted_at: %w", err)
	}
	entry.DeletedAt = ts
	return entry, nil
}
