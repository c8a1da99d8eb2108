package driven

import (
	"context"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
)

// TrashStore persists the staged-deletion index. The staged files
// themselves live in the trash directory; the store only records
// where each one came from.
type TrashStore interface {
	// Add records a newly staged deletion.
	Add(ctx context.Context, entry domain.TrashEntry) error

	// Latest returns the most recently staged entry for the given
	// original path. Returns domain.ErrNotFound when none exists.
	Latest(ctx context.Context, originalPath string) (domain.TrashEntry, error)

	// Remove deletes an entry after a restore or purge.
	Remove(ctx context.Context, id string) error

	// List returns all entries, most recent first.
	List(ctx context.Context) ([]domain.TrashEntry, error)

	// Close releases the underlying storage.
	Close() error
}
