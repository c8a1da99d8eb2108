package domain

import "time"

// TrashEntry records a staged deletion. The file itself lives under the
// trash directory keyed by StoredName; the entry preserves where it
// came from so it can be restored.
type TrashEntry struct {
	// ID uniquely identifies the entry.
	ID string

	// OriginalPath is the absolute path the file was deleted from.
	OriginalPath string

	// StoredName is the file name within the trash directory.
	StoredName string

	// DeletedAt is when the file was staged.
	DeletedAt time.Time
}
