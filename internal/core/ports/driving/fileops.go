package driving

import (
	"context"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
)

// BatchResult reports the outcome of one item in a batch operation.
type BatchResult struct {
	// Source is the path the operation was applied to.
	Source string

	// Err is nil on success.
	Err error
}

// FileService exposes the pass-through filesystem operations. Each
// operation is a thin wrapper over a platform primitive; failures are
// caught at the service boundary and returned as typed errors, never
// raised past it.
type FileService interface {
	// CreateFile creates a file at path with the given content.
	// An empty content creates an empty file. Existing files are
	// overwritten.
	CreateFile(ctx context.Context, path, content string) error

	// SaveFile writes content to path, appending ".format" when the
	// path does not already end with it.
	SaveFile(ctx context.Context, path, content, format string) error

	// CopyFile copies a single file, preserving mode bits.
	CopyFile(ctx context.Context, src, dst string) error

	// MoveFile moves a single file, falling back to copy+remove
	// across devices.
	MoveFile(ctx context.Context, src, dst string) error

	// BatchCopy copies each source into dstDir under its base name.
	BatchCopy(ctx context.Context, srcs []string, dstDir string) []BatchResult

	// BatchMove moves each source into dstDir under its base name.
	BatchMove(ctx context.Context, srcs []string, dstDir string) []BatchResult

	// DeleteFile removes a file. With permanent set the file is
	// unlinked; otherwise it is staged in the trash for later restore.
	DeleteFile(ctx context.Context, path string, permanent bool) error

	// RestoreFile restores the most recently trashed file whose
	// original path matches. Returns domain.ErrNotFound when the
	// trash holds no entry for the path.
	RestoreFile(ctx context.Context, path string) error

	// ListTrash returns all staged deletions, most recent first.
	ListTrash(ctx context.Context) ([]domain.TrashEntry, error)

	// SearchFiles walks root recursively and returns the paths of
	// files whose name contains keyword.
	SearchFiles(ctx context.Context, root, keyword string) ([]string, error)

	// GlobFiles walks root and returns paths matching a doublestar
	// pattern such as "**/*.go".
	GlobFiles(ctx context.Context, root, pattern string) ([]string, error)

	// CreateFolder creates a directory and any missing parents.
	CreateFolder(ctx context.Context, path string) error

	// ListAll returns every file path under root, recursively.
	ListAll(ctx context.Context, root string) ([]string, error)

	// CompressFolder writes a ZIP archive of srcDir to dstZip,
	// appending ".zip" when missing.
	CompressFolder(ctx context.Context, srcDir, dstZip string) error
}
