package driving

import (
	"context"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
)

// ReaderService is the format-dispatched reader. Given a path it
// resolves the format from the extension, runs the matching decoder
// and returns one normalised text payload.
//
// Calls are independent and safe to run concurrently across paths.
// The service is read-only: it never writes to or mutates the source.
type ReaderService interface {
	// Extract returns the normalised text for the file at path.
	// Failures are typed: domain.ErrNotFound for missing files,
	// domain.ErrUnsupportedFormat for unmapped extensions,
	// domain.ErrDecodeFailure for malformed content and
	// domain.ErrCapabilityUnavailable for decoders excluded from
	// the build. No failure escapes as a panic.
	Extract(ctx context.Context, path string) (domain.Extraction, error)

	// Detect resolves the format for a path without reading it.
	Detect(path string) (domain.Format, error)

	// Capabilities maps each format to whether its decoder is
	// available in this build. Determined at startup.
	Capabilities() map[domain.Format]bool

	// SupportedExtensions lists every extension in the format table.
	SupportedExtensions() []string
}
