package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Callers branch on error kind with errors.Is rather than matching
// message text; adapters translate these into wire-level error kinds.
var (
	// ErrNotFound indicates a requested path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedFormat indicates a file extension outside the
	// format table. The wrapping error names the extension.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrDecodeFailure indicates a file matched a known format but
	// could not be parsed (malformed JSON/XML, corrupt archive,
	// legacy binary office file).
	ErrDecodeFailure = errors.New("decode failure")

	// ErrCapabilityUnavailable indicates an optional decoder was
	// excluded from this build. The wrapping error names the
	// capability and how to enable it.
	ErrCapabilityUnavailable = errors.New("capability unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooLarge indicates a file exceeds the configured size limit.
	ErrTooLarge = errors.New("file too large")
)
