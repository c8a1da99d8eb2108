package driven

import (
	"context"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
)

// Decoder produces normalised text for one or more format categories.
// Decoders are stateless leaf strategies: each call is independent and
// all resources are released before the call returns.
type Decoder interface {
	// Formats returns the format categories this decoder handles.
	Formats() []domain.Format

	// Available reports whether the decoder can run in this build.
	// Optional capabilities (YAML) report false when excluded, so
	// callers learn at startup rather than mid-parse.
	Available() bool

	// Decode reads the file and returns its normalised text.
	// Parse failures return errors wrapping domain.ErrDecodeFailure.
	Decode(ctx context.Context, path string) (string, error)
}

// DecoderRegistry selects the decoder for a resolved format.
type DecoderRegistry interface {
	// Register adds a decoder for every format it declares.
	Register(decoder Decoder)

	// For returns the decoder handling the given format.
	// Returns false when no decoder is registered for it.
	For(format domain.Format) (Decoder, bool)

	// Capabilities maps each registered format to its availability.
	Capabilities() map[domain.Format]bool
}
