package services

import (
	"sync"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure DecoderRegistry implements the interface.
var _ driven.DecoderRegistry = (*DecoderRegistry)(nil)

// DecoderRegistry maps format categories to decoders. Registration
// happens once during startup; lookups are safe for concurrent use.
type DecoderRegistry struct {
	mu       sync.RWMutex
	decoders map[domain.Format]driven.Decoder
}

// NewDecoderRegistry creates an empty registry.
func NewDecoderRegistry() *DecoderRegistry {
	return &DecoderRegistry{
		decoders: make(map[domain.Format]driven.Decoder),
	}
}

// Register adds a decoder for every format it declares.
// A later registration for the same format replaces the earlier one.
func (r *DecoderRegistry) Register(decoder driven.Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, format := range decoder.Formats() {
		r.decoders[format] = decoder
	}
}

// For returns the decoder handling the given format.
func (r *DecoderRegistry) For(format domain.Format) (driven.Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	decoder, ok := r.decoders[format]
	return decoder, ok
}

// Capabilities maps each registered format to its availability.
func (r *DecoderRegistry) Capabilities() map[domain.Format]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	caps := make(map[domain.Format]bool, len(r.decoders))
	for format, decoder := range r.decoders {
		caps[format] = decoder.Available()
	}
	return caps
}
