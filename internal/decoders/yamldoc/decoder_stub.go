//go:build noyaml

package yamldoc

import (
	"context"
	"fmt"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Decoder is the YAML stub for builds tagged noyaml. It registers the
// format so callers get a clear capability error instead of an
// unsupported-extension one.
type Decoder struct{}

// New creates the stub YAML decoder.
func New() *Decoder {
	return &Decoder{}
}

// Formats returns the format categories this decoder handles.
func (d *Decoder) Formats() []domain.Format {
	return []domain.Format{domain.FormatYAML}
}

// Available reports false: this build excludes YAML support.
func (d *Decoder) Available() bool {
	return false
}

// Decode always fails with the capability error.
func (d *Decoder) Decode(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("%w: yaml support excluded by the noyaml build tag; rebuild without it", domain.ErrCapabilityUnavailable)
}
