package plaintext

import (
	"context"
	"fmt"
	"os"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Decoder handles plain text and HTML markup files.
// Content is returned verbatim with no transformation; HTML is a
// distinct format category but shares the passthrough behaviour.
type Decoder struct{}

// New creates a new plain text decoder.
func New() *Decoder {
	return &Decoder{}
}

// Formats returns the format categories this decoder handles.
func (d *Decoder) Formats() []domain.Format {
	return []domain.Format{domain.FormatPlainText, domain.FormatMarkup}
}

// Available always reports true; passthrough needs no capability.
func (d *Decoder) Available() bool {
	return true
}

// Decode reads the full file decoded as UTF-8 text.
func (d *Decoder) Decode(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
