package jsondoc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Decoder handles JSON documents. The value is parsed and re-serialised
// with four-space indentation; non-ASCII characters are kept literal
// rather than escaped.
type Decoder struct{}

// New creates a new JSON decoder.
func New() *Decoder {
	return &Decoder{}
}

// Formats returns the format categories this decoder handles.
func (d *Decoder) Formats() []domain.Format {
	return []domain.Format{domain.FormatJSON}
}

// Available always reports true.
func (d *Decoder) Available() bool {
	return true
}

// Decode parses the file as a JSON value and returns the indented form.
func (d *Decoder) Decode(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	// UseNumber keeps numeric literals as written instead of
	// round-tripping through float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return "", fmt.Errorf("%w: parse json: %v", domain.ErrDecodeFailure, err)
	}
	// A document holds exactly one value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: trailing data after json value", domain.ErrDecodeFailure)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("%w: encode json: %v", domain.ErrDecodeFailure, err)
	}

	// Encode appends a trailing newline.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
