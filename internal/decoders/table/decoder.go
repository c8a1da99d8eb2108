package table

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Decoder handles delimiter-separated row data: comma for .csv, tab
// for .tsv. Rows are parsed honouring the quoting convention of the
// delimiter and re-joined with the same delimiter — a canonicalisation
// pass that strips quoting artefacts and normalises line endings.
// The pass is idempotent: feeding the output back through yields
// identical bytes.
type Decoder struct{}

// New creates a new delimited-table decoder.
func New() *Decoder {
	return &Decoder{}
}

// Formats returns the format categories this decoder handles.
func (d *Decoder) Formats() []domain.Format {
	return []domain.Format{domain.FormatTable}
}

// Available always reports true.
func (d *Decoder) Available() bool {
	return true
}

// Decode parses all rows and re-joins them with the file's delimiter.
func (d *Decoder) Decode(_ context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	delim := ","
	r := csv.NewReader(f)
	if strings.ToLower(filepath.Ext(path)) == ".tsv" {
		delim = "\t"
		r.Comma = '\t'
	}
	// Rows may have differing field counts; pass them through as-is.
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: parse %s: %v", domain.ErrDecodeFailure, filepath.Base(path), err)
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, delim)
	}
	return strings.Join(lines, "\n"), nil
}
