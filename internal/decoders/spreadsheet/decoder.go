package spreadsheet

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Decoder handles workbook files. Every sheet is rendered as a
// fixed-width textual table and sheets are concatenated in workbook
// order, separated by newlines.
//
// Only the OOXML container (.xlsx) can be parsed; legacy binary .xls
// files fail the ZIP open and surface as a recoverable decode failure,
// matching the per-file error contract.
type Decoder struct{}

// New creates a new spreadsheet decoder.
func New() *Decoder {
	return &Decoder{}
}

// Formats returns the format categories this decoder handles.
func (d *Decoder) Formats() []domain.Format {
	return []domain.Format{domain.FormatSpreadsheet}
}

// Available always reports true.
func (d *Decoder) Available() bool {
	return true
}

// Decode loads all sheets and renders each as an aligned table.
func (d *Decoder) Decode(_ context.Context, path string) (string, error) {
	wb, err := openWorkbook(path)
	if err != nil {
		return "", fmt.Errorf("%w: open workbook %s: %v", domain.ErrDecodeFailure, filepath.Base(path), err)
	}
	defer wb.Close()

	sheets, err := wb.Sheets()
	if err != nil {
		return "", fmt.Errorf("%w: read workbook %s: %v", domain.ErrDecodeFailure, filepath.Base(path), err)
	}

	rendered := make([]string, len(sheets))
	for i, sheet := range sheets {
		rendered[i] = renderGrid(sheet.Rows)
	}
	return strings.Join(rendered, "\n"), nil
}

// renderGrid lays out rows as a fixed-width table: each column is
// padded to its widest cell and columns are separated by two spaces.
func renderGrid(rows [][]string) string {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder
	for ri, row := range rows {
		if ri > 0 {
			sb.WriteByte('\n')
		}
		var line strings.Builder
		for ci := 0; ci < cols; ci++ {
			cell := ""
			if ci < len(row) {
				cell = row[ci]
			}
			if ci > 0 {
				line.WriteString("  ")
			}
			line.WriteString(cell)
			if pad := widths[ci] - len([]rune(cell)); pad > 0 {
				line.WriteString(strings.Repeat(" ", pad))
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
	}
	return sb.String()
}
