package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a structural file-format category.
// The set is closed: dispatch is a tagged match over these values
// with an explicit error for anything outside the table.
type Format string

const (
	// FormatPlainText covers line-oriented text read verbatim.
	FormatPlainText Format = "plaintext"
	// FormatMarkup covers HTML files, also read verbatim.
	FormatMarkup Format = "markup"
	// FormatJSON is re-serialised with stable indentation.
	FormatJSON Format = "json"
	// FormatXML is re-serialised from the root element without a declaration.
	FormatXML Format = "xml"
	// FormatTable covers delimiter-separated row data (CSV/TSV).
	FormatTable Format = "table"
	// FormatSpreadsheet covers workbook files rendered as aligned tables.
	FormatSpreadsheet Format = "spreadsheet"
	// FormatDocument covers word-processor files reduced to paragraphs.
	FormatDocument Format = "document"
	// FormatYAML is re-serialised in block style. Optional capability.
	FormatYAML Format = "yaml"
)

// formatByExtension is the fixed extension table. It is a pure function
// of the case-folded extension and never changes within a process.
var formatByExtension = map[string]Format{
	".txt":  FormatPlainText,
	".log":  FormatPlainText,
	".md":   FormatPlainText,
	".ini":  FormatPlainText,
	".cfg":  FormatPlainText,
	".sql":  FormatPlainText,
	".bat":  FormatPlainText,
	".sh":   FormatPlainText,
	".html": FormatMarkup,
	".htm":  FormatMarkup,
	".json": FormatJSON,
	".xml":  FormatXML,
	".csv":  FormatTable,
	".tsv":  FormatTable,
	".xlsx": FormatSpreadsheet,
	".xls":  FormatSpreadsheet,
	".docx": FormatDocument,
	".doc":  FormatDocument,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// FormatForPath resolves the format for a file path from its extension.
// Unmapped extensions return ErrUnsupportedFormat naming the extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formatByExtension[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}

// SupportedExtensions returns every extension in the format table.
// The result is a fresh slice; callers may sort or mutate it.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(formatByExtension))
	for ext := range formatByExtension {
		exts = append(exts, ext)
	}
	return exts
}
