package wordml

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Decoder handles word-processor files. Paragraph text is extracted in
// document order, one paragraph per line, with styling and structure
// discarded.
//
// Only the OOXML container (.docx) can be parsed; legacy binary .doc
// files fail the ZIP open and surface as a recoverable decode failure.
type Decoder struct{}

// New creates a new word-processor decoder.
func New() *Decoder {
	return &Decoder{}
}

// Formats returns the format categories this decoder handles.
func (d *Decoder) Formats() []domain.Format {
	return []domain.Format{domain.FormatDocument}
}

// Available always reports true.
func (d *Decoder) Available() bool {
	return true
}

// Decode extracts paragraph text from word/document.xml.
func (d *Decoder) Decode(_ context.Context, path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: open document %s: %v", domain.ErrDecodeFailure, filepath.Base(path), err)
	}
	defer r.Close()

	content, err := documentPart(&r.Reader)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrDecodeFailure, filepath.Base(path), err)
	}

	text, err := paragraphText(content)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrDecodeFailure, filepath.Base(path), err)
	}
	return text, nil
}

// documentPart reads word/document.xml from the archive.
func documentPart(reader *zip.Reader) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read document.xml: %w", err)
		}
		return content, nil
	}
	return nil, fmt.Errorf("word/document.xml not found in archive")
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// paragraphText joins paragraph runs, one paragraph per line.
func paragraphText(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("parse document.xml: %w", err)
	}

	lines := make([]string, len(doc.Body.Paragraphs))
	for i, para := range doc.Body.Paragraphs {
		var sb strings.Builder
		for _, r := range para.Runs {
			for _, t := range r.Text {
				sb.WriteString(t.Content)
			}
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n"), nil
}
