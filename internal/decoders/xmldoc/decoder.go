package xmldoc

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Decoder handles XML documents. The tree is re-serialised from the
// root element: the XML declaration, doctype and anything outside the
// root are dropped.
type Decoder struct{}

// New creates a new XML decoder.
func New() *Decoder {
	return &Decoder{}
}

// Formats returns the format categories this decoder handles.
func (d *Decoder) Formats() []domain.Format {
	return []domain.Format{domain.FormatXML}
}

// Available always reports true.
func (d *Decoder) Available() bool {
	return true
}

// Decode parses the file token by token and re-emits the root element.
// Malformed markup surfaces as a decode failure.
func (d *Decoder) Decode(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)

	depth := 0
	seenRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: parse xml: %v", domain.ErrDecodeFailure, err)
		}

		switch t := tok.(type) {
		case xml.ProcInst, xml.Directive:
			// Declaration and doctype are not part of the root's
			// canonical form.
			continue
		case xml.CharData:
			if depth == 0 {
				if seenRoot && len(bytes.TrimSpace(t)) > 0 {
					return "", fmt.Errorf("%w: content after root element", domain.ErrDecodeFailure)
				}
				continue
			}
			if err := enc.EncodeToken(t); err != nil {
				return "", fmt.Errorf("%w: encode xml: %v", domain.ErrDecodeFailure, err)
			}
		case xml.Comment:
			if depth == 0 {
				continue
			}
			if err := enc.EncodeToken(t); err != nil {
				return "", fmt.Errorf("%w: encode xml: %v", domain.ErrDecodeFailure, err)
			}
		case xml.StartElement:
			// A document has exactly one root.
			if seenRoot && depth == 0 {
				return "", fmt.Errorf("%w: second root element <%s>", domain.ErrDecodeFailure, t.Name.Local)
			}
			depth++
			seenRoot = true
			if err := enc.EncodeToken(t); err != nil {
				return "", fmt.Errorf("%w: encode xml: %v", domain.ErrDecodeFailure, err)
			}
		case xml.EndElement:
			depth--
			if err := enc.EncodeToken(t); err != nil {
				return "", fmt.Errorf("%w: encode xml: %v", domain.ErrDecodeFailure, err)
			}
		}
	}

	if !seenRoot {
		return "", fmt.Errorf("%w: no root element", domain.ErrDecodeFailure)
	}
	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("%w: encode xml: %v", domain.ErrDecodeFailure, err)
	}

	return buf.String(), nil
}
