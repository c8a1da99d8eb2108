//go:build !noyaml

package yamldoc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.Decoder = (*Decoder)(nil)

// Decoder handles YAML documents. Parsing is safe (no tag-driven code
// execution); the node tree keeps document key order and is
// re-serialised in block style with unicode left intact.
//
// The decoder is an optional capability: builds tagged noyaml swap in
// a stub that reports unavailable at startup.
type Decoder struct{}

// New creates a new YAML decoder.
func New() *Decoder {
	return &Decoder{}
}

// Formats returns the format categories this decoder handles.
func (d *Decoder) Formats() []domain.Format {
	return []domain.Format{domain.FormatYAML}
}

// Available reports true: this build includes YAML support.
func (d *Decoder) Available() bool {
	return true
}

// Decode parses the file into a node tree and re-emits it block-style.
func (d *Decoder) Decode(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return "", fmt.Errorf("%w: parse yaml: %v", domain.ErrDecodeFailure, err)
	}
	if node.Kind == 0 {
		// Empty document.
		return "", nil
	}

	// Flow styles from the source ({a: 1}, [1, 2]) would survive
	// re-serialisation; clear them so output is uniformly block.
	forceBlockStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return "", fmt.Errorf("%w: encode yaml: %v", domain.ErrDecodeFailure, err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

func forceBlockStyle(node *yaml.Node) {
	switch node.Kind {
	case yaml.MappingNode, yaml.SequenceNode, yaml.DocumentNode:
		node.Style = 0
	}
	for _, child := range node.Content {
		forceBlockStyle(child)
	}
}
