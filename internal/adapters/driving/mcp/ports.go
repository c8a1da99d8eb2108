package mcp

import (
	"errors"

	"github.com/filekit-dev/filekit-cli/internal/core/ports/driving"
)

// Adapter wiring errors.
var (
	// ErrMissingReaderService indicates no reader was provided.
	ErrMissingReaderService = errors.New("missing reader service")

	// ErrMissingFileService indicates no file service was provided.
	ErrMissingFileService = errors.New("missing file service")
)

// Ports holds the driving-port implementations the MCP server exposes.
type Ports struct {
	// Reader provides format-dispatched text extraction.
	Reader driving.ReaderService

	// Files provides the pass-through filesystem operations.
	Files driving.FileService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Reader == nil {
		return ErrMissingReaderService
	}
	if p.Files == nil {
		return ErrMissingFileService
	}
	return nil
}
