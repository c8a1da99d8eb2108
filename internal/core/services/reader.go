package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driving"
	"github.com/filekit-dev/filekit-cli/internal/logger"
)

// DefaultMaxFileSize bounds how much a single extraction will read.
const DefaultMaxFileSize = 100 * 1024 * 1024

// Ensure Reader implements the interface.
var _ driving.ReaderService = (*Reader)(nil)

// Reader is the format-dispatched reader. It resolves a format from
// the file extension, runs the matching decoder from the registry and
// returns one normalised text payload. It holds no per-call state and
// is safe for concurrent use across independent paths.
type Reader struct {
	registry    driven.DecoderRegistry
	maxFileSize int64
}

// NewReader creates a reader backed by the given decoder registry.
// maxFileSize <= 0 selects DefaultMaxFileSize.
func NewReader(registry driven.DecoderRegistry, maxFileSize int64) *Reader {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Reader{
		registry:    registry,
		maxFileSize: maxFileSize,
	}
}

// Extract returns the normalised text for the file at path.
func (r *Reader) Extract(ctx context.Context, path string) (domain.Extraction, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("extract: %s does not exist", path)
			return domain.Extraction{}, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		logger.Warn("extract: stat %s: %v", path, err)
		return domain.Extraction{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return domain.Extraction{}, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if info.Size() > r.maxFileSize {
		return domain.Extraction{}, fmt.Errorf("%w: %s is %d bytes (max %d)",
			domain.ErrTooLarge, path, info.Size(), r.maxFileSize)
	}

	format, err := r.Detect(path)
	if err != nil {
		logger.Debug("extract: %s: %v", path, err)
		return domain.Extraction{}, err
	}

	decoder, ok := r.registry.For(format)
	if !ok {
		return domain.Extraction{}, fmt.Errorf("%w: no decoder registered for %s", domain.ErrUnsupportedFormat, format)
	}

	if err := ctx.Err(); err != nil {
		return domain.Extraction{}, err
	}

	text, err := decoder.Decode(ctx, path)
	if err != nil {
		logger.Warn("extract %s (%s): %v", path, format, err)
		return domain.Extraction{}, err
	}

	return domain.Extraction{
		Path:   path,
		Format: format,
		Text:   text,
	}, nil
}

// Detect resolves the format for a path without reading it.
func (r *Reader) Detect(path string) (domain.Format, error) {
	return domain.FormatForPath(path)
}

// Capabilities maps each format to its decoder availability.
func (r *Reader) Capabilities() map[domain.Format]bool {
	return r.registry.Capabilities()
}

// SupportedExtensions lists every extension in the format table.
func (r *Reader) SupportedExtensions() []string {
	return domain.SupportedExtensions()
}
