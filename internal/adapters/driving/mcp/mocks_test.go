package mcp

import (
	"context"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driving"
)

// mockReaderService is a mock implementation of driving.ReaderService.
type mockReaderService struct {
	extraction domain.Extraction
	format     domain.Format
	caps       map[domain.Format]bool
	extensions []string
	err        error
}

func (m *mockReaderService) Extract(_ context.Context, _ string) (domain.Extraction, error) {
	return m.extraction, m.err
}

func (m *mockReaderService) Detect(_ string) (domain.Format, error) {
	return m.format, m.err
}

func (m *mockReaderService) Capabilities() map[domain.Format]bool {
	return m.caps
}

func (m *mockReaderService) SupportedExtensions() []string {
	return m.extensions
}

// mockFileService is a mock implementation of driving.FileService.
type mockFileService struct {
	batchResults []driving.BatchResult
	trashEntries []domain.TrashEntry
	paths        []string
	err          error
}

func (m *mockFileService) CreateFile(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockFileService) SaveFile(_ context.Context, _, _, _ string) error {
	return m.err
}

func (m *mockFileService) CopyFile(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockFileService) MoveFile(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockFileService) BatchCopy(_ context.Context, _ []string, _ string) []driving.BatchResult {
	return m.batchResults
}

func (m *mockFileService) BatchMove(_ context.Context, _ []string, _ string) []driving.BatchResult {
	return m.batchResults
}

func (m *mockFileService) DeleteFile(_ context.Context, _ string, _ bool) error {
	return m.err
}

func (m *mockFileService) RestoreFile(_ context.Context, _ string) error {
	return m.err
}

func (m *mockFileService) ListTrash(_ context.Context) ([]domain.TrashEntry, error) {
	return m.trashEntries, m.err
}

func (m *mockFileService) SearchFiles(_ context.Context, _, _ string) ([]string, error) {
	return m.paths, m.err
}

func (m *mockFileService) GlobFiles(_ context.Context, _, _ string) ([]string, error) {
	return m.paths, m.err
}

func (m *mockFileService) CreateFolder(_ context.Context, _ string) error {
	return m.err
}

func (m *mockFileService) ListAll(_ context.Context, _ string) ([]string, error) {
	return m.paths, m.err
}

func (m *mockFileService) CompressFolder(_ context.Context, _, _ string) error {
	return m.err
}
