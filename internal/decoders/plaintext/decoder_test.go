package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	decoder := New()
	require.NotNil(t, decoder)
	assert.IsType(t, &Decoder{}, decoder)
}

func TestFormats(t *testing.T) {
	decoder := New()
	formats := decoder.Formats()

	require.Len(t, formats, 2)
	assert.Contains(t, formats, domain.FormatPlainText)
	assert.Contains(t, formats, domain.FormatMarkup)
}

func TestAvailable(t *testing.T) {
	assert.True(t, New().Available())
}

func TestDecode_Verbatim(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	content := "line one\nline two\n\ttabbed"
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := decoder.Decode(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestDecode_EmptyFile(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	text, err := decoder.Decode(ctx, path)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestDecode_Unicode(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	content := "héllo wörld — 日本語"
	path := filepath.Join(t.TempDir(), "unicode.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := decoder.Decode(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestDecode_MissingFile(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	_, err := decoder.Decode(ctx, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
