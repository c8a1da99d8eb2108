package table

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew(t *testing.T) {
	decoder := New()
	require.NotNil(t, decoder)
	assert.IsType(t, &Decoder{}, decoder)
}

func TestFormats(t *testing.T) {
	decoder := New()
	formats := decoder.Formats()

	require.Len(t, formats, 1)
	assert.Equal(t, domain.FormatTable, formats[0])
}

func TestDecode_CSV(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	path := writeFile(t, "data.csv", "name,qty\napple,3\nbanana,5\n")

	text, err := decoder.Decode(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "name,qty\napple,3\nbanana,5", text)
}

func TestDecode_NumericGrid(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	path := writeFile(t, "grid.csv", "1,2\n3,4\n")

	text, err := decoder.Decode(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "1,2\n3,4", text)
}

func TestDecode_TSV(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	path := writeFile(t, "data.tsv", "name\tqty\napple\t3\n")

	text, err := decoder.Decode(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "name\tqty\napple\t3", text)
}

func TestDecode_StripsQuoting(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	path := writeFile(t, "data.csv", "a,\"plain\",c\n")

	text, err := decoder.Decode(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "a,plain,c", text)
}

func TestDecode_NormalisesLineEndings(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	path := writeFile(t, "data.csv", "a,b\r\nc,d\r\n")

	text, err := decoder.Decode(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\nc,d", text)
}

func TestDecode_RaggedRows(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	path := writeFile(t, "data.csv", "a,b,c\nd\ne,f\n")

	text, err := decoder.Decode(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c\nd\ne,f", text)
}

func TestDecode_Idempotent(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	path := writeFile(t, "data.csv", "h1,h2\n\"v,1\",v2\n")

	first, err := decoder.Decode(ctx, path)
	require.NoError(t, err)

	again := writeFile(t, "again.csv", first+"\n")
	second, err := decoder.Decode(ctx, again)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecode_UnbalancedQuote(t *testing.T) {
	decoder := New()
	ctx := context.Background()

	path := writeFile(t, "broken.csv", "a,\"b\nc,d\"extra\"\n")

	_, err := decoder.Decode(ctx, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)
}
