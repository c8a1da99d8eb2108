package services

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
)

// memoryTrashStore is a slice-backed trash index for tests.
type memoryTrashStore struct {
	entries []domain.TrashEntry
}

func (m *memoryTrashStore) Add(_ context.Context, entry domain.TrashEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryTrashStore) Latest(_ context.Context, originalPath string) (domain.TrashEntry, error) {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].OriginalPath == originalPath {
			return m.entries[i], nil
		}
	}
	return domain.TrashEntry{}, domain.ErrNotFound
}

func (m *memoryTrashStore) Remove(_ context.Context, id string) error {
	for i, entry := range m.entries {
		if entry.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memoryTrashStore) List(_ context.Context) ([]domain.TrashEntry, error) {
	out := make([]domain.TrashEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memoryTrashStore) Close() error { return nil }

func zipEntryNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func newTestFileOps(t *testing.T) (*FileOps, *memoryTrashStore) {
	t.Helper()
	store := &memoryTrashStore{}
	return NewFileOps(store, filepath.Join(t.TempDir(), "trash")), store
}

func TestFileOps_CreateFile(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "new.txt")
	require.NoError(t, ops.CreateFile(ctx, path, "hello"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestFileOps_SaveFile_AppendsExtension(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, ops.SaveFile(ctx, filepath.Join(dir, "report"), "body", "md"))
	assert.FileExists(t, filepath.Join(dir, "report.md"))

	// Already-suffixed paths are left alone.
	require.NoError(t, ops.SaveFile(ctx, filepath.Join(dir, "notes.md"), "body", "md"))
	assert.FileExists(t, filepath.Join(dir, "notes.md"))
	assert.NoFileExists(t, filepath.Join(dir, "notes.md.md"))
}

func TestFileOps_SaveFile_DefaultsToTxt(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, ops.SaveFile(ctx, filepath.Join(dir, "plain"), "body", ""))
	assert.FileExists(t, filepath.Join(dir, "plain.txt"))
}

func TestFileOps_CopyFile(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, ops.CopyFile(ctx, src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.FileExists(t, src)
}

func TestFileOps_CopyFile_MissingSource(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	dir := t.TempDir()

	err := ops.CopyFile(ctx, filepath.Join(dir, "absent.txt"), filepath.Join(dir, "dst.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileOps_MoveFile(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "moved.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, ops.MoveFile(ctx, src, dst))
	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)
}

func TestFileOps_BatchCopy(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	a := filepath.Join(srcDir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	missing := filepath.Join(srcDir, "missing.txt")

	results := ops.BatchCopy(ctx, []string{a, missing}, dstDir)
	require.Len(t, results, 2)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, a, results[0].Source)
	assert.FileExists(t, filepath.Join(dstDir, "a.txt"))

	assert.ErrorIs(t, results[1].Err, domain.ErrNotFound)
	assert.Equal(t, missing, results[1].Source)
}

func TestFileOps_BatchMove(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	a := filepath.Join(srcDir, "a.txt")
	b := filepath.Join(srcDir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))

	results := ops.BatchMove(ctx, []string{a, b}, dstDir)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.NoError(t, res.Err)
	}
	assert.NoFileExists(t, a)
	assert.NoFileExists(t, b)
	assert.FileExists(t, filepath.Join(dstDir, "a.txt"))
	assert.FileExists(t, filepath.Join(dstDir, "b.txt"))
}

func TestFileOps_DeleteFile_Permanent(t *testing.T) {
	ops, store := newTestFileOps(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, ops.DeleteFile(ctx, path, true))
	assert.NoFileExists(t, path)
	assert.Empty(t, store.entries)
}

func TestFileOps_DeleteFile_StagesToTrash(t *testing.T) {
	ops, store := newTestFileOps(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	require.NoError(t, ops.DeleteFile(ctx, path, false))
	assert.NoFileExists(t, path)

	require.Len(t, store.entries, 1)
	entry := store.entries[0]
	abs, _ := filepath.Abs(path)
	assert.Equal(t, abs, entry.OriginalPath)
	assert.Equal(t, ".txt", filepath.Ext(entry.StoredName))

	// Bytes survive in the staging area.
	data, err := os.ReadFile(filepath.Join(ops.trashDir, entry.StoredName))
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestFileOps_DeleteFile_MissingFile(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()

	err := ops.DeleteFile(ctx, filepath.Join(t.TempDir(), "absent.txt"), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileOps_RestoreFile(t *testing.T) {
	ops, store := newTestFileOps(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("round trip"), 0o644))

	require.NoError(t, ops.DeleteFile(ctx, path, false))
	require.NoError(t, ops.RestoreFile(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "round trip", string(data))
	assert.Empty(t, store.entries)
}

func TestFileOps_RestoreFile_NothingStaged(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()

	err := ops.RestoreFile(ctx, filepath.Join(t.TempDir(), "never.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileOps_RestoreFile_NoTrashStore(t *testing.T) {
	ops := NewFileOps(nil, "")
	ctx := context.Background()

	err := ops.RestoreFile(ctx, "whatever.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapabilityUnavailable)
}

func TestFileOps_DeleteFile_NoTrashStoreIsPermanent(t *testing.T) {
	ops := NewFileOps(nil, "")
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, ops.DeleteFile(ctx, path, false))
	assert.NoFileExists(t, path)
}

func TestFileOps_SearchFiles(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "report-final.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "report-draft.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "other.txt"), nil, 0o644))

	paths, err := ops.SearchFiles(ctx, root, "report")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.True(t, sort.StringsAreSorted(paths))
	assert.Contains(t, paths, filepath.Join(root, "report-final.txt"))
	assert.Contains(t, paths, filepath.Join(root, "sub", "report-draft.txt"))
}

func TestFileOps_SearchFiles_MissingRoot(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()

	_, err := ops.SearchFiles(ctx, filepath.Join(t.TempDir(), "absent"), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileOps_GlobFiles(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.json"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "deep.json"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "deep.txt"), nil, 0o644))

	paths, err := ops.GlobFiles(ctx, root, "**/*.json")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Contains(t, paths, filepath.Join(root, "top.json"))
	assert.Contains(t, paths, filepath.Join(root, "a", "b", "deep.json"))
}

func TestFileOps_GlobFiles_BadPattern(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()

	_, err := ops.GlobFiles(ctx, t.TempDir(), "[")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFileOps_CreateFolder(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, ops.CreateFolder(ctx, path))
	assert.DirExists(t, path)

	// Creating an existing folder is not an error.
	require.NoError(t, ops.CreateFolder(ctx, path))
}

func TestFileOps_ListAll(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "one.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "nested", "two.txt"), nil, 0o644))

	paths, err := ops.ListAll(ctx, root)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.True(t, sort.StringsAreSorted(paths))
}

func TestFileOps_CompressFolder(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("beta"), 0o644))

	dst := filepath.Join(t.TempDir(), "archive")
	require.NoError(t, ops.CompressFolder(ctx, root, dst))

	// Suffix is appended when missing.
	assert.NoFileExists(t, dst)
	assert.FileExists(t, dst+".zip")

	names := zipEntryNames(t, dst+".zip")
	assert.ElementsMatch(t, []string{"sub/", "a.txt", "sub/b.txt"}, names)
}

func TestFileOps_CompressFolder_KeepsEmptyDirectories(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "filled"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "filled", "a.txt"), []byte("x"), 0o644))

	dst := filepath.Join(t.TempDir(), "archive.zip")
	require.NoError(t, ops.CompressFolder(ctx, root, dst))

	names := zipEntryNames(t, dst)
	assert.ElementsMatch(t, []string{"empty/", "filled/", "filled/a.txt"}, names)
}

func TestFileOps_CompressFolder_MissingSource(t *testing.T) {
	ops, _ := newTestFileOps(t)
	ctx := context.Background()

	err := ops.CompressFolder(ctx, filepath.Join(t.TempDir(), "absent"), filepath.Join(t.TempDir(), "out.zip"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
