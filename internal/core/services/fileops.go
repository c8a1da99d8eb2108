package services

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/google/uuid"
	"github.com/klauspost/compress/flate"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driven"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driving"
	"github.com/filekit-dev/filekit-cli/internal/logger"
)

// Ensure FileOps implements the interface.
var _ driving.FileService = (*FileOps)(nil)

// FileOps implements the pass-through filesystem operations. Each
// method wraps a platform primitive and converts failures to typed
// errors at its own boundary; nothing propagates as a panic.
type FileOps struct {
	trash    driven.TrashStore
	trashDir string
}

// NewFileOps creates a file operations service. trash may be nil, in
// which case deletes are always permanent and restore is unavailable.
func NewFileOps(trash driven.TrashStore, trashDir string) *FileOps {
	return &FileOps{
		trash:    trash,
		trashDir: trashDir,
	}
}

// CreateFile creates a file at path with the given content.
func (f *FileOps) CreateFile(_ context.Context, path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		logger.Warn("create file %s: %v", path, err)
		return classifyPathErr(err)
	}
	return nil
}

// SaveFile writes content to path, appending ".format" when missing.
func (f *FileOps) SaveFile(ctx context.Context, path, content, format string) error {
	if format == "" {
		format = "txt"
	}
	suffix := "." + strings.TrimPrefix(format, ".")
	if !strings.HasSuffix(path, suffix) {
		path += suffix
	}
	return f.CreateFile(ctx, path, content)
}

// CopyFile copies a single file, preserving mode bits.
func (f *FileOps) CopyFile(_ context.Context, src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		logger.Warn("copy %s -> %s: %v", src, dst, err)
		return classifyPathErr(err)
	}
	return nil
}

// MoveFile moves a single file, falling back to copy+remove across devices.
func (f *FileOps) MoveFile(_ context.Context, src, dst string) error {
	if err := moveFile(src, dst); err != nil {
		logger.Warn("move %s -> %s: %v", src, dst, err)
		return classifyPathErr(err)
	}
	return nil
}

// BatchCopy copies each source into dstDir under its base name.
func (f *FileOps) BatchCopy(ctx context.Context, srcs []string, dstDir string) []driving.BatchResult {
	return f.batch(ctx, srcs, dstDir, f.CopyFile)
}

// BatchMove moves each source into dstDir under its base name.
func (f *FileOps) BatchMove(ctx context.Context, srcs []string, dstDir string) []driving.BatchResult {
	return f.batch(ctx, srcs, dstDir, f.MoveFile)
}

func (f *FileOps) batch(ctx context.Context, srcs []string, dstDir string,
	op func(context.Context, string, string) error) []driving.BatchResult {
	results := make([]driving.BatchResult, 0, len(srcs))
	for _, src := range srcs {
		if err := ctx.Err(); err != nil {
			results = append(results, driving.BatchResult{Source: src, Err: err})
			continue
		}
		dst := filepath.Join(dstDir, filepath.Base(src))
		results = append(results, driving.BatchResult{Source: src, Err: op(ctx, src, dst)})
	}
	return results
}

// DeleteFile removes a file. With permanent set (or without a trash
// store) the file is unlinked; otherwise it is staged for restore.
func (f *FileOps) DeleteFile(ctx context.Context, path string, permanent bool) error {
	if permanent || f.trash == nil {
		if err := os.Remove(path); err != nil {
			logger.Warn("delete %s: %v", path, err)
			return classifyPathErr(err)
		}
		return nil
	}
	return f.stageDelete(ctx, path)
}

// stageDelete moves the file into the trash directory under a unique
// name and records where it came from.
func (f *FileOps) stageDelete(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return classifyPathErr(err)
	}
	if err := os.MkdirAll(f.trashDir, 0o700); err != nil {
		return classifyPathErr(err)
	}

	entry := domain.TrashEntry{
		ID:           uuid.New().String(),
		OriginalPath: abs,
		DeletedAt:    time.Now().UTC(),
	}
	entry.StoredName = entry.ID + filepath.Ext(abs)

	stored := filepath.Join(f.trashDir, entry.StoredName)
	if err := moveFile(abs, stored); err != nil {
		logger.Warn("stage delete %s: %v", abs, err)
		return classifyPathErr(err)
	}
	if err := f.trash.Add(ctx, entry); err != nil {
		// Index failed: put the file back rather than orphaning it.
		if restoreErr := moveFile(stored, abs); restoreErr != nil {
			logger.Warn("unstage %s after index failure: %v", abs, restoreErr)
		}
		return err
	}
	logger.Debug("staged %s as %s", abs, entry.StoredName)
	return nil
}

// RestoreFile restores the most recently trashed file for the path.
func (f *FileOps) RestoreFile(ctx context.Context, path string) error {
	if f.trash == nil {
		return fmt.Errorf("%w: no trash store configured", domain.ErrCapabilityUnavailable)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, path, err)
	}

	entry, err := f.trash.Latest(ctx, abs)
	if err != nil {
		return err
	}

	stored := filepath.Join(f.trashDir, entry.StoredName)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return classifyPathErr(err)
	}
	if err := moveFile(stored, abs); err != nil {
		logger.Warn("restore %s: %v", abs, err)
		return classifyPathErr(err)
	}
	if err := f.trash.Remove(ctx, entry.ID); err != nil {
		logger.Warn("drop trash entry %s: %v", entry.ID, err)
	}
	return nil
}

// ListTrash returns all staged deletions, most recent first.
func (f *FileOps) ListTrash(ctx context.Context) ([]domain.TrashEntry, error) {
	if f.trash == nil {
		return nil, fmt.Errorf("%w: no trash store configured", domain.ErrCapabilityUnavailable)
	}
	return f.trash.List(ctx)
}

// SearchFiles walks root and returns files whose name contains keyword.
func (f *FileOps) SearchFiles(ctx context.Context, root, keyword string) ([]string, error) {
	return walkCollect(ctx, root, func(path string) bool {
		return strings.Contains(filepath.Base(path), keyword)
	})
}

// GlobFiles walks root and returns paths matching a doublestar pattern.
func (f *FileOps) GlobFiles(ctx context.Context, root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad pattern %q", domain.ErrInvalidInput, pattern)
	}
	return walkCollect(ctx, root, func(path string) bool {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return false
		}
		ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel))
		return ok
	})
}

// CreateFolder creates a directory and any missing parents.
func (f *FileOps) CreateFolder(_ context.Context, path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		logger.Warn("create folder %s: %v", path, err)
		return classifyPathErr(err)
	}
	return nil
}

// ListAll returns every file path under root, recursively.
func (f *FileOps) ListAll(ctx context.Context, root string) ([]string, error) {
	return walkCollect(ctx, root, func(string) bool { return true })
}

// CompressFolder writes a ZIP archive of srcDir to dstZip.
func (f *FileOps) CompressFolder(ctx context.Context, srcDir, dstZip string) error {
	if !strings.HasSuffix(strings.ToLower(dstZip), ".zip") {
		dstZip += ".zip"
	}

	files, err := f.ListAll(ctx, srcDir)
	if err != nil {
		return err
	}
	dirs, err := walkCollectDirs(ctx, srcDir)
	if err != nil {
		return err
	}

	out, err := os.Create(dstZip)
	if err != nil {
		logger.Warn("compress %s: %v", srcDir, err)
		return classifyPathErr(err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	// Deflate through klauspost/compress; measurably faster than the
	// standard implementation on large trees.
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	// Directory entries first so empty folders survive the archive.
	for _, dir := range dirs {
		if err := addDirToZip(zw, srcDir, dir); err != nil {
			zw.Close()
			logger.Warn("compress %s: %v", dir, err)
			return classifyPathErr(err)
		}
	}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return err
		}
		if err := addToZip(zw, srcDir, path); err != nil {
			zw.Close()
			logger.Warn("compress %s: %v", path, err)
			return classifyPathErr(err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalise archive %s: %w", dstZip, err)
	}
	return nil
}

func addDirToZip(zw *zip.Writer, root, path string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.ToSlash(rel) + "/"

	_, err = zw.CreateHeader(header)
	return err
}

func addToZip(zw *zip.Writer, root, path string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.ToSlash(rel)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(w, src)
	return err
}

// walkCollect runs a parallel walk under root and returns the sorted
// file paths accepted by keep. Directories themselves are skipped.
func walkCollect(ctx context.Context, root string, keep func(string) bool) ([]string, error) {
	if info, err := os.Stat(root); err != nil {
		return nil, classifyPathErr(err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, root)
	}

	var (
		mu    sync.Mutex
		paths []string
	)
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() || !keep(path) {
			return nil
		}
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// walkCollectDirs returns the sorted directory paths under root,
// excluding root itself.
func walkCollectDirs(ctx context.Context, root string) ([]string, error) {
	var (
		mu    sync.Mutex
		paths []string
	)
	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if !d.IsDir() || path == root {
			return nil
		}
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// moveFile renames src to dst, degrading to copy+remove when the
// rename crosses devices.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return err
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// classifyPathErr maps filesystem errors onto domain sentinels so
// adapters can report a branchable kind.
func classifyPathErr(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	return err
}
