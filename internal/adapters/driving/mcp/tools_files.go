package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/filekit-dev/filekit-cli/internal/core/ports/driving"
)

// CreateFileInput is the input schema for the create_file tool.
type CreateFileInput struct {
	Path    string `json:"path" jsonschema:"full path of the file to create"`
	Content string `json:"content,omitempty" jsonschema:"content to write; empty creates an empty file"`
}

// SaveFileInput is the input schema for the save_file tool.
type SaveFileInput struct {
	Path    string `json:"path" jsonschema:"file path, with or without extension"`
	Content string `json:"content" jsonschema:"content to write"`
	Format  string `json:"format,omitempty" jsonschema:"extension to ensure on the path (default txt)"`
}

// TransferInput is the input schema for copy_file and move_file.
type TransferInput struct {
	Src string `json:"src" jsonschema:"source file path"`
	Dst string `json:"dst" jsonschema:"destination file path"`
}

// BatchTransferInput is the input schema for batch copy/move tools.
type BatchTransferInput struct {
	SrcPaths []string `json:"src_paths" jsonschema:"source file paths"`
	DstDir   string   `json:"dst_dir" jsonschema:"destination directory"`
}

// BatchItem reports one outcome in a batch operation.
type BatchItem struct {
	OpStatus
	Source string `json:"source"`
}

// BatchOutput is the output schema for batch copy/move tools.
type BatchOutput struct {
	OpStatus
	Results []BatchItem `json:"results"`
}

// DeleteFileInput is the input schema for the delete_file tool.
type DeleteFileInput struct {
	Path      string `json:"path" jsonschema:"file to delete"`
	Permanent bool   `json:"permanent,omitempty" jsonschema:"unlink immediately instead of staging in the recycle bin"`
}

// RestoreFileInput is the input schema for restore_file_from_recycle_bin.
type RestoreFileInput struct {
	Path string `json:"path" jsonschema:"original path of the file to restore"`
}

// TrashEntryInfo describes one staged deletion.
type TrashEntryInfo struct {
	ID           string `json:"id"`
	OriginalPath string `json:"original_path"`
	DeletedAt    string `json:"deleted_at"`
}

// ListTrashOutput is the output schema for the list_recycle_bin tool.
type ListTrashOutput struct {
	OpStatus
	Entries []TrashEntryInfo `json:"entries"`
}

// SearchFilesInput is the input schema for the search_files tool.
type SearchFilesInput struct {
	Directory string `json:"directory" jsonschema:"root directory to search"`
	Keyword   string `json:"keyword" jsonschema:"substring to match in file names"`
}

// GlobFilesInput is the input schema for the glob_files tool.
type GlobFilesInput struct {
	Directory string `json:"directory" jsonschema:"root directory to search"`
	Pattern   string `json:"pattern" jsonschema:"doublestar pattern such as **/*.go"`
}

// PathListOutput is the output schema for tools returning path lists.
type PathListOutput struct {
	OpStatus
	Paths []string `json:"paths"`
	Count int      `json:"count"`
}

// CreateFolderInput is the input schema for the create_folder tool.
type CreateFolderInput struct {
	Path string `json:"path" jsonschema:"directory to create, including missing parents"`
}

// CompressFolderInput is the input schema for the compress_folder tool.
type CompressFolderInput struct {
	SrcDir string `json:"src_dir" jsonschema:"directory to compress"`
	DstZip string `json:"dst_zip" jsonschema:"target archive path; .zip is appended when missing"`
}

// ListAllInput is the input schema for the get_all_files tool.
type ListAllInput struct {
	FolderPath string `json:"folder_path" jsonschema:"directory to enumerate recursively"`
}

// registerFileTools registers the pass-through operation handlers.
func (s *Server) registerFileTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_file",
		Description: "Create a file with the given content, overwriting any existing file.",
	}, s.handleCreateFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_file",
		Description: "Save content to a file, ensuring the path carries the given extension.",
	}, s.handleSaveFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "copy_file",
		Description: "Copy a single file.",
	}, s.handleCopyFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "move_file",
		Description: "Move a single file.",
	}, s.handleMoveFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "batch_copy_files",
		Description: "Copy several files into a directory, reporting per-file outcomes.",
	}, s.handleBatchCopy)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "batch_move_files",
		Description: "Move several files into a directory, reporting per-file outcomes.",
	}, s.handleBatchMove)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_file",
		Description: "Delete a file. By default the file is staged in the recycle bin; permanent deletes unlink immediately.",
	}, s.handleDeleteFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "restore_file_from_recycle_bin",
		Description: "Restore the most recently deleted file that had the given path.",
	}, s.handleRestoreFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_recycle_bin",
		Description: "List files currently staged in the recycle bin.",
	}, s.handleListTrash)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_files",
		Description: "Recursively find files whose name contains a keyword.",
	}, s.handleSearchFiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "glob_files",
		Description: "Recursively find files matching a doublestar glob pattern.",
	}, s.handleGlobFiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_folder",
		Description: "Create a directory, including missing parents.",
	}, s.handleCreateFolder)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compress_folder",
		Description: "Compress a directory tree into a ZIP archive.",
	}, s.handleCompressFolder)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_all_files",
		Description: "List every file under a directory, recursively.",
	}, s.handleListAll)
}

func (s *Server) handleCreateFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateFileInput,
) (*mcp.CallToolResult, OpStatus, error) {
	return nil, statusFor(s.ports.Files.CreateFile(ctx, input.Path, input.Content)), nil
}

func (s *Server) handleSaveFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveFileInput,
) (*mcp.CallToolResult, OpStatus, error) {
	return nil, statusFor(s.ports.Files.SaveFile(ctx, input.Path, input.Content, input.Format)), nil
}

func (s *Server) handleCopyFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TransferInput,
) (*mcp.CallToolResult, OpStatus, error) {
	return nil, statusFor(s.ports.Files.CopyFile(ctx, input.Src, input.Dst)), nil
}

func (s *Server) handleMoveFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TransferInput,
) (*mcp.CallToolResult, OpStatus, error) {
	return nil, statusFor(s.ports.Files.MoveFile(ctx, input.Src, input.Dst)), nil
}

func (s *Server) handleBatchCopy(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BatchTransferInput,
) (*mcp.CallToolResult, BatchOutput, error) {
	return nil, batchOutput(s.ports.Files.BatchCopy(ctx, input.SrcPaths, input.DstDir)), nil
}

func (s *Server) handleBatchMove(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BatchTransferInput,
) (*mcp.CallToolResult, BatchOutput, error) {
	return nil, batchOutput(s.ports.Files.BatchMove(ctx, input.SrcPaths, input.DstDir)), nil
}

func batchOutput(results []driving.BatchResult) BatchOutput {
	out := BatchOutput{OpStatus: statusFor(nil)}
	out.Results = make([]BatchItem, len(results))
	for i, r := range results {
		out.Results[i] = BatchItem{OpStatus: statusFor(r.Err), Source: r.Source}
		if r.Err != nil {
			out.Success = false
		}
	}
	return out
}

func (s *Server) handleDeleteFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteFileInput,
) (*mcp.CallToolResult, OpStatus, error) {
	return nil, statusFor(s.ports.Files.DeleteFile(ctx, input.Path, input.Permanent)), nil
}

func (s *Server) handleRestoreFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RestoreFileInput,
) (*mcp.CallToolResult, OpStatus, error) {
	return nil, statusFor(s.ports.Files.RestoreFile(ctx, input.Path)), nil
}

func (s *Server) handleListTrash(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListTrashOutput, error) {
	entries, err := s.ports.Files.ListTrash(ctx)
	if err != nil {
		return nil, ListTrashOutput{OpStatus: statusFor(err)}, nil
	}
	out := ListTrashOutput{OpStatus: statusFor(nil)}
	out.Entries = make([]TrashEntryInfo, len(entries))
	for i, e := range entries {
		out.Entries[i] = TrashEntryInfo{
			ID:           e.ID,
			OriginalPath: e.OriginalPath,
			DeletedAt:    e.DeletedAt.Format(time.RFC3339),
		}
	}
	return nil, out, nil
}

func (s *Server) handleSearchFiles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchFilesInput,
) (*mcp.CallToolResult, PathListOutput, error) {
	paths, err := s.ports.Files.SearchFiles(ctx, input.Directory, input.Keyword)
	return nil, pathListOutput(paths, err), nil
}

func (s *Server) handleGlobFiles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GlobFilesInput,
) (*mcp.CallToolResult, PathListOutput, error) {
	paths, err := s.ports.Files.GlobFiles(ctx, input.Directory, input.Pattern)
	return nil, pathListOutput(paths, err), nil
}

func (s *Server) handleListAll(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListAllInput,
) (*mcp.CallToolResult, PathListOutput, error) {
	paths, err := s.ports.Files.ListAll(ctx, input.FolderPath)
	return nil, pathListOutput(paths, err), nil
}

func pathListOutput(paths []string, err error) PathListOutput {
	if err != nil {
		return PathListOutput{OpStatus: statusFor(err)}
	}
	return PathListOutput{
		OpStatus: statusFor(nil),
		Paths:    paths,
		Count:    len(paths),
	}
}

func (s *Server) handleCreateFolder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateFolderInput,
) (*mcp.CallToolResult, OpStatus, error) {
	return nil, statusFor(s.ports.Files.CreateFolder(ctx, input.Path)), nil
}

func (s *Server) handleCompressFolder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompressFolderInput,
) (*mcp.CallToolResult, OpStatus, error) {
	return nil, statusFor(s.ports.Files.CompressFolder(ctx, input.SrcDir, input.DstZip)), nil
}
