// Package cli implements the cobra command tree for Filekit.
// Commands wire adapters to core services and stay thin: formatting
// and flag handling here, behaviour in internal/core/services.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/filekit-dev/filekit-cli/internal/adapters/driven/config/file"
	trashsqlite "github.com/filekit-dev/filekit-cli/internal/adapters/driven/trash/sqlite"
	"github.com/filekit-dev/filekit-cli/internal/core/ports/driving"
	"github.com/filekit-dev/filekit-cli/internal/core/services"
	"github.com/filekit-dev/filekit-cli/internal/decoders/jsondoc"
	"github.com/filekit-dev/filekit-cli/internal/decoders/plaintext"
	"github.com/filekit-dev/filekit-cli/internal/decoders/spreadsheet"
	"github.com/filekit-dev/filekit-cli/internal/decoders/table"
	"github.com/filekit-dev/filekit-cli/internal/decoders/wordml"
	"github.com/filekit-dev/filekit-cli/internal/decoders/xmldoc"
	"github.com/filekit-dev/filekit-cli/internal/decoders/yamldoc"
	"github.com/filekit-dev/filekit-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
)

// Services shared by all commands, wired in initServices.
var (
	readerService driving.ReaderService
	fileService   driving.FileService
	trashStore    *trashsqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "filekit",
	Short: "Filesystem tools and multi-format text extraction",
	Long: `Filekit exposes filesystem operations - create, copy, move, delete,
search, compress, enumerate - together with a multi-format text reader
that normalises JSON, XML, CSV/TSV, XLSX, DOCX, HTML and YAML files
into plain text. The same operations are available as MCP tools via
"filekit mcp serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if trashStore != nil {
			trashStore.Close() //nolint:errcheck
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose diagnostic output")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.filekit)")
}

// initServices builds the decoder registry, reader and file service
// from configuration. Capability availability is fixed here, at
// startup, so callers get an early signal for optional decoders.
func initServices() error {
	logger.Section("startup")

	store, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.Info("config: %s", store.Path())

	registry := services.NewDecoderRegistry()
	registry.Register(plaintext.New())
	registry.Register(jsondoc.New())
	registry.Register(xmldoc.New())
	registry.Register(table.New())
	registry.Register(spreadsheet.New())
	registry.Register(wordml.New())
	registry.Register(yamldoc.New())

	readerService = services.NewReader(registry, int64(store.GetInt("max_file_size")))

	dataDir := store.GetString("data_dir")
	trashDir := store.GetString("trash_dir")
	if trashDir == "" {
		trashDir = defaultTrashDir()
	}

	trashStore, err = trashsqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening trash index: %w", err)
	}
	logger.Info("trash index: %s, staging dir: %s", trashStore.Path(), trashDir)

	fileService = services.NewFileOps(trashStore, trashDir)
	return nil
}

func defaultTrashDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "filekit-trash")
	}
	return filepath.Join(home, ".filekit", "trash")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
