package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported formats and extensions",
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	caps := readerService.Capabilities()
	names := make([]string, 0, len(caps))
	for format := range caps {
		names = append(names, string(format))
	}
	sort.Strings(names)

	for _, name := range names {
		status := "available"
		if !caps[domain.Format(name)] {
			status = "unavailable in this build"
		}
		cmd.Printf("%-12s %s\n", name, status)
	}

	exts := readerService.SupportedExtensions()
	sort.Strings(exts)
	cmd.Println()
	cmd.Println("extensions:", exts)
	return nil
}
