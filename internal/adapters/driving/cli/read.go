package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var readShowFormat bool

var readCmd = &cobra.Command{
	Use:   "read [path]",
	Short: "Extract normalised text from a file",
	Long: `Reads a file and prints its normalised text representation.
The structural format is resolved from the file extension: plain text
and HTML pass through verbatim, JSON is re-indented, XML is re-emitted
from its root element, CSV/TSV rows are canonicalised, XLSX sheets are
rendered as aligned tables, DOCX paragraphs become lines and YAML is
re-serialised in block style.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readShowFormat, "show-format", false, "print the resolved format before the text")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	extraction, err := readerService.Extract(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if readShowFormat {
		cmd.Printf("format: %s\n", extraction.Format)
	}
	cmd.Println(extraction.Text)
	return nil
}
