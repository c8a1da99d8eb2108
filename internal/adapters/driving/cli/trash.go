package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "Recycle bin commands",
}

var trashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List files staged in the recycle bin",
	RunE:  runTrashList,
}

var trashRestoreCmd = &cobra.Command{
	Use:   "restore [path]",
	Short: "Restore the most recently deleted file with the given path",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrashRestore,
}

func init() {
	trashCmd.AddCommand(trashListCmd)
	trashCmd.AddCommand(trashRestoreCmd)
	rootCmd.AddCommand(trashCmd)
}

func runTrashList(cmd *cobra.Command, _ []string) error {
	if fileService == nil {
		return errors.New("file service not configured")
	}

	entries, err := fileService.ListTrash(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("Recycle bin is empty.")
		return nil
	}
	for _, e := range entries {
		cmd.Printf("%s  %s\n", e.DeletedAt.Local().Format("2006-01-02 15:04:05"), e.OriginalPath)
	}
	return nil
}

func runTrashRestore(cmd *cobra.Command, args []string) error {
	if fileService == nil {
		return errors.New("file service not configured")
	}

	if err := fileService.RestoreFile(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Restored %s\n", args[0])
	return nil
}
