package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var unarchive bool

var archiveCmd = &cobra.Command{
	Use:   "archive <title>",
	Short: "Archive or unarchive a note",
	Long:  "Archived notes are hidden from the default list and TUI view.",
	Example: `  notectl archive "Groceries"
  notectl archive "Groceries" --undo`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return archiveRun(cmd.OutOrStdout(), args[0], !unarchive)
	},
}

func archiveRun(w io.Writer, title string, archived bool) error {
	n, err := findNote(title)
	if err != nil {
		return err
	}
	if err := store.SetArchived(n.ID, archived); err != nil {
		return err
	}
	logger.Info("note archive state changed", "id", n.ID, "archived", archived)

	state := "Archived"
	if !archived {
		state = "Unarchived"
	}
	fmt.Fprintf(w, "Note '%s' %s.\n", n.Title, state)
	return nil
}

func init() {
	archiveCmd.Flags().BoolVar(&unarchive, "undo", false, "unarchive the note instead")
	rootCmd.AddCommand(archiveCmd)
}
