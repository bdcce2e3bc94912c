package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:     "rename <title> <new-title>",
	Short:   "Rename a note",
	Example: `  notectl rename "Groceries" "Shopping list"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renameRun(cmd.OutOrStdout(), args[0], args[1])
	},
}

func renameRun(w io.Writer, title, newTitle string) error {
	if err := validateTitle(newTitle); err != nil {
		return err
	}
	n, err := findNote(title)
	if err != nil {
		return err
	}
	if err := store.Rename(n.ID, newTitle); err != nil {
		return err
	}
	logger.Info("note renamed", "id", n.ID, "from", title, "to", newTitle)
	fmt.Fprintf(w, "Note '%s' renamed to '%s'.\n", title, newTitle)
	return nil
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
