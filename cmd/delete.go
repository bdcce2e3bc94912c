package cmd

import (
	"fmt"
	"io"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/ui"
	"github.com/spf13/cobra"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a note",
	Long:  "Permanently delete a note. Requires confirmation unless --force is used.",
	Example: `  notectl delete "Groceries"
  notectl delete "Groceries" --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteRun(cmd.OutOrStdout(), args[0], forceDelete, func(n note.Note) (bool, error) {
			return ui.ConfirmDelete(n, ui.ResolveTheme(appConfig.Theme))
		})
	},
}

func deleteRun(w io.Writer, title string, force bool, confirm func(note.Note) (bool, error)) error {
	// Fetch the note to confirm it exists and show a preview
	n, err := findNote(title)
	if err != nil {
		return err
	}

	if !force {
		fmt.Fprintf(w, "Note: %s\n", n.Label())
		fmt.Fprintf(w, "Preview: %s\n\n", n.Preview(60))

		confirmed, err := confirm(n)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(w, "Deletion cancelled.")
			return nil
		}
	}

	if err := store.Delete(n.ID); err != nil {
		return err
	}
	logger.Info("note deleted", "id", n.ID, "title", n.Title)

	if jsonOutput {
		return ui.FormatJSON(w, ui.DeleteResult{ID: n.ID, Title: n.Title, Deleted: true})
	}
	ui.FormatNoteDeleted(w, n.Title)
	return nil
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
