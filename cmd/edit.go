package cmd

import (
	"io"

	"github.com/chris-regnier/notectl/internal/editor"
	"github.com/chris-regnier/notectl/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <title>",
	Short: "Edit a note's content in your editor",
	Long: `Open a note in $EDITOR (or the editor from the config file). The note
is only saved when the editor exits successfully and the content changed.`,
	Example: `  notectl edit "Groceries"
  EDITOR=nano notectl edit "Ideas"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editRun(cmd.OutOrStdout(), args[0], editor.ResolveEditor(appConfig.Editor))
	},
}

func editRun(w io.Writer, title, editorCmd string) error {
	n, err := findNote(title)
	if err != nil {
		return err
	}

	content, changed, err := editor.Edit(editorCmd, n.ID, n.Content)
	if err != nil {
		return err
	}
	if !changed {
		ui.FormatNoChanges(w, n.Title)
		return nil
	}

	if err := store.UpdateContent(n.ID, content); err != nil {
		return err
	}
	n.Content = content
	logger.Info("note edited", "id", n.ID, "title", n.Title)

	if jsonOutput {
		return ui.FormatJSON(w, n)
	}
	ui.FormatNoteUpdated(w, n)
	return nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
