package cmd

import (
	"io"
	"strings"

	"github.com/chris-regnier/notectl/internal/editor"
	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/ui"
	"github.com/spf13/cobra"
)

type addOptions struct {
	content string
	tags    string
	edit    bool
}

var addOpts addOptions

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new note",
	Long: `Create a new note with the given title. Content can be supplied with
--content, or written in your editor with --edit.`,
	Example: `  notectl add "Groceries"
  notectl add "Standup" --tags work,daily --content "Blocked on review"
  notectl add "Ideas" --edit`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addRun(cmd.OutOrStdout(), strings.Join(args, " "), addOpts)
	},
}

func addRun(w io.Writer, title string, opts addOptions) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	n, err := store.Create(title)
	if err != nil {
		return err
	}

	content := opts.content
	if opts.edit {
		edited, _, err := editor.Edit(editor.ResolveEditor(appConfig.Editor), n.ID, content)
		if err != nil {
			return err
		}
		content = edited
	}
	if content != "" {
		if err := store.UpdateContent(n.ID, content); err != nil {
			return err
		}
	}
	if tags := note.ParseTags(opts.tags); len(tags) > 0 {
		if err := store.UpdateTags(n.ID, tags); err != nil {
			return err
		}
	}

	n, err = store.Get(n.ID)
	if err != nil {
		return err
	}
	logger.Info("note created", "id", n.ID, "title", n.Title)

	if jsonOutput {
		return ui.FormatJSON(w, n)
	}
	ui.FormatNoteCreated(w, n)
	return nil
}

func init() {
	addCmd.Flags().StringVar(&addOpts.content, "content", "", "initial note content")
	addCmd.Flags().StringVar(&addOpts.tags, "tags", "", "comma-separated tags")
	addCmd.Flags().BoolVarP(&addOpts.edit, "edit", "e", false, "open the editor after creating the note")
	rootCmd.AddCommand(addCmd)
}
