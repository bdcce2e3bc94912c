package cmd

import (
	"io"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/ui"
	"github.com/chris-regnier/notectl/internal/view"
	"github.com/spf13/cobra"
)

var tagsIncludeArchived bool

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags with note counts",
	Example: `  notectl tags
  notectl tags --archived --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagsRun(cmd.OutOrStdout(), tagsIncludeArchived)
	},
}

func tagsRun(w io.Writer, includeArchived bool) error {
	notes, err := store.List()
	if err != nil {
		return err
	}

	var filter view.Filter = view.Active{}
	if includeArchived {
		filter = view.All{}
	}
	matched := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if filter.Match(n) {
			matched = append(matched, n)
		}
	}

	counts := view.CountTags(matched)
	if jsonOutput {
		if counts == nil {
			counts = []view.TagCount{}
		}
		return ui.FormatJSON(w, counts)
	}
	ui.FormatTagList(w, counts)
	return nil
}

func init() {
	tagsCmd.Flags().BoolVar(&tagsIncludeArchived, "archived", false, "include tags of archived notes")
	rootCmd.AddCommand(tagsCmd)
}
