package cmd

import (
	"fmt"
	"io"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag <title> [tags]",
	Short: "Replace a note's tags",
	Long: `Replace the tags of a note with a comma-separated list. Omitting the
list removes every tag.`,
	Example: `  notectl tag "Standup" work,daily
  notectl tag "Standup"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tags string
		if len(args) == 2 {
			tags = args[1]
		}
		return tagRun(cmd.OutOrStdout(), args[0], tags)
	},
}

func tagRun(w io.Writer, title, input string) error {
	n, err := findNote(title)
	if err != nil {
		return err
	}
	tags := note.ParseTags(input)
	if err := store.UpdateTags(n.ID, tags); err != nil {
		return err
	}
	n.Tags = tags
	logger.Info("note tags updated", "id", n.ID, "tags", note.JoinTags(tags))
	fmt.Fprintf(w, "Tags updated: %s\n", n.Label())
	return nil
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
