package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chris-regnier/notectl/internal/ui"
	"github.com/spf13/cobra"
)

var showContentOnly bool

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Show a note",
	Long:  "Display the full content and metadata of a note, paging it when it does not fit the terminal.",
	Example: `  notectl show "Groceries"
  notectl show "Groceries" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showRun(cmd.OutOrStdout(), args[0], showContentOnly)
	},
}

func showRun(w io.Writer, title string, contentOnly bool) error {
	n, err := findNote(title)
	if err != nil {
		return err
	}

	if contentOnly {
		fmt.Fprintln(w, n.Content)
		return nil
	}
	if jsonOutput {
		return ui.FormatJSON(w, n)
	}

	var buf bytes.Buffer
	ui.FormatNoteFull(&buf, n, appConfig.MaxWidth)
	return ui.PageOutput(w, n.Label(), buf.String(), appConfig.MaxWidth, ui.ResolveTheme(appConfig.Theme))
}

func init() {
	showCmd.Flags().BoolVar(&showContentOnly, "content-only", false, "print just the note content")
	rootCmd.AddCommand(showCmd)
}
