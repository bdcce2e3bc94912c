package cmd

import (
	"fmt"
	"io"

	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/chris-regnier/notectl/internal/ui"
	"github.com/chris-regnier/notectl/internal/view"
	"github.com/spf13/cobra"
)

type listOptions struct {
	tag      string
	untagged bool
	archived bool
	all      bool
	search   string
	sort     string
	idOnly   bool
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List notes with a short preview. By default only active (unarchived)
notes are shown, sorted by title.`,
	Example: `  notectl list
  notectl list --tag work
  notectl list --search meeting --sort tags
  notectl list --archived --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(cmd.OutOrStdout(), listOpts)
	},
}

// filter maps the mutually exclusive filter flags onto a view filter.
func (o listOptions) filter() (view.Filter, error) {
	set := 0
	for _, on := range []bool{o.tag != "", o.untagged, o.archived, o.all} {
		if on {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("%w: --tag, --untagged, --archived and --all are mutually exclusive", storage.ErrValidation)
	}

	switch {
	case o.tag != "":
		return view.Tag{Name: o.tag}, nil
	case o.untagged:
		return view.Untagged{}, nil
	case o.archived:
		return view.Archived{}, nil
	case o.all:
		return view.All{}, nil
	default:
		return view.Active{}, nil
	}
}

func parseSortOrder(s string) (view.SortOrder, error) {
	switch s {
	case "", "title":
		return view.SortByTitle, nil
	case "tags":
		return view.SortByTags, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort order %q (use title or tags)", storage.ErrValidation, s)
	}
}

// deriveNotes loads every note and runs it through the same filter, search and
// sort derivation the TUI uses.
func deriveNotes(opts listOptions) (*view.State, error) {
	filter, err := opts.filter()
	if err != nil {
		return nil, err
	}
	order, err := parseSortOrder(opts.sort)
	if err != nil {
		return nil, err
	}

	notes, err := store.List()
	if err != nil {
		return nil, err
	}

	state := view.New()
	state.ReplaceAll(notes)
	state.SetFilter(filter)
	state.SetQuery(opts.search)
	if state.Order() != order {
		state.ToggleSort()
	}
	return state, nil
}

func listRun(w io.Writer, opts listOptions) error {
	state, err := deriveNotes(opts)
	if err != nil {
		return err
	}
	notes := state.Displayed()

	if opts.idOnly {
		for _, n := range notes {
			fmt.Fprintln(w, n.ID)
		}
		return nil
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToSummaries(notes))
	}
	ui.FormatNoteList(w, notes)
	return nil
}

func init() {
	listCmd.Flags().StringVar(&listOpts.tag, "tag", "", "show only notes with this tag")
	listCmd.Flags().BoolVar(&listOpts.untagged, "untagged", false, "show only notes without tags")
	listCmd.Flags().BoolVar(&listOpts.archived, "archived", false, "show only archived notes")
	listCmd.Flags().BoolVar(&listOpts.all, "all", false, "show archived and active notes")
	listCmd.Flags().StringVar(&listOpts.search, "search", "", "case-insensitive title search")
	listCmd.Flags().StringVar(&listOpts.sort, "sort", "title", "sort order (title|tags)")
	listCmd.Flags().BoolVar(&listOpts.idOnly, "id-only", false, "print just note IDs, one per line")
	rootCmd.AddCommand(listCmd)
}
