package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strings"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/spf13/cobra"
)

// sampleNote is a note blueprint used to populate an empty database.
type sampleNote struct {
	title   string
	tags    []string
	content func(rng *rand.Rand) string
}

// profile is a persona whose notes look like a particular kind of user.
type profile struct {
	description string
	// archiveChance is the probability that a generated note is archived.
	archiveChance float64
	notes         []sampleNote
}

var profiles = map[string]profile{
	"developer": {
		description:   "Engineer keeping work notes, snippets and meeting minutes",
		archiveChance: 0.2,
		notes: []sampleNote{
			{"Standup", []string{"work", "daily"}, standupNote},
			{"Deploy checklist", []string{"work", "ops"}, checklistNote},
			{"Incident review", []string{"work", "ops"}, incidentNote},
			{"Reading list", []string{"learning"}, readingNote},
			{"Design sync", []string{"work", "meeting"}, meetingNote},
			{"Scratch", nil, scratchNote},
		},
	},
	"household": {
		description:   "Personal notes: shopping, recipes and plans",
		archiveChance: 0.1,
		notes: []sampleNote{
			{"Groceries", []string{"shopping"}, groceryNote},
			{"Recipe", []string{"cooking"}, recipeNote},
			{"Weekend plans", []string{"personal"}, plansNote},
			{"Reading list", []string{"books"}, readingNote},
			{"Scratch", nil, scratchNote},
		},
	},
}

type seedOptions struct {
	count int
	seed  int64
}

var seedOpts seedOptions
var seedList bool

var seedCmd = &cobra.Command{
	Use:   "seed [profile]",
	Short: "Populate the database with sample notes",
	Long: `Generate sample notes for trying out the TUI. Profiles shape the kind
of notes generated; run with --list to see them.`,
	Example: `  notectl seed
  notectl seed household --count 40
  notectl seed --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if seedList {
			names := make([]string, 0, len(profiles))
			for name := range profiles {
				names = append(names, name)
			}
			slices.Sort(names)
			fmt.Fprintln(w, "Available profiles:")
			for _, name := range names {
				fmt.Fprintf(w, "  %-12s %s\n", name, profiles[name].description)
			}
			return nil
		}

		name := "developer"
		if len(args) > 0 {
			name = args[0]
		}
		return seedRun(w, name, seedOpts)
	},
}

func seedRun(w io.Writer, profileName string, opts seedOptions) error {
	p, ok := profiles[profileName]
	if !ok {
		return fmt.Errorf("%w: unknown profile %q (run 'notectl seed --list')", storage.ErrValidation, profileName)
	}
	if opts.count < 1 {
		return fmt.Errorf("%w: --count must be positive", storage.ErrValidation)
	}

	rng := rand.New(rand.NewSource(opts.seed))
	created, archived := 0, 0

	for i := 0; i < opts.count; i++ {
		blueprint := p.notes[rng.Intn(len(p.notes))]

		n, err := createUnique(blueprint.title)
		if err != nil {
			return err
		}
		if err := store.UpdateContent(n.ID, strings.TrimSpace(blueprint.content(rng))); err != nil {
			return err
		}
		if len(blueprint.tags) > 0 {
			if err := store.UpdateTags(n.ID, blueprint.tags); err != nil {
				return err
			}
		}
		if rng.Float64() < p.archiveChance {
			if err := store.SetArchived(n.ID, true); err != nil {
				return err
			}
			archived++
		}
		created++
	}
	logger.Info("seeded notes", "profile", profileName, "created", created, "archived", archived)

	if jsonOutput {
		fmt.Fprintf(w, `{"profile":"%s","notes_created":%d,"notes_archived":%d}`+"\n",
			profileName, created, archived)
		return nil
	}
	fmt.Fprintf(w, "Seeded with profile %q:\n", profileName)
	fmt.Fprintf(w, "  Notes created:  %d\n", created)
	fmt.Fprintf(w, "  Notes archived: %d\n", archived)
	return nil
}

// createUnique creates a note, numbering the title until it is free.
func createUnique(title string) (note.Note, error) {
	candidate := title
	for i := 2; ; i++ {
		n, err := store.Create(candidate)
		if !errors.Is(err, storage.ErrConflict) {
			return n, err
		}
		candidate = fmt.Sprintf("%s %d", title, i)
	}
}

func init() {
	seedCmd.Flags().BoolVar(&seedList, "list", false, "list available profiles")
	seedCmd.Flags().IntVar(&seedOpts.count, "count", 20, "number of notes to create")
	seedCmd.Flags().Int64Var(&seedOpts.seed, "seed", 1, "random seed")
	rootCmd.AddCommand(seedCmd)
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}

func standupNote(rng *rand.Rand) string {
	return fmt.Sprintf(`Yesterday: %s
Today: %s
Blockers: %s`,
		pick(rng, "finished the retry logic for the webhook sender", "paired on the flaky integration test", "reviewed the schema migration"),
		pick(rng, "start on pagination for the search API", "write the runbook for the new queue", "clean up the feature flags"),
		pick(rng, "none", "waiting on staging credentials", "need a decision on the cache TTL"),
	)
}

func checklistNote(rng *rand.Rand) string {
	steps := []string{
		"- [ ] tag the release",
		"- [ ] run migrations on staging",
		"- [ ] check dashboards for error rate",
		"- [ ] announce in the team channel",
		"- [ ] roll out to 10% of traffic",
	}
	rng.Shuffle(len(steps)-1, func(i, j int) { steps[i+1], steps[j+1] = steps[j+1], steps[i+1] })
	return strings.Join(steps, "\n")
}

func incidentNote(rng *rand.Rand) string {
	return fmt.Sprintf(`Impact: %s
Root cause: %s

Follow-ups:
- add an alert on queue depth
- document the manual failover`,
		pick(rng, "checkout latency doubled for 20 minutes", "nightly export skipped one run", "login errors for a subset of users"),
		pick(rng, "connection pool exhausted after a config change", "expired certificate on an internal endpoint", "a retry storm against the auth service"),
	)
}

func readingNote(rng *rand.Rand) string {
	books := []string{
		"- The Pragmatic Programmer",
		"- Designing Data-Intensive Applications",
		"- A Philosophy of Software Design",
		"- The Left Hand of Darkness",
		"- Piranesi",
	}
	rng.Shuffle(len(books), func(i, j int) { books[i], books[j] = books[j], books[i] })
	return strings.Join(books[:2+rng.Intn(3)], "\n")
}

func meetingNote(rng *rand.Rand) string {
	return fmt.Sprintf(`Attendees: %s

Decisions:
- %s

Action items:
- %s`,
		pick(rng, "Sam, Priya, Lee", "the platform team", "Jo and Alex"),
		pick(rng, "keep the v1 endpoint until Q3", "move config to a single TOML file", "drop support for the legacy importer"),
		pick(rng, "write up the proposal", "estimate the migration", "schedule a follow-up"),
	)
}

func scratchNote(rng *rand.Rand) string {
	return pick(rng,
		"remember to rotate the API keys",
		"idea: keyboard shortcut for archiving",
		"call back about the invoice",
		"",
	)
}

func groceryNote(rng *rand.Rand) string {
	items := []string{"- eggs", "- oat milk", "- spinach", "- coffee", "- lemons", "- rice", "- tomatoes"}
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return strings.Join(items[:3+rng.Intn(4)], "\n")
}

func recipeNote(rng *rand.Rand) string {
	return fmt.Sprintf(`%s

1. %s
2. Season to taste and serve.`,
		pick(rng, "Lentil soup", "Lemon pasta", "Fried rice"),
		pick(rng, "Simmer everything for 30 minutes.", "Cook the pasta and toss with the sauce.", "Fry the rice on high heat with the vegetables."),
	)
}

func plansNote(rng *rand.Rand) string {
	return fmt.Sprintf("Saturday: %s\nSunday: %s",
		pick(rng, "farmers market", "hike", "fix the bike"),
		pick(rng, "brunch with friends", "read", "meal prep"),
	)
}
