package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/view"
	"github.com/muesli/reflow/wordwrap"
)

const timeLayout = "2006-01-02 15:04"

// FormatNoteCreated formats a creation confirmation message.
func FormatNoteCreated(w io.Writer, n note.Note) {
	fmt.Fprintf(w, "Note '%s' created (id %d).\n", n.Title, n.ID)
}

// FormatNoteUpdated formats a save confirmation message.
func FormatNoteUpdated(w io.Writer, n note.Note) {
	fmt.Fprintf(w, "Note '%s' saved.\n", n.Title)
}

// FormatNoteDeleted formats a deletion confirmation message.
func FormatNoteDeleted(w io.Writer, title string) {
	fmt.Fprintf(w, "Note '%s' deleted.\n", title)
}

// FormatNoChanges formats a "no changes" message.
func FormatNoChanges(w io.Writer, title string) {
	fmt.Fprintf(w, "No changes detected for note '%s'.\n", title)
}

// FormatNoteFull formats a note with a metadata header, wrapping content to
// width columns.
func FormatNoteFull(w io.Writer, n note.Note, width int) {
	fmt.Fprintf(w, "Note: %s\n", n.Title)
	if len(n.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", note.JoinTags(n.Tags))
	}
	if n.Archived {
		fmt.Fprintln(w, "Archived: yes")
	}
	fmt.Fprintf(w, "Created: %s\n", n.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(w, "Modified: %s\n", n.UpdatedAt.Local().Format(timeLayout))
	fmt.Fprintln(w)

	content := n.Content
	if width > 0 {
		content = wordwrap.String(content, width)
	}
	fmt.Fprintln(w, strings.TrimRight(content, "\n"))
}

// FormatNoteList formats notes one per line.
func FormatNoteList(w io.Writer, notes []note.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}
	for _, n := range notes {
		fmt.Fprintf(w, "%-40s  %s  %s\n",
			n.Label(),
			n.UpdatedAt.Local().Format(timeLayout),
			n.Preview(50),
		)
	}
}

// FormatTagList formats tag counts.
func FormatTagList(w io.Writer, counts []view.TagCount) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "No tags found.")
		return
	}
	for _, c := range counts {
		fmt.Fprintf(w, "%-20s  %d\n", c.Tag, c.Count)
	}
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NoteSummary is a JSON representation for list output.
type NoteSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Archived  bool      `json:"archived"`
	Preview   string    `json:"preview"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSummaries converts notes to summary format for JSON list output.
func ToSummaries(notes []note.Note) []NoteSummary {
	summaries := make([]NoteSummary, len(notes))
	for i, n := range notes {
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		summaries[i] = NoteSummary{
			ID:        n.ID,
			Title:     n.Title,
			Tags:      tags,
			Archived:  n.Archived,
			Preview:   n.Preview(60),
			UpdatedAt: n.UpdatedAt,
		}
	}
	return summaries
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Deleted bool   `json:"deleted"`
}
