package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/chris-regnier/notectl/internal/ui"
)

func listLines(t *testing.T, opts listOptions) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := listRun(&buf, opts); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	return strings.Split(strings.TrimSpace(buf.String()), "\n")
}

func seedListNotes(t *testing.T) {
	t.Helper()
	createNote(t, "Zebra", "stripes", "animals")
	createNote(t, "apple", "fruit")
	createNote(t, "Meeting notes", "agenda", "work")
	old := createNote(t, "Old plan", "", "work")
	archiveNote(t, old)
}

func TestListDefaultShowsActiveSortedByTitle(t *testing.T) {
	setupTestEnv(t)
	seedListNotes(t)

	lines := listLines(t, listOptions{})
	if len(lines) != 3 {
		t.Fatalf("expected 3 notes, got %d: %q", len(lines), lines)
	}
	for i, prefix := range []string{"Meeting notes [work]", "Zebra [animals]", "apple"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestListFilters(t *testing.T) {
	setupTestEnv(t)
	seedListNotes(t)

	tests := []struct {
		name string
		opts listOptions
		want int
	}{
		{"tag spans archived", listOptions{tag: "work"}, 2},
		{"untagged", listOptions{untagged: true}, 1},
		{"archived", listOptions{archived: true}, 1},
		{"all", listOptions{all: true}, 4},
		{"search is case-insensitive", listOptions{search: "MEET"}, 1},
		{"no match", listOptions{search: "nothing"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := tt.opts
			opts.idOnly = true
			if err := listRun(&buf, opts); err != nil {
				t.Fatalf("listRun: %v", err)
			}
			got := len(strings.Fields(buf.String()))
			if got != tt.want {
				t.Errorf("got %d notes, want %d", got, tt.want)
			}
		})
	}
}

func TestListSortByTags(t *testing.T) {
	setupTestEnv(t)
	seedListNotes(t)

	lines := listLines(t, listOptions{sort: "tags"})
	if !strings.HasPrefix(lines[len(lines)-1], "apple") {
		t.Errorf("untagged note should sort last, got %q", lines)
	}
}

func TestListEmpty(t *testing.T) {
	setupTestEnv(t)

	lines := listLines(t, listOptions{})
	if lines[0] != "No notes found." {
		t.Errorf("got %q", lines[0])
	}
}

func TestListJSON(t *testing.T) {
	setupTestEnv(t)
	seedListNotes(t)
	jsonOutput = true

	var buf bytes.Buffer
	if err := listRun(&buf, listOptions{}); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	var got []ui.NoteSummary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("JSON unmarshal: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(got))
	}
	if got[2].Title != "apple" || got[2].Tags == nil {
		t.Errorf("untagged summary = %+v", got[2])
	}
}

func TestListInvalidOptions(t *testing.T) {
	setupTestEnv(t)

	for _, opts := range []listOptions{
		{tag: "work", archived: true},
		{untagged: true, all: true},
		{sort: "date"},
	} {
		var buf bytes.Buffer
		err := listRun(&buf, opts)
		if !errors.Is(err, storage.ErrValidation) {
			t.Errorf("listRun(%+v) error = %v, want ErrValidation", opts, err)
		}
	}
}
