package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/view"
)

func TestFormatNoteList(t *testing.T) {
	var buf bytes.Buffer
	FormatNoteList(&buf, nil)
	if buf.String() != "No notes found.\n" {
		t.Errorf("empty list = %q", buf.String())
	}

	buf.Reset()
	FormatNoteList(&buf, []note.Note{
		{ID: 1, Title: "groceries", Tags: []string{"home", "todo"}, Content: "milk\neggs"},
		{ID: 2, Title: "work"},
	})
	out := buf.String()
	if countLines(strings.TrimSuffix(out, "\n")) != 2 {
		t.Errorf("expected two lines, got %q", out)
	}
	if !strings.Contains(out, "groceries [home,todo]") || !strings.Contains(out, "milk eggs") {
		t.Errorf("output = %q", out)
	}
}

func TestFormatNoteFull(t *testing.T) {
	var buf bytes.Buffer
	n := note.Note{
		Title:     "groceries",
		Tags:      []string{"home"},
		Archived:  true,
		Content:   "milk and eggs and bread",
		CreatedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.Local),
		UpdatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local),
	}
	FormatNoteFull(&buf, n, 10)
	out := buf.String()

	for _, want := range []string{"Note: groceries\n", "Tags: home\n", "Archived: yes\n", "Created: 2026-01-15 09:00\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
	if !strings.Contains(out, "milk and\neggs and\nbread\n") {
		t.Errorf("content not wrapped: %q", out)
	}
}

func TestFormatTagList(t *testing.T) {
	var buf bytes.Buffer
	FormatTagList(&buf, nil)
	if buf.String() != "No tags found.\n" {
		t.Errorf("empty tags = %q", buf.String())
	}

	buf.Reset()
	FormatTagList(&buf, []view.TagCount{{Tag: "home", Count: 2}})
	if !strings.HasPrefix(buf.String(), "home") || !strings.HasSuffix(buf.String(), "  2\n") {
		t.Errorf("tags = %q", buf.String())
	}
}

func TestToSummariesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(&buf, ToSummaries([]note.Note{{ID: 3, Title: "a"}})); err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0]["title"] != "a" || got[0]["id"] != float64(3) {
		t.Errorf("json = %s", buf.String())
	}
	if tags, ok := got[0]["tags"].([]any); !ok || len(tags) != 0 {
		t.Errorf("tags should encode as an empty array: %s", buf.String())
	}
}
