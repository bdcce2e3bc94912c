package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/chris-regnier/notectl/internal/storage"
)

func TestSeedCreatesNotes(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := seedRun(&buf, "developer", seedOptions{count: 15, seed: 7}); err != nil {
		t.Fatalf("seedRun: %v", err)
	}
	notes, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notes) != 15 {
		t.Fatalf("expected 15 notes, got %d", len(notes))
	}

	titles := map[string]bool{}
	for _, n := range notes {
		if titles[n.Title] {
			t.Errorf("duplicate title %q", n.Title)
		}
		titles[n.Title] = true
	}
	if !strings.Contains(buf.String(), "Notes created:  15") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	titles := func() string {
		setupTestEnv(t)
		var buf bytes.Buffer
		if err := seedRun(&buf, "household", seedOptions{count: 8, seed: 42}); err != nil {
			t.Fatalf("seedRun: %v", err)
		}
		notes, err := store.List()
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		var out strings.Builder
		for _, n := range notes {
			fmt.Fprintf(&out, "%d %s %v %q\n", n.ID, n.Label(), n.Archived, n.Content)
		}
		return out.String()
	}
	if a, b := titles(), titles(); a != b {
		t.Errorf("same seed produced different notes:\n%s\n---\n%s", a, b)
	}
}

func TestSeedInvalid(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := seedRun(&buf, "astronaut", seedOptions{count: 5}); !errors.Is(err, storage.ErrValidation) {
		t.Errorf("unknown profile: expected ErrValidation, got %v", err)
	}
	if err := seedRun(&buf, "developer", seedOptions{count: 0}); !errors.Is(err, storage.ErrValidation) {
		t.Errorf("zero count: expected ErrValidation, got %v", err)
	}
}
