package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/chris-regnier/notectl/internal/config"
	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/chris-regnier/notectl/internal/storage/sqlite"
)

func setupTestStore(t *testing.T) storage.Storage {
	t.Helper()
	s, err := sqlite.Open(sqlite.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "notes.db"), nil)
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func setupTestEnv(t *testing.T) {
	t.Helper()
	store = setupTestStore(t)
	appConfig = &config.Config{DataDir: t.TempDir(), Storage: sqlite.DriverSQLite}
	logger = slog.New(slog.DiscardHandler)
	jsonOutput = false
	t.Setenv("TMPDIR", t.TempDir())
	t.Cleanup(func() { jsonOutput = false })
}

// createNote stores a note with the given content and tags.
func createNote(t *testing.T, title, content string, tags ...string) note.Note {
	t.Helper()
	n, err := store.Create(title)
	if err != nil {
		t.Fatalf("Create(%q): %v", title, err)
	}
	if content != "" {
		if err := store.UpdateContent(n.ID, content); err != nil {
			t.Fatalf("UpdateContent: %v", err)
		}
	}
	if len(tags) > 0 {
		if err := store.UpdateTags(n.ID, tags); err != nil {
			t.Fatalf("UpdateTags: %v", err)
		}
	}
	n, err = store.Get(n.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	return n
}

func archiveNote(t *testing.T, n note.Note) {
	t.Helper()
	if err := store.SetArchived(n.ID, true); err != nil {
		t.Fatalf("SetArchived: %v", err)
	}
}

// writeEditorScript creates an executable editor that replaces the file it is
// given with content.
func writeEditorScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.sh")
	script := "#!/bin/sh\nprintf '%s' '" + content + "' > \"$1\"\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing editor script: %v", err)
	}
	return path
}
