package mcptools_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"slices"
	"testing"

	"github.com/chris-regnier/notectl/internal/mcptools"
	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/chris-regnier/notectl/internal/storage/sqlite"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func newStore(t *testing.T) storage.Storage {
	t.Helper()
	store, err := sqlite.Open(sqlite.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "notes.db"), nil)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seed(t *testing.T, store storage.Storage, title string, tags ...string) int64 {
	t.Helper()
	n, err := store.Create(title)
	if err != nil {
		t.Fatalf("failed to create note: %v", err)
	}
	if len(tags) > 0 {
		if err := store.UpdateTags(n.ID, tags); err != nil {
			t.Fatalf("failed to tag note: %v", err)
		}
	}
	return n.ID
}

func connect(t *testing.T, store storage.Storage) *mcp.ClientSession {
	t.Helper()
	_, clientTransport := mcptools.NewNotesMCPServer(store)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

// call invokes a tool and decodes its structured output into out.
func call(t *testing.T, session *mcp.ClientSession, name string, args, out any) *mcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool %s failed: %v", name, err)
	}
	if result.IsError || out == nil {
		return result
	}
	if result.StructuredContent == nil {
		t.Fatalf("%s: expected structured content", name)
	}
	data, _ := json.Marshal(result.StructuredContent)
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("failed to unmarshal structured content: %v", err)
	}
	return result
}

func titles(notes []mcptools.NoteResult) []string {
	var out []string
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}

func TestMCPServer_SearchNotes(t *testing.T) {
	store := newStore(t)
	seed(t, store, "Groceries", "home")
	seed(t, store, "grocery budget", "money")
	archived := seed(t, store, "old groceries", "home")
	seed(t, store, "Standup", "work")
	if err := store.SetArchived(archived, true); err != nil {
		t.Fatal(err)
	}
	session := connect(t, store)

	t.Run("query matches titles case-insensitively", func(t *testing.T) {
		var out mcptools.SearchOutput
		call(t, session, "search_notes", mcptools.SearchInput{Query: "GROC"}, &out)
		if got := titles(out.Notes); !slices.Equal(got, []string{"Groceries", "grocery budget"}) {
			t.Errorf("titles = %v", got)
		}
	})

	t.Run("include archived", func(t *testing.T) {
		var out mcptools.SearchOutput
		call(t, session, "search_notes", mcptools.SearchInput{Query: "groc", IncludeArchived: true}, &out)
		if len(out.Notes) != 3 {
			t.Errorf("titles = %v, want 3 notes", titles(out.Notes))
		}
	})

	t.Run("tag filter", func(t *testing.T) {
		var out mcptools.SearchOutput
		call(t, session, "search_notes", mcptools.SearchInput{Tag: "work"}, &out)
		if got := titles(out.Notes); !slices.Equal(got, []string{"Standup"}) {
			t.Errorf("titles = %v", got)
		}
	})

	t.Run("limit", func(t *testing.T) {
		var out mcptools.SearchOutput
		call(t, session, "search_notes", mcptools.SearchInput{Limit: 1}, &out)
		if len(out.Notes) != 1 {
			t.Errorf("got %d notes, want 1", len(out.Notes))
		}
	})

	t.Run("unknown sort is an error", func(t *testing.T) {
		result := call(t, session, "search_notes", mcptools.SearchInput{SortBy: "date"}, nil)
		if !result.IsError {
			t.Error("expected tool error")
		}
	})
}

func TestMCPServer_ListTags(t *testing.T) {
	store := newStore(t)
	seed(t, store, "a", "home", "todo")
	seed(t, store, "b", "home")
	old := seed(t, store, "c", "archive-only")
	if err := store.SetArchived(old, true); err != nil {
		t.Fatal(err)
	}
	session := connect(t, store)

	var out mcptools.ListTagsOutput
	call(t, session, "list_tags", mcptools.ListTagsInput{}, &out)
	want := []mcptools.TagResult{{Tag: "home", Count: 2}, {Tag: "todo", Count: 1}}
	if !slices.Equal(out.Tags, want) {
		t.Errorf("tags = %+v, want %+v", out.Tags, want)
	}

	call(t, session, "list_tags", mcptools.ListTagsInput{IncludeArchived: true}, &out)
	if len(out.Tags) != 3 {
		t.Errorf("tags = %+v, want 3", out.Tags)
	}
}

func TestMCPServer_CreateNote(t *testing.T) {
	store := newStore(t)
	session := connect(t, store)

	var out mcptools.CreateNoteOutput
	call(t, session, "create_note", mcptools.CreateNoteInput{
		Title:   "  Standup  ",
		Content: "yesterday: reviews",
		Tags:    []string{"work", " ", "daily "},
	}, &out)

	if out.Note.ID == 0 || out.Note.Title != "Standup" {
		t.Errorf("note = %+v", out.Note)
	}
	n, err := store.Get(out.Note.ID)
	if err != nil {
		t.Fatalf("note not found in storage: %v", err)
	}
	if n.Content != "yesterday: reviews" {
		t.Errorf("stored content = %q", n.Content)
	}
	if !slices.Equal(n.Tags, []string{"work", "daily"}) {
		t.Errorf("stored tags = %v", n.Tags)
	}

	if result := call(t, session, "create_note", mcptools.CreateNoteInput{Title: "Standup"}, nil); !result.IsError {
		t.Error("expected conflict error for duplicate title")
	}
	if result := call(t, session, "create_note", mcptools.CreateNoteInput{Title: "   "}, nil); !result.IsError {
		t.Error("expected validation error for blank title")
	}
}
