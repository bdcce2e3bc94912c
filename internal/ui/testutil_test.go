package ui

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/notectl/internal/config"
	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/storage"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*[mK]`)
	return ansiRegex.ReplaceAllString(s, "")
}

// countLines returns the number of lines in the given string.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// fakeStore is an in-memory storage.Storage for driving the model.
type fakeStore struct {
	notes   []note.Note
	nextID  int64
	listErr error
}

var _ storage.Storage = (*fakeStore)(nil)

func newFakeStore(notes ...note.Note) *fakeStore {
	s := &fakeStore{nextID: 1}
	for _, n := range notes {
		if n.ID == 0 {
			n.ID = s.nextID
		}
		if n.Tags == nil {
			n.Tags = []string{}
		}
		s.nextID = max(s.nextID, n.ID+1)
		s.notes = append(s.notes, n)
	}
	return s
}

func (s *fakeStore) index(id int64) int {
	return slices.IndexFunc(s.notes, func(n note.Note) bool { return n.ID == id })
}

func (s *fakeStore) titleTaken(title string, except int64) bool {
	return slices.ContainsFunc(s.notes, func(n note.Note) bool { return n.Title == title && n.ID != except })
}

func (s *fakeStore) List() ([]note.Note, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]note.Note, len(s.notes))
	for i, n := range s.notes {
		n.Tags = slices.Clone(n.Tags)
		out[i] = n
	}
	return out, nil
}

func (s *fakeStore) Get(id int64) (note.Note, error) {
	i := s.index(id)
	if i < 0 {
		return note.Note{}, storage.ErrNotFound
	}
	return s.notes[i], nil
}

func (s *fakeStore) Create(title string) (note.Note, error) {
	if s.titleTaken(title, 0) {
		return note.Note{}, fmt.Errorf("%w: %q", storage.ErrConflict, title)
	}
	n := note.Note{ID: s.nextID, Title: title, Tags: []string{}}
	s.nextID++
	s.notes = append(s.notes, n)
	return n, nil
}

func (s *fakeStore) UpdateContent(id int64, content string) error {
	i := s.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.notes[i].Content = content
	return nil
}

func (s *fakeStore) UpdateTags(id int64, tags []string) error {
	i := s.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.notes[i].Tags = slices.Clone(tags)
	return nil
}

func (s *fakeStore) Rename(id int64, title string) error {
	i := s.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	if s.titleTaken(title, id) {
		return fmt.Errorf("%w: %q", storage.ErrConflict, title)
	}
	s.notes[i].Title = title
	return nil
}

func (s *fakeStore) SetArchived(id int64, archived bool) error {
	i := s.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.notes[i].Archived = archived
	return nil
}

func (s *fakeStore) Delete(id int64) error {
	i := s.index(id)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	return nil
}

func (s *fakeStore) Close() error { return nil }

var errBroken = errors.New("database is locked")

// newTestModel builds a sized model over a fake store. Temp files for
// editor sessions go to a per-test directory.
func newTestModel(t *testing.T, notes ...note.Note) (*Model, *fakeStore) {
	t.Helper()
	t.Setenv("TMPDIR", t.TempDir())
	store := newFakeStore(notes...)
	cfg := TUIConfig{
		Editor:   "true",
		Location: "file:/tmp/notectl.db",
		Theme:    ResolveTheme(config.ThemeConfig{}),
	}
	m := New(store, cfg, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, store
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+j":
		return tea.KeyMsg{Type: tea.KeyCtrlJ}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends each key in turn and returns the last command.
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

// typeText sends s one rune at a time.
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func displayedTitles(m *Model) []string {
	var titles []string
	for _, n := range m.state.Displayed() {
		titles = append(titles, n.Title)
	}
	return titles
}

func selectedTitle(t *testing.T, m *Model) string {
	t.Helper()
	n, ok := m.state.Selected()
	if !ok {
		t.Fatal("expected a selected note")
	}
	return n.Title
}
