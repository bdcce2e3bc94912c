package markdown

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/storage"
)

// Store implements storage.Storage using Markdown files with YAML front-matter,
// one file per note named <id>.md.
type Store struct {
	baseDir string // e.g. ~/.notectl/notes/
	logger  *slog.Logger
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Store, error) {
	notesDir := filepath.Join(dataDir, "notes")
	if err := os.MkdirAll(notesDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating notes directory: %v", storage.ErrStorage, err)
	}
	return &Store{baseDir: notesDir, logger: slog.New(slog.DiscardHandler)}, nil
}

// WithLogger sets the logger used for mutation events.
func (s *Store) WithLogger(logger *slog.Logger) *Store {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) notePath(id int64) string {
	return filepath.Join(s.baseDir, strconv.FormatInt(id, 10)+".md")
}

func (s *Store) marshal(n note.Note) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "id: %d\n", n.ID)
	fmt.Fprintf(&b, "title: %q\n", n.Title)
	if len(n.Tags) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range n.Tags {
			fmt.Fprintf(&b, "  - %q\n", tag)
		}
	}
	fmt.Fprintf(&b, "archived: %t\n", n.Archived)
	fmt.Fprintf(&b, "created_at: %s\n", n.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "updated_at: %s\n", n.UpdatedAt.UTC().Format(time.RFC3339))
	b.WriteString("---\n")
	b.WriteString(n.Content)
	return []byte(b.String())
}

type frontMatter struct {
	ID        int64    `yaml:"id"`
	Title     string   `yaml:"title"`
	Tags      []string `yaml:"tags"`
	Archived  bool     `yaml:"archived"`
	CreatedAt string   `yaml:"created_at"`
	UpdatedAt string   `yaml:"updated_at"`
}

func (s *Store) unmarshal(data []byte) (note.Note, error) {
	var fm frontMatter
	content, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}

	createdAt, err := time.Parse(time.RFC3339, fm.CreatedAt)
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, fm.UpdatedAt)
	if err != nil {
		return note.Note{}, fmt.Errorf("%w: parsing updated_at: %v", storage.ErrStorage, err)
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	return note.Note{
		ID:        fm.ID,
		Title:     fm.Title,
		Content:   string(content),
		Tags:      tags,
		Archived:  fm.Archived,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}

// List returns every note ordered by ID.
func (s *Store) List() ([]note.Note, error) {
	files, err := filepath.Glob(filepath.Join(s.baseDir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("%w: listing notes: %v", storage.ErrStorage, err)
	}

	notes := []note.Note{}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
		}
		n, err := s.unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		notes = append(notes, n)
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}

// Get retrieves a note by ID.
func (s *Store) Get(id int64) (note.Note, error) {
	data, err := os.ReadFile(s.notePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return note.Note{}, storage.ErrNotFound
		}
		return note.Note{}, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
	}
	return s.unmarshal(data)
}

// lastIDPath holds the highest ID ever assigned, so IDs of deleted notes
// are not handed out again.
func (s *Store) lastIDPath() string {
	return filepath.Join(s.baseDir, ".last_id")
}

func (s *Store) lastID() (int64, error) {
	data, err := os.ReadFile(s.lastIDPath())
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: reading last id: %v", storage.ErrStorage, err)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parsing last id: %v", storage.ErrStorage, err)
	}
	return id, nil
}

// Create persists a new note with the next unused ID.
func (s *Store) Create(title string) (note.Note, error) {
	if err := note.ValidateTitle(title); err != nil {
		return note.Note{}, fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	notes, err := s.List()
	if err != nil {
		return note.Note{}, err
	}
	var maxID int64
	for _, n := range notes {
		if n.Title == title {
			return note.Note{}, fmt.Errorf("%w: %q", storage.ErrConflict, title)
		}
		maxID = max(maxID, n.ID)
	}

	lastID, err := s.lastID()
	if err != nil {
		return note.Note{}, err
	}
	id := max(lastID, maxID) + 1
	if err := s.atomicWrite(s.lastIDPath(), []byte(strconv.FormatInt(id, 10)+"\n")); err != nil {
		return note.Note{}, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	n := note.Note{
		ID:        id,
		Title:     title,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.atomicWrite(s.notePath(n.ID), s.marshal(n)); err != nil {
		return note.Note{}, err
	}
	s.logger.Info("note created", "id", n.ID, "title", title)
	return n, nil
}

// modify loads a note, applies fn, bumps updated_at and writes it back.
func (s *Store) modify(id int64, fn func(n *note.Note) error) error {
	n, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := fn(&n); err != nil {
		return err
	}
	n.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	return s.atomicWrite(s.notePath(id), s.marshal(n))
}

// UpdateContent replaces a note's content.
func (s *Store) UpdateContent(id int64, content string) error {
	return s.modify(id, func(n *note.Note) error {
		n.Content = content
		return nil
	})
}

// UpdateTags replaces a note's tags.
func (s *Store) UpdateTags(id int64, tags []string) error {
	return s.modify(id, func(n *note.Note) error {
		n.Tags = append([]string{}, tags...)
		return nil
	})
}

// Rename changes a note's title, rejecting titles used by another note.
func (s *Store) Rename(id int64, title string) error {
	if err := note.ValidateTitle(title); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	notes, err := s.List()
	if err != nil {
		return err
	}
	for _, n := range notes {
		if n.Title == title && n.ID != id {
			return fmt.Errorf("%w: %q", storage.ErrConflict, title)
		}
	}
	return s.modify(id, func(n *note.Note) error {
		n.Title = title
		return nil
	})
}

// SetArchived persists the archived flag.
func (s *Store) SetArchived(id int64, archived bool) error {
	return s.modify(id, func(n *note.Note) error {
		n.Archived = archived
		return nil
	})
}

// Delete removes a note file permanently.
func (s *Store) Delete(id int64) error {
	if err := os.Remove(s.notePath(id)); err != nil {
		if os.IsNotExist(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("%w: removing file: %v", storage.ErrStorage, err)
	}
	s.logger.Info("note deleted", "id", id)
	return nil
}
