package storage

import (
	"errors"

	"github.com/chris-regnier/notectl/internal/note"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound   = errors.New("note not found")
	ErrConflict   = errors.New("note title already exists")
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// Storage defines the interface for note persistence.
//
// Every call is a synchronous request/response. Implementations wrap failures
// in one of the sentinel errors above; callers show err.Error() verbatim.
type Storage interface {
	List() ([]note.Note, error)
	Get(id int64) (note.Note, error)
	// Create inserts a note with empty content and no tags. It fails with
	// ErrConflict if the title is already taken.
	Create(title string) (note.Note, error)
	UpdateContent(id int64, content string) error
	UpdateTags(id int64, tags []string) error
	// Rename fails with ErrConflict if the title is already taken.
	Rename(id int64, title string) error
	SetArchived(id int64, archived bool) error
	Delete(id int64) error
	Close() error
}

// FindByTitle returns the note with exactly the given title.
func FindByTitle(s Storage, title string) (note.Note, error) {
	notes, err := s.List()
	if err != nil {
		return note.Note{}, err
	}
	for _, n := range notes {
		if n.Title == title {
			return n, nil
		}
	}
	return note.Note{}, ErrNotFound
}
