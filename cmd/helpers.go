package cmd

import (
	"errors"
	"fmt"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/storage"
)

// findNote looks a note up by its exact title.
func findNote(title string) (note.Note, error) {
	n, err := storage.FindByTitle(store, title)
	if errors.Is(err, storage.ErrNotFound) {
		return note.Note{}, fmt.Errorf("%w: %q", storage.ErrNotFound, title)
	}
	return n, err
}

func validateTitle(title string) error {
	if err := note.ValidateTitle(title); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	return nil
}
