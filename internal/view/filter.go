package view

import (
	"slices"
	"strings"

	"github.com/chris-regnier/notectl/internal/note"
)

// Filter selects the subset of notes to display.
type Filter interface {
	Match(n note.Note) bool
	String() string
}

// All matches every note.
type All struct{}

// Untagged matches notes without tags.
type Untagged struct{}

// Tag matches notes carrying Name.
type Tag struct{ Name string }

// Archived matches archived notes.
type Archived struct{}

// Active matches notes that are not archived.
type Active struct{}

func (All) Match(note.Note) bool        { return true }
func (Untagged) Match(n note.Note) bool { return len(n.Tags) == 0 }
func (t Tag) Match(n note.Note) bool    { return n.HasTag(t.Name) }
func (Archived) Match(n note.Note) bool { return n.Archived }
func (Active) Match(n note.Note) bool   { return !n.Archived }

func (All) String() string      { return "All" }
func (Untagged) String() string { return "Untagged" }
func (t Tag) String() string    { return "#" + t.Name }
func (Archived) String() string { return "Archived" }
func (Active) String() string   { return "Active" }

// SortOrder is the ordering applied to displayed notes.
type SortOrder int

const (
	SortByTitle SortOrder = iota
	SortByTags
)

func (o SortOrder) String() string {
	if o == SortByTags {
		return "Tags"
	}
	return "Title"
}

func (o SortOrder) compare(a, b note.Note) int {
	if o == SortByTags {
		if c := compareTags(a.Tags, b.Tags); c != 0 {
			return c
		}
	}
	return strings.Compare(a.Title, b.Title)
}

// compareTags orders tag sequences lexicographically, with untagged notes
// after tagged ones.
func compareTags(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}
	return slices.Compare(a, b)
}
