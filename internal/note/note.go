package note

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

const maxTitleLength = 200

// Note represents a single titled, tagged note.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateTitle checks whether a title is non-empty and reasonably short.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("note title must not be empty")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("note title must be at most %d characters", maxTitleLength)
	}
	return nil
}

// ParseTags splits comma-separated input into trimmed, non-empty tags.
// "alpha, beta ,, gamma" yields [alpha beta gamma].
func ParseTags(input string) []string {
	tags := []string{}
	for _, part := range strings.Split(input, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags renders tags the way the tag editor pre-fills them.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// HasTag reports whether the note carries the given tag.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Label returns the list label: the title, followed by its tags if any.
func (n *Note) Label() string {
	if len(n.Tags) == 0 {
		return n.Title
	}
	return fmt.Sprintf("%s [%s]", n.Title, strings.Join(n.Tags, ","))
}

// Preview returns a single-line preview of the note content, at most maxLen
// cells wide. Truncation never splits a character.
func (n *Note) Preview(maxLen int) string {
	return ansi.Truncate(strings.ReplaceAll(n.Content, "\n", " "), maxLen, "...")
}
