package ui

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/notectl/internal/view"
)

// mode is the current input mode. Exactly one is active; each text-entry
// mode owns its buffer.
type mode interface {
	name() string
}

type normalMode struct{}

type creatingMode struct {
	buf textBuffer
}

type renamingMode struct {
	noteID int64
	buf    textBuffer
}

type editingTagsMode struct {
	noteID int64
	buf    textBuffer
}

// searchingMode edits the view state's query directly.
type searchingMode struct{}

type confirmDeleteMode struct {
	noteID int64
	title  string
}

type tagFilterMode struct {
	options []view.Filter
	cursor  int
}

type helpMode struct{}

func (*normalMode) name() string        { return "normal" }
func (*creatingMode) name() string      { return "creating" }
func (*renamingMode) name() string      { return "renaming" }
func (*editingTagsMode) name() string   { return "editing-tags" }
func (*searchingMode) name() string     { return "searching" }
func (*confirmDeleteMode) name() string { return "confirm-delete" }
func (*tagFilterMode) name() string     { return "tag-filter" }
func (*helpMode) name() string          { return "help" }

// textBuffer is a single-line input. Typing appends at the end and
// backspace removes the last rune; there is no cursor.
type textBuffer struct {
	text string
}

func newTextBuffer(s string) textBuffer { return textBuffer{text: s} }

func (b textBuffer) String() string { return b.text }

// apply edits the buffer for a key press and reports whether it changed.
func (b *textBuffer) apply(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		b.text += string(msg.Runes)
		return true
	case tea.KeySpace:
		b.text += " "
		return true
	case tea.KeyBackspace:
		if b.text == "" {
			return false
		}
		_, size := utf8.DecodeLastRuneInString(b.text)
		b.text = b.text[:len(b.text)-size]
		return true
	}
	return false
}
