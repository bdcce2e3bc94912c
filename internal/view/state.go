// Package view holds the in-memory projection of the note collection: the
// filtered, searched and sorted list shown in the TUI, the selection cursor
// and the preview pane.
package view

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chris-regnier/notectl/internal/note"
	"golang.org/x/text/cases"
)

// EmptyPreview is shown when nothing is selected.
const EmptyPreview = "No notes found."

// State is the derived view of the note collection.
//
// Invariant: selected is -1 iff displayed is empty, otherwise it is a valid
// index into displayed.
type State struct {
	all       []note.Note
	displayed []note.Note
	selected  int

	filter Filter
	query  string
	order  SortOrder

	preview   string
	previewID int64 // note shown in preview, 0 for none
	scroll    int
	// maxScroll bounds scroll once the rendered preview size is known;
	// -1 falls back to the line count of the unwrapped text.
	maxScroll int

	fold cases.Caser
}

// New returns an empty view showing active notes sorted by title.
func New() *State {
	s := &State{
		selected:  -1,
		filter:    Active{},
		order:     SortByTitle,
		fold:      cases.Fold(),
		maxScroll: -1,
	}
	s.selectionChanged()
	return s
}

// ReplaceAll swaps in a fresh note collection and re-derives the display.
// The selected note stays selected if it is still displayed; otherwise the
// selection falls back to the first note, or none.
func (s *State) ReplaceAll(notes []note.Note) {
	prev, hadSelection := s.Selected()
	s.all = notes
	s.derive()
	s.selected = -1
	if hadSelection {
		s.selected = slices.IndexFunc(s.displayed, func(n note.Note) bool { return n.ID == prev.ID })
	}
	if s.selected < 0 && len(s.displayed) > 0 {
		s.selected = 0
	}
	s.selectionChanged()
}

// Apply re-derives displayed from all using the active filter, query and
// sort order. The selection index is clamped but not otherwise moved.
func (s *State) Apply() {
	s.derive()
	switch {
	case len(s.displayed) == 0:
		s.selected = -1
	case s.selected < 0 || s.selected >= len(s.displayed):
		s.selected = 0
	}
	s.selectionChanged()
}

func (s *State) derive() {
	query := s.fold.String(s.query)
	displayed := make([]note.Note, 0, len(s.all))
	for _, n := range s.all {
		if !s.filter.Match(n) {
			continue
		}
		if query != "" && !strings.Contains(s.fold.String(n.Title), query) {
			continue
		}
		displayed = append(displayed, n)
	}
	slices.SortStableFunc(displayed, s.order.compare)
	s.displayed = displayed
}

// Next moves the selection down, wrapping to the top.
func (s *State) Next() { s.MoveSelection(1) }

// Prev moves the selection up, wrapping to the bottom.
func (s *State) Prev() { s.MoveSelection(-1) }

// MoveSelection moves the cursor by delta with circular wrap-around.
func (s *State) MoveSelection(delta int) {
	n := len(s.displayed)
	if n == 0 {
		return
	}
	i := s.selected
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	s.selected = i
	s.selectionChanged()
}

// Selected returns the note under the cursor.
func (s *State) Selected() (note.Note, bool) {
	if s.selected < 0 || s.selected >= len(s.displayed) {
		return note.Note{}, false
	}
	return s.displayed[s.selected], true
}

// SelectID moves the cursor to the displayed note with the given ID.
func (s *State) SelectID(id int64) bool {
	return s.selectWhere(func(n note.Note) bool { return n.ID == id })
}

// SelectTitle moves the cursor to the displayed note with the given title.
func (s *State) SelectTitle(title string) bool {
	return s.selectWhere(func(n note.Note) bool { return n.Title == title })
}

func (s *State) selectWhere(match func(note.Note) bool) bool {
	i := slices.IndexFunc(s.displayed, match)
	if i < 0 {
		return false
	}
	s.selected = i
	s.selectionChanged()
	return true
}

func (s *State) selectFirst() {
	if len(s.displayed) == 0 {
		s.selected = -1
	} else {
		s.selected = 0
	}
	s.selectionChanged()
}

// SetFilter activates f and resets the selection to the top.
func (s *State) SetFilter(f Filter) {
	s.filter = f
	s.Apply()
	s.selectFirst()
}

// SetQuery changes the search text and re-derives the display.
func (s *State) SetQuery(q string) {
	s.query = q
	s.Apply()
}

// ClearQuery drops the search text and resets the selection to the top.
func (s *State) ClearQuery() {
	s.query = ""
	s.Apply()
	s.selectFirst()
}

// ToggleSort switches between title and tag ordering and resets the
// selection to the top.
func (s *State) ToggleSort() SortOrder {
	if s.order == SortByTitle {
		s.order = SortByTags
	} else {
		s.order = SortByTitle
	}
	s.Apply()
	s.selectFirst()
	return s.order
}

// ToggleArchiveView switches between the Active and Archived filters. Any
// other filter switches to Archived.
func (s *State) ToggleArchiveView() Filter {
	if _, ok := s.filter.(Archived); ok {
		s.SetFilter(Active{})
	} else {
		s.SetFilter(Archived{})
	}
	return s.filter
}

// AvailableFilters lists All, Untagged, then one Tag filter per distinct
// tag across the whole collection, sorted by name.
func (s *State) AvailableFilters() []Filter {
	seen := make(map[string]bool)
	var tags []string
	for _, n := range s.all {
		for _, t := range n.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	slices.Sort(tags)

	filters := []Filter{All{}, Untagged{}}
	for _, t := range tags {
		filters = append(filters, Tag{Name: t})
	}
	return filters
}

// ScrollPreview moves the preview offset by delta lines, clamped to the
// preview bounds.
func (s *State) ScrollPreview(delta int) {
	maxOffset := s.maxScroll
	if maxOffset < 0 {
		maxOffset = strings.Count(s.preview, "\n")
	}
	s.scroll = min(max(s.scroll+delta, 0), maxOffset)
}

// SetPreviewBounds records how the preview is rendered: lines is the line
// count after wrapping and height the number of visible rows. The offset
// is limited so the last line stays at the bottom of the pane.
func (s *State) SetPreviewBounds(lines, height int) {
	s.maxScroll = max(lines-height, 0)
	s.scroll = min(s.scroll, s.maxScroll)
}

// selectionChanged rebuilds the preview and resets the scroll offset when
// a different note (or none) is now selected.
func (s *State) selectionChanged() {
	n, ok := s.Selected()
	var id int64
	if ok {
		id = n.ID
	}
	if id != s.previewID {
		s.scroll = 0
		s.maxScroll = -1
		s.previewID = id
	}

	if !ok {
		s.preview = EmptyPreview
		return
	}
	tagsLine := "No Tags"
	if len(n.Tags) > 0 {
		tagsLine = fmt.Sprintf("Tags: [%s]", strings.Join(n.Tags, ", "))
	}
	s.preview = tagsLine + "\n\n" + n.Content
}

// All returns the full note collection.
func (s *State) All() []note.Note { return s.all }

// Displayed returns the filtered, sorted notes.
func (s *State) Displayed() []note.Note { return s.displayed }

// SelectedIndex returns the cursor position, or -1 when nothing is displayed.
func (s *State) SelectedIndex() int { return s.selected }

func (s *State) Filter() Filter     { return s.filter }
func (s *State) Query() string      { return s.query }
func (s *State) Order() SortOrder   { return s.order }
func (s *State) Preview() string    { return s.preview }
func (s *State) PreviewScroll() int { return s.scroll }
