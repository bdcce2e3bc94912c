package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/view"
)

// dispatch routes a key press according to the current mode. Every branch
// that mutates storage refreshes the view state before returning.
func dispatch(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch md := m.mode.(type) {
	case *normalMode:
		return m.updateNormal(msg)
	case *creatingMode:
		return m.updateCreating(md, msg)
	case *renamingMode:
		m.updateRenaming(md, msg)
	case *editingTagsMode:
		m.updateEditingTags(md, msg)
	case *searchingMode:
		m.updateSearching(msg)
	case *confirmDeleteMode:
		m.updateConfirmDelete(md, msg)
	case *tagFilterMode:
		m.updateTagFilter(md, msg)
	case *helpMode:
		m.updateHelp(msg)
	}
	return nil
}

func (m *Model) setMode(md mode) {
	m.logger.Debug("mode change", "from", m.mode.name(), "to", md.name())
	m.mode = md
}

// requireSelection returns the selected note, or sets a status message
// naming the action when nothing is selected.
func (m *Model) requireSelection(action string) (note.Note, bool) {
	n, ok := m.state.Selected()
	if !ok {
		m.status = fmt.Sprintf("No note selected to %s.", action)
	}
	return n, ok
}

func (m *Model) updateNormal(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.state.Next()
	case key.Matches(msg, m.keys.Up):
		m.state.Prev()
	case key.Matches(msg, m.keys.ScrollDown):
		m.state.ScrollPreview(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.state.ScrollPreview(-1)
	case key.Matches(msg, m.keys.Edit):
		if n, ok := m.requireSelection("edit"); ok {
			return m.startEdit(n)
		}
	case key.Matches(msg, m.keys.Add):
		m.setMode(&creatingMode{})
		m.status = ""
	case key.Matches(msg, m.keys.Delete):
		if n, ok := m.requireSelection("delete"); ok {
			m.setMode(&confirmDeleteMode{noteID: n.ID, title: n.Title})
			m.status = fmt.Sprintf("Delete '%s'? (y/n)", n.Title)
		}
	case key.Matches(msg, m.keys.Rename):
		if n, ok := m.requireSelection("rename"); ok {
			m.setMode(&renamingMode{noteID: n.ID, buf: newTextBuffer(n.Title)})
			m.status = ""
		}
	case key.Matches(msg, m.keys.Tags):
		if n, ok := m.requireSelection("tag"); ok {
			m.setMode(&editingTagsMode{noteID: n.ID, buf: newTextBuffer(note.JoinTags(n.Tags))})
			m.status = ""
		}
	case key.Matches(msg, m.keys.TagFilter):
		options := m.state.AvailableFilters()
		cursor := max(slices.Index(options, m.state.Filter()), 0)
		m.setMode(&tagFilterMode{options: options, cursor: cursor})
	case key.Matches(msg, m.keys.Search):
		m.setMode(&searchingMode{})
		m.status = ""
	case key.Matches(msg, m.keys.Archive):
		if n, ok := m.requireSelection("archive"); ok {
			m.toggleArchived(n)
		}
	case key.Matches(msg, m.keys.ToggleView):
		if _, ok := m.state.ToggleArchiveView().(view.Archived); ok {
			m.status = "Switched to Archived Notes"
		} else {
			m.status = "Switched to Active Notes"
		}
	case key.Matches(msg, m.keys.Sort):
		m.status = fmt.Sprintf("Sorted by: %s", m.state.ToggleSort())
	case key.Matches(msg, m.keys.Help):
		m.setMode(&helpMode{})
	}
	return nil
}

// reveal runs sel, and when the note it looks for is hidden by the search
// or filter, clears the search and widens the filter until it shows.
func (m *Model) reveal(sel func() bool) {
	if sel() {
		return
	}
	m.state.ClearQuery()
	if sel() {
		return
	}
	for _, f := range []view.Filter{view.Active{}, view.All{}} {
		m.state.SetFilter(f)
		if sel() {
			return
		}
	}
}

func (m *Model) toggleArchived(n note.Note) {
	archived := !n.Archived
	if err := m.store.SetArchived(n.ID, archived); err != nil {
		m.logger.Error("archiving note", "id", n.ID, "err", err)
		m.setError(err)
		return
	}
	if !m.refresh() {
		return
	}
	verb := "Unarchived"
	if archived {
		verb = "Archived"
	}
	m.status = fmt.Sprintf("Note '%s' %s.", n.Title, verb)
}

func (m *Model) updateCreating(md *creatingMode, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.setMode(&normalMode{})
		m.status = "New note cancelled."
	case tea.KeyEnter:
		m.setMode(&normalMode{})
		title := strings.TrimSpace(md.buf.String())
		if title == "" {
			m.status = "New note cancelled."
			return nil
		}
		n, err := m.store.Create(title)
		if err != nil {
			m.logger.Error("creating note", "title", title, "err", err)
			m.setError(err)
			return nil
		}
		if m.refresh() {
			m.reveal(func() bool { return m.state.SelectID(n.ID) })
			m.status = fmt.Sprintf("Note '%s' created.", n.Title)
		}
		return m.startEdit(n)
	default:
		md.buf.apply(msg)
	}
	return nil
}

func (m *Model) updateRenaming(md *renamingMode, msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.setMode(&normalMode{})
		m.status = "Rename cancelled."
	case tea.KeyEnter:
		m.setMode(&normalMode{})
		title := strings.TrimSpace(md.buf.String())
		if title == "" {
			m.status = "Rename cancelled."
			return
		}
		if err := m.store.Rename(md.noteID, title); err != nil {
			m.logger.Error("renaming note", "id", md.noteID, "title", title, "err", err)
			m.setError(err)
			return
		}
		if !m.refresh() {
			return
		}
		m.reveal(func() bool { return m.state.SelectTitle(title) })
		m.status = "Note renamed."
	default:
		md.buf.apply(msg)
	}
}

func (m *Model) updateEditingTags(md *editingTagsMode, msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.setMode(&normalMode{})
		m.status = "Tag edit cancelled."
	case tea.KeyEnter:
		m.setMode(&normalMode{})
		tags := note.ParseTags(md.buf.String())
		if err := m.store.UpdateTags(md.noteID, tags); err != nil {
			m.logger.Error("updating tags", "id", md.noteID, "err", err)
			m.setError(err)
			return
		}
		if !m.refresh() {
			return
		}
		m.status = "Tags updated."
	default:
		md.buf.apply(msg)
	}
}

func (m *Model) updateSearching(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.setMode(&normalMode{})
		m.state.ClearQuery()
		m.status = "Search cleared."
	case tea.KeyEnter:
		m.setMode(&normalMode{})
		if q := m.state.Query(); q != "" {
			m.status = fmt.Sprintf("Search applied: '%s'", q)
		} else {
			m.status = "Search cleared."
		}
	default:
		buf := newTextBuffer(m.state.Query())
		if buf.apply(msg) {
			m.state.SetQuery(buf.String())
		}
	}
}

func (m *Model) updateConfirmDelete(md *confirmDeleteMode, msg tea.KeyMsg) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.setMode(&normalMode{})
		if err := m.store.Delete(md.noteID); err != nil {
			m.logger.Error("deleting note", "id", md.noteID, "err", err)
			m.setError(err)
			return
		}
		if !m.refresh() {
			return
		}
		m.status = fmt.Sprintf("Note '%s' deleted.", md.title)
	case "n", "esc":
		m.setMode(&normalMode{})
		m.status = "Deletion cancelled."
	}
}

func (m *Model) updateTagFilter(md *tagFilterMode, msg tea.KeyMsg) {
	switch msg.String() {
	case "j", "down":
		if len(md.options) > 0 {
			md.cursor = (md.cursor + 1) % len(md.options)
		}
	case "k", "up":
		if len(md.options) > 0 {
			md.cursor = (md.cursor - 1 + len(md.options)) % len(md.options)
		}
	case "enter":
		m.setMode(&normalMode{})
		if md.cursor < 0 || md.cursor >= len(md.options) {
			return
		}
		f := md.options[md.cursor]
		m.state.SetFilter(f)
		m.status = fmt.Sprintf("Filter applied: %s", f)
	case "esc", "q":
		m.setMode(&normalMode{})
		m.status = "Filter cancelled."
	}
}

func (m *Model) updateHelp(msg tea.KeyMsg) {
	switch msg.String() {
	case "q", "esc", "?":
		m.setMode(&normalMode{})
	}
}
