package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if !m.ready {
		// No PaintScreen here: dimensions are unknown until the first WindowSizeMsg.
		return "Loading..."
	}

	t := m.cfg.Theme
	switch md := m.mode.(type) {
	case *helpMode:
		return t.ClearLineEnds(m.overlay(m.helpView()))
	case *tagFilterMode:
		return t.ClearLineEnds(m.overlay(m.tagFilterView(md)))
	}

	pane := t.BorderStyle().
		Width(m.preview.Width).
		Height(m.preview.Height).
		Render(t.ViewPaneStyle().Render(m.preview.View()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), pane)

	cw := m.contentWidth()
	footer := m.promptLine() + "\n" + m.help.View(m.keys)
	return t.PaintScreen(body+"\n"+footer, m.width, m.height, cw)
}

// promptLine renders the input prompt of text-entry modes, or the status
// message otherwise.
func (m *Model) promptLine() string {
	t := m.cfg.Theme
	cw := m.contentWidth()
	input := func(label, text string) string {
		return t.AccentStyle().Render(label) + t.HeaderStyle().Render(text+"_")
	}

	switch md := m.mode.(type) {
	case *creatingMode:
		return input("New note title: ", md.buf.String())
	case *renamingMode:
		return input("Rename to: ", md.buf.String())
	case *editingTagsMode:
		return input("Tags (comma separated): ", md.buf.String())
	case *searchingMode:
		return input("Search: ", m.state.Query())
	case *confirmDeleteMode:
		return t.DangerStyle().Width(cw).Render(m.status)
	}

	if isErrorStatus(m.status) {
		return t.DangerStyle().Width(cw).Render(m.status)
	}
	return t.HelpStyle().Width(cw).Render(m.status)
}

func isErrorStatus(s string) bool {
	return strings.HasPrefix(s, "DB Error") ||
		strings.HasPrefix(s, "Error") ||
		strings.HasPrefix(s, "Editor exited")
}

func (m *Model) overlay(content string) string {
	box := m.cfg.Theme.BorderStyle().Padding(1, 2).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(m.cfg.Theme.Background))
}

func (m *Model) helpView() string {
	t := m.cfg.Theme
	h := m.help
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(t.HeaderStyle().Render("notectl"))
	b.WriteString("\n\n")
	b.WriteString(h.View(m.keys))
	if m.cfg.Location != "" {
		b.WriteString("\n\n")
		b.WriteString(t.HelpStyle().Render(fmt.Sprintf("Database: %s", m.cfg.Location)))
	}
	b.WriteString("\n\n")
	b.WriteString(t.HelpStyle().Render("q/esc/? close"))
	return b.String()
}

func (m *Model) tagFilterView(md *tagFilterMode) string {
	t := m.cfg.Theme

	var b strings.Builder
	b.WriteString(t.HeaderStyle().Render("Filter by tag"))
	b.WriteString("\n\n")
	for i, f := range md.options {
		if i == md.cursor {
			b.WriteString(t.AccentStyle().Render("> " + f.String()))
		} else {
			b.WriteString(t.ViewPaneStyle().Render("  " + f.String()))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.HelpStyle().Render("j/k move • enter apply • esc cancel"))
	return b.String()
}
