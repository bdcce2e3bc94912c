package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/notectl/internal/note"
)

var (
	confirmYes = key.NewBinding(key.WithKeys("y", "Y"))
	confirmNo  = key.NewBinding(key.WithKeys("n", "N", "enter", "esc", "q", "ctrl+c"))
)

// confirmModel asks a single y/n question on the command line. Anything
// other than y declines.
type confirmModel struct {
	title     string
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, confirmYes):
		m.confirmed = true
	case key.Matches(km, confirmNo):
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s ",
		m.theme.HeaderStyle().Render(fmt.Sprintf("Delete '%s'?", m.title)),
		m.theme.DangerStyle().Render("(y/n)"),
	)
}

// ConfirmDelete asks whether n should be deleted, using the same wording as
// the TUI's delete prompt.
func ConfirmDelete(n note.Note, theme Theme) (bool, error) {
	result, err := tea.NewProgram(confirmModel{title: n.Title, theme: theme}).Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
