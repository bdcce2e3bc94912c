package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var pagerQuit = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit"))

// pagerModel shows one note's full text in a scrollable viewport with the
// title above it and the scroll position below.
type pagerModel struct {
	viewport viewport.Model
	title    string
	content  string
	ready    bool
	maxWidth int // 0 = no limit
	width    int
	height   int
	theme    Theme
}

// pagerChrome is the number of rows taken by the title and footer.
const pagerChrome = 2

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, pagerQuit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(0, 0)
			m.ready = true
		}
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = max(msg.Height-pagerChrome, 1)
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := m.theme.HeaderStyle().Render(m.title)
	footer := m.theme.HelpStyle().Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • %s %s",
		m.viewport.ScrollPercent()*100, pagerQuit.Help().Key, pagerQuit.Help().Desc))
	body := m.theme.ViewPaneStyle().Render(m.viewport.View())
	return m.theme.PaintScreen(header+"\n"+body+"\n"+footer, m.width, m.height, m.contentWidth())
}

// PageOutput writes content to w, paging it under title when w is a
// terminal and the content is taller than the screen.
func PageOutput(w io.Writer, title, content string, maxWidth int, theme Theme) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, content)
		return nil
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil || strings.Count(content, "\n")+1 <= height-pagerChrome {
		fmt.Fprint(w, content)
		return nil
	}

	m := pagerModel{title: title, content: content, maxWidth: maxWidth, theme: theme}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(f)).Run()
	return err
}
