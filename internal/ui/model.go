package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/notectl/internal/editor"
	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/chris-regnier/notectl/internal/view"
	"github.com/muesli/reflow/wordwrap"
)

const welcomeStatus = "Welcome! Press '?' for help."

// TUIConfig holds configuration needed by the TUI.
type TUIConfig struct {
	Editor   string // resolved editor command
	MaxWidth int    // maximum content width (0 = no limit)
	Location string // database location shown in help
	Theme    Theme  // resolved theme
}

// Model is the note manager's Bubble Tea model. It is owned by a single
// program and every storage call runs synchronously inside Update.
type Model struct {
	store  storage.Storage
	cfg    TUIConfig
	logger *slog.Logger

	state  *view.State
	mode   mode
	status string

	// editing is the external edit in progress, if any.
	editing *editor.Session

	keys    keyMap
	help    help.Model
	list    list.Model
	preview viewport.Model

	width  int
	height int
	ready  bool
}

type editorFinishedMsg struct {
	session *editor.Session
	err     error
}

// noteItem implements list.Item for note.Note.
type noteItem struct {
	note note.Note
}

func (i noteItem) Title() string       { return i.note.Label() }
func (i noteItem) Description() string { return i.note.Preview(60) }
func (i noteItem) FilterValue() string { return i.note.Title }

// New creates the TUI model and loads the initial note collection.
func New(store storage.Storage, cfg TUIConfig, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := help.New()
	h.Styles = cfg.Theme.HelpStyles()

	m := &Model{
		store:   store,
		cfg:     cfg,
		logger:  logger,
		state:   view.New(),
		mode:    &normalMode{},
		status:  welcomeStatus,
		keys:    defaultKeyMap(),
		help:    h,
		list:    cfg.Theme.NewList(nil, 0, 0),
		preview: viewport.New(0, 0),
	}
	m.refresh()
	m.sync()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
	case editorFinishedMsg:
		m.finishEdit(msg)
	case tea.KeyMsg:
		cmd = dispatch(m, msg)
	}
	m.sync()
	return m, cmd
}

// refresh reloads every note from storage and rebuilds the view state. On
// failure the previous state is kept and the error is shown in the status
// line.
func (m *Model) refresh() bool {
	notes, err := m.store.List()
	if err != nil {
		m.logger.Error("listing notes", "err", err)
		m.setError(err)
		return false
	}
	m.state.ReplaceAll(notes)
	return true
}

func (m *Model) setError(err error) {
	m.status = fmt.Sprintf("DB Error: %v", err)
}

// startEdit writes the note to a temp file and hands the terminal to the
// external editor until it exits.
func (m *Model) startEdit(n note.Note) tea.Cmd {
	s, err := editor.Prepare(n.ID, n.Content)
	if err != nil {
		m.logger.Error("preparing editor", "id", n.ID, "err", err)
		m.status = fmt.Sprintf("Error: %v", err)
		return nil
	}
	c, err := s.Command(m.cfg.Editor)
	if err != nil {
		s.Cleanup()
		m.status = fmt.Sprintf("Error: %v", err)
		return nil
	}
	m.editing = s
	m.logger.Debug("launching editor", "id", n.ID, "path", s.Path, "editor", m.cfg.Editor)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{session: s, err: err}
	})
}

func (m *Model) finishEdit(msg editorFinishedMsg) {
	s := msg.session
	m.editing = nil
	defer func() {
		if err := s.Cleanup(); err != nil {
			m.logger.Warn("removing temp file", "path", s.Path, "err", err)
		}
		m.refresh()
	}()

	content, err := s.Result(msg.err)
	switch {
	case msg.err != nil:
		m.logger.Warn("editor failed", "id", s.NoteID, "err", msg.err)
		m.status = fmt.Sprintf("Editor exited with error: %v", msg.err)
	case err != nil:
		m.logger.Error("reading edited note", "id", s.NoteID, "err", err)
		m.status = fmt.Sprintf("Error: %v", err)
	default:
		if err := m.store.UpdateContent(s.NoteID, content); err != nil {
			m.logger.Error("saving note", "id", s.NoteID, "err", err)
			m.setError(err)
			return
		}
		m.status = "Note saved."
	}
}

// contentWidth returns the effective content width, respecting MaxWidth configuration.
func (m *Model) contentWidth() int {
	if m.cfg.MaxWidth > 0 && m.width > m.cfg.MaxWidth {
		return m.cfg.MaxWidth
	}
	return m.width
}

const footerHeight = 2

func (m *Model) listWidth() int {
	return max(m.contentWidth()/3, 20)
}

func (m *Model) layout() {
	bodyHeight := max(m.height-footerHeight, 3)
	m.list.SetSize(m.listWidth(), bodyHeight)
	// Border takes one column and one row on each side.
	m.preview.Width = max(m.contentWidth()-m.listWidth()-2, 10)
	m.preview.Height = bodyHeight - 2
	m.help.Width = m.contentWidth()
}

// sync copies the view state into the list and preview widgets.
func (m *Model) sync() {
	displayed := m.state.Displayed()
	items := make([]list.Item, len(displayed))
	for i, n := range displayed {
		items[i] = noteItem{note: n}
	}
	m.list.SetItems(items)
	if i := m.state.SelectedIndex(); i >= 0 {
		m.list.Select(i)
	}
	m.list.Title = fmt.Sprintf("Notes (Filter: %s)", m.state.Filter())

	text := m.state.Preview()
	if m.preview.Width > 0 {
		text = wordwrap.String(text, m.preview.Width)
	}
	m.preview.SetContent(text)
	if m.preview.Height > 0 {
		m.state.SetPreviewBounds(m.preview.TotalLineCount(), m.preview.Height)
	}
	m.preview.SetYOffset(m.state.PreviewScroll())
}

// RunTUI launches the interactive note manager.
func RunTUI(store storage.Storage, cfg TUIConfig, logger *slog.Logger) error {
	p := tea.NewProgram(New(store, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
