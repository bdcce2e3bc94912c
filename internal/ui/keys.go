package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the normal-mode bindings. It implements help.KeyMap for the
// footer and the help overlay.
type keyMap struct {
	Down       key.Binding
	Up         key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Edit       key.Binding
	Add        key.Binding
	Delete     key.Binding
	Rename     key.Binding
	Tags       key.Binding
	TagFilter  key.Binding
	Search     key.Binding
	Archive    key.Binding
	ToggleView key.Binding
	Sort       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:       key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "next note")),
		Up:         key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "previous note")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓/^j", "scroll preview down")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑/^k", "scroll preview up")),
		Edit:       key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Tags:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "edit tags")),
		TagFilter:  key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "filter by tag")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Archive:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "archive/unarchive")),
		ToggleView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "active/archived view")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle sort")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Search, k.TagFilter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.ScrollDown, k.ScrollUp, k.Search, k.TagFilter, k.ToggleView, k.Sort},
		{k.Add, k.Edit, k.Rename, k.Tags, k.Delete, k.Archive, k.Help, k.Quit},
	}
}
