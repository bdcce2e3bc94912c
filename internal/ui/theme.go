package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/notectl/internal/config"
)

const defaultPreset = "default-dark"

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Danger     lipgloss.Color
	Background lipgloss.Color
}

// palette lists colors in Theme field order.
type palette [6]string

func (p palette) theme() Theme {
	return Theme{
		Primary:    lipgloss.Color(p[0]),
		Secondary:  lipgloss.Color(p[1]),
		Accent:     lipgloss.Color(p[2]),
		Muted:      lipgloss.Color(p[3]),
		Danger:     lipgloss.Color(p[4]),
		Background: lipgloss.Color(p[5]),
	}
}

var presets = map[string]palette{
	"default-dark":     {"15", "243", "33", "241", "9", "235"},
	"default-light":    {"0", "240", "27", "245", "1", "254"},
	"dracula":          {"#F8F8F2", "#6272A4", "#BD93F9", "#6272A4", "#FF5555", "#282A36"},
	"nord":             {"#ECEFF4", "#4C566A", "#88C0D0", "#616E88", "#BF616A", "#2E3440"},
	"catppuccin-mocha": {"#CDD6F4", "#585B70", "#CBA6F7", "#6C7086", "#F38BA8", "#1E1E2E"},
	"catppuccin-latte": {"#4C4F69", "#9CA0B0", "#8839EF", "#9CA0B0", "#D20F39", "#EFF1F5"},
	"gruvbox-dark":     {"#EBDBB2", "#665C54", "#FABD2F", "#928374", "#FB4934", "#282828"},
	"gruvbox-light":    {"#3C3836", "#A89984", "#D79921", "#928374", "#CC241D", "#FBF1C7"},
}

// PresetNames returns the built-in theme names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	p, ok := presets[cfg.Preset]
	if !ok {
		p = presets[defaultPreset]
	}
	overrides := [6]string{cfg.Primary, cfg.Secondary, cfg.Accent, cfg.Muted, cfg.Danger, cfg.Background}
	for i, c := range overrides {
		if c != "" {
			p[i] = c
		}
	}
	return p.theme()
}

func (t Theme) base() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.Background)
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style {
	return t.base().Foreground(t.Muted)
}

// HeaderStyle returns a lipgloss style for headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return t.base().Bold(true).Foreground(t.Primary)
}

// AccentStyle returns a lipgloss style for prompts and the tag filter cursor.
func (t Theme) AccentStyle() lipgloss.Style {
	return t.base().Foreground(t.Accent)
}

// DangerStyle returns a lipgloss style for errors and delete prompts.
func (t Theme) DangerStyle() lipgloss.Style {
	return t.base().Foreground(t.Danger)
}

// BorderStyle returns a lipgloss style with a rounded border using secondary color.
func (t Theme) BorderStyle() lipgloss.Style {
	return t.base().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		BorderBackground(t.Background).
		Foreground(t.Primary)
}

// ViewPaneStyle returns a lipgloss style for the preview pane.
func (t Theme) ViewPaneStyle() lipgloss.Style {
	return t.base().Foreground(t.Primary)
}

// HelpStyles returns styles for the bubbles help footer and overlay.
func (t Theme) HelpStyles() help.Styles {
	key := t.base().Foreground(t.Accent)
	desc := t.base().Foreground(t.Muted)
	sep := t.base().Foreground(t.Secondary)
	return help.Styles{
		Ellipsis:       sep,
		ShortKey:       key,
		ShortDesc:      desc,
		ShortSeparator: sep,
		FullKey:        key,
		FullDesc:       desc,
		FullSeparator:  sep,
	}
}

// bgEscapeCode returns the raw ANSI escape sequence that sets the theme's
// background color, for use with \x1b[K.
func (t Theme) bgEscapeCode() string {
	s := string(t.Background)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[48;5;" + s + "m"
}

// PaintScreen pads every line to termWidth, centering content narrower than
// the terminal, and pads vertically to termHeight with the background color.
// Each line also ends in \x1b[K so the background reaches the right edge.
func (t Theme) PaintScreen(content string, termWidth, termHeight, contentWidth int) string {
	bg := t.base()
	clearEOL := t.bgEscapeCode() + "\x1b[K"

	left := ""
	leftPad := 0
	if contentWidth > 0 && contentWidth < termWidth {
		leftPad = (termWidth - contentWidth) / 2
		left = bg.Render(strings.Repeat(" ", leftPad))
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		var b strings.Builder
		b.WriteString(left)
		b.WriteString(line)
		if pad := termWidth - leftPad - lipgloss.Width(line); pad > 0 {
			b.WriteString(bg.Render(strings.Repeat(" ", pad)))
		}
		b.WriteString(clearEOL)
		lines[i] = b.String()
	}

	blank := bg.Render(strings.Repeat(" ", termWidth)) + clearEOL
	for len(lines) < termHeight {
		lines = append(lines, blank)
	}
	return strings.Join(lines[:termHeight], "\n")
}

// ClearLineEnds appends a background-colored \x1b[K to every line. Overlays
// placed with lipgloss.Place use it to fill to the right terminal edge.
func (t Theme) ClearLineEnds(content string) string {
	clearEOL := t.bgEscapeCode() + "\x1b[K"
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = line + clearEOL
	}
	return strings.Join(lines, "\n")
}

// NewList creates a list.Model with delegate and chrome styles derived from
// the theme. Filtering, help and the status bar are disabled; the note list
// is driven by the view state.
func (t Theme) NewList(items []list.Item, width, height int) list.Model {
	l := list.New(items, t.ListDelegate(), width, height)
	l.Styles = t.ListStyles()
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	return l
}

// ListDelegate returns a list.DefaultDelegate with item styles derived from the theme.
func (t Theme) ListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.NormalTitle = t.base().Foreground(t.Primary).Padding(0, 0, 0, 2)
	d.Styles.NormalDesc = d.Styles.NormalTitle.Foreground(t.Muted)
	d.Styles.SelectedTitle = t.base().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Accent).
		BorderBackground(t.Background).
		Foreground(t.Accent).
		Padding(0, 0, 0, 1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Foreground(t.Secondary)
	d.Styles.DimmedTitle = d.Styles.NormalTitle.Foreground(t.Muted)
	d.Styles.DimmedDesc = d.Styles.NormalDesc
	return d
}

// ListStyles returns list.Styles (chrome around the list) derived from the theme.
func (t Theme) ListStyles() list.Styles {
	s := list.DefaultStyles()
	s.Title = t.HeaderStyle()
	s.TitleBar = t.base()
	s.PaginationStyle = t.HelpStyle()
	s.HelpStyle = t.HelpStyle()
	s.ActivePaginationDot = t.AccentStyle()
	s.InactivePaginationDot = t.HelpStyle()
	s.NoItems = t.HelpStyle()
	return s
}
