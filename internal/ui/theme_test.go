package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/notectl/internal/config"
)

func TestResolveThemeDefault(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	if theme != presets[defaultPreset].theme() {
		t.Errorf("empty config should resolve to %s", defaultPreset)
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	cfg := config.ThemeConfig{
		Preset:     "default-light",
		Primary:    "#FF0000",
		Background: "#112233",
	}
	theme := ResolveTheme(cfg)

	if string(theme.Primary) != "#FF0000" {
		t.Errorf("expected primary '#FF0000', got %q", string(theme.Primary))
	}
	if string(theme.Background) != "#112233" {
		t.Errorf("expected background '#112233', got %q", string(theme.Background))
	}
	if theme.Accent != presets["default-light"].theme().Accent {
		t.Errorf("accent should come from the preset, got %q", theme.Accent)
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "nonexistent"})
	if theme != presets[defaultPreset].theme() {
		t.Errorf("unknown preset should fall back to %s", defaultPreset)
	}
}

func TestResolveThemeAllPresets(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			theme := ResolveTheme(config.ThemeConfig{Preset: name})
			for field, c := range map[string]lipgloss.Color{
				"primary":    theme.Primary,
				"secondary":  theme.Secondary,
				"accent":     theme.Accent,
				"muted":      theme.Muted,
				"danger":     theme.Danger,
				"background": theme.Background,
			} {
				if string(c) == "" {
					t.Errorf("expected %s color to be set", field)
				}
			}
		})
	}
}

func TestAllStylesIncludeBackground(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})

	styles := map[string]lipgloss.Style{
		"HelpStyle":     theme.HelpStyle(),
		"HeaderStyle":   theme.HeaderStyle(),
		"AccentStyle":   theme.AccentStyle(),
		"DangerStyle":   theme.DangerStyle(),
		"BorderStyle":   theme.BorderStyle(),
		"ViewPaneStyle": theme.ViewPaneStyle(),
		"HelpShortKey":  theme.HelpStyles().ShortKey,
		"HelpFullDesc":  theme.HelpStyles().FullDesc,
		"ListNoItems":   theme.ListStyles().NoItems,
		"ListTitle":     theme.ListStyles().Title,
	}

	for name, style := range styles {
		if style.GetBackground() != theme.Background {
			t.Errorf("%s: expected background %v, got %v", name, theme.Background, style.GetBackground())
		}
	}
}

func TestBorderStyleIncludesBorderBackground(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
	style := theme.BorderStyle()

	if style.GetBorderBottomBackground() != theme.Background {
		t.Errorf("expected border background %v, got %v", theme.Background, style.GetBorderBottomBackground())
	}
}

func TestNewListDisablesBuiltins(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	l := theme.NewList(nil, 40, 10)
	if l.FilteringEnabled() {
		t.Error("list filtering should be disabled")
	}
	if l.ShowHelp() {
		t.Error("list help should be hidden")
	}
}

func TestPaintScreenDimensions(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
	output := theme.PaintScreen("line1\nline2", 40, 10, 40)

	lines := strings.Split(stripANSI(output), "\n")
	if len(lines) != 10 {
		t.Errorf("expected 10 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) < 40 {
			t.Errorf("line %d: expected min width 40, got %d", i, len(line))
		}
	}
}

func TestPaintScreenCentering(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
	// termWidth=100, contentWidth=60 => leftPad=20
	output := theme.PaintScreen("hello", 100, 5, 60)

	first := strings.Split(stripANSI(output), "\n")[0]
	if !strings.HasPrefix(first, strings.Repeat(" ", 20)+"hello") {
		t.Errorf("expected 20 columns of left padding, got %q", first)
	}
}

func TestPaintScreenIncludesClearEOL(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
	output := theme.PaintScreen("hello", 40, 3, 40)

	for i, line := range strings.Split(output, "\n") {
		if !strings.HasSuffix(line, "\x1b[K") {
			t.Errorf("line %d: expected to end with \\x1b[K erase sequence", i)
		}
	}
}

func TestBgEscapeCode(t *testing.T) {
	theme256 := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
	if code := theme256.bgEscapeCode(); code != "\x1b[48;5;235m" {
		t.Errorf("expected 256-color escape, got %q", code)
	}

	themeHex := ResolveTheme(config.ThemeConfig{Preset: "dracula"})
	if code := themeHex.bgEscapeCode(); code != "\x1b[48;2;40;42;54m" {
		t.Errorf("expected true-color escape, got %q", code)
	}
}
