package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/notectl/internal/config"
)

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		key       string
		confirmed bool
		done      bool
	}{
		{"y", true, true},
		{"Y", true, true},
		{"n", false, true},
		{"q", false, true},
		{"esc", false, true},
		{"enter", false, true},
		{"z", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := confirmModel{title: "a", theme: ResolveTheme(config.ThemeConfig{})}
			updated, cmd := m.Update(keyMsg(tt.key))
			got := updated.(confirmModel)
			if got.confirmed != tt.confirmed || got.done != tt.done {
				t.Errorf("confirmed=%v done=%v, want %v %v", got.confirmed, got.done, tt.confirmed, tt.done)
			}
			if tt.done {
				if cmd == nil {
					t.Fatal("expected quit command")
				}
				if _, ok := cmd().(tea.QuitMsg); !ok {
					t.Error("expected tea.QuitMsg")
				}
			}
		})
	}
}

func TestConfirmView(t *testing.T) {
	m := confirmModel{title: "a", theme: ResolveTheme(config.ThemeConfig{})}
	if got := stripANSI(m.View()); got != "Delete 'a'? (y/n) " {
		t.Errorf("view = %q", got)
	}
	m.done = true
	if m.View() != "" {
		t.Error("view should be empty once answered")
	}
}
