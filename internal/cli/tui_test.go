package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brian-c/string-spacing-calculator/pkg/preset"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewPresetListModelCurrent(t *testing.T) {
	m := NewPresetListModel(preset.Builtin(), "49\n62\n84\n108")
	if m.Current != 3 || m.Cursor != 3 {
		t.Errorf("cursor = %d current = %d, want 3", m.Cursor, m.Current)
	}

	m = NewPresetListModel(preset.Builtin(), "1\n2")
	if m.Current != -1 || m.Cursor != 0 {
		t.Errorf("unmatched config: cursor = %d current = %d", m.Cursor, m.Current)
	}
}

func TestPresetListModelNavigation(t *testing.T) {
	var model tea.Model = NewPresetListModel(preset.Builtin(), "")

	model, _ = model.Update(key("up"))
	if got := model.(PresetListModel).Cursor; got != 0 {
		t.Errorf("cursor after up at top = %d, want 0", got)
	}
	for i := 0; i < 10; i++ {
		model, _ = model.Update(key("j"))
	}
	if got := model.(PresetListModel).Cursor; got != len(preset.Builtin())-1 {
		t.Errorf("cursor should stop at the last preset, got %d", got)
	}
	model, _ = model.Update(key("k"))

	model, cmd := model.Update(key("enter"))
	m := model.(PresetListModel)
	if m.Selected == nil || m.Selected.Name != "D'Addario EJ74" {
		t.Errorf("selected = %+v", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}
}

func TestPresetListModelQuit(t *testing.T) {
	model, cmd := NewPresetListModel(preset.Builtin(), "").Update(key("q"))
	if model.(PresetListModel).Selected != nil {
		t.Error("quitting should not select")
	}
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestPresetListModelView(t *testing.T) {
	view := NewPresetListModel(preset.Builtin(), "10\n13\n17\n26\n36\n46").View()
	for _, want := range []string{"Select Preset", "Guitar", "Bass", "Mandolin", "Regular Slinky", "12-String Slinky"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
