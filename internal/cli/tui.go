package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brian-c/string-spacing-calculator/pkg/preset"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listGroupStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

// =============================================================================
// PresetListModel - Interactive preset selection
// =============================================================================

// PresetListModel is the bubbletea model for interactive preset selection.
type PresetListModel struct {
	Presets  preset.Catalog
	Cursor   int
	Current  int // index of the preset matching the stored gauges, or -1
	Selected *preset.Preset
}

// NewPresetListModel creates a preset list with the cursor on the preset
// matching config, if any.
func NewPresetListModel(presets preset.Catalog, config string) PresetListModel {
	m := PresetListModel{Presets: presets, Current: -1}
	value := preset.ValueOf(config)
	for i, p := range presets {
		if p.Value == value {
			m.Cursor = i
			m.Current = i
			break
		}
	}
	return m
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Presets) == 0 {
				return m, tea.Quit
			}
			p := m.Presets[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n")

	group := ""
	for i, p := range m.Presets {
		if p.Group != group {
			group = p.Group
			b.WriteString("\n" + listGroupStyle.Render(group) + "\n")
		}

		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}
		mark := " "
		if i == m.Current {
			mark = StyleSuccess.Render("*")
		}

		line := fmt.Sprintf("%s%s %-28s  %s", cursor, mark, p.Name, listDimStyle.Render(p.Value))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s current gauges\n", StyleSuccess.Render("*")))

	return b.String()
}
