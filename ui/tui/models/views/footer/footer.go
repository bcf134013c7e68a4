// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dropindemo/ui/tui/models/components/keyhelp"
	"github.com/toeirei/dropindemo/ui/tui/util"
)

var statusStyle = lipgloss.NewStyle().Bold(true)

// Model renders the status line above the key help.
type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     string
}

func New(baseKeyMap help.KeyMap) *Model {
	m := &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
	m.help.SetKeyMap(baseKeyMap)
	return m
}

func (m *Model) Update(msg tea.Msg) {
	m.size.Update(msg)
	m.help.Update(msg)
}

// SetKeyMap shows km in front of the base bindings.
func (m *Model) SetKeyMap(km help.KeyMap) {
	m.help.SetKeyMap(util.MergeKeyMaps(km, m.baseKeyMap))
}

func (m *Model) SetStatus(status string) {
	m.status = status
}

func (m Model) Status() string {
	return m.status
}

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

// Height is the number of lines View renders.
func (m Model) Height() int {
	return lipgloss.Height(m.View())
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}
	helpView := lipgloss.PlaceHorizontal(m.size.Width, h_pos, m.help.View())

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Width(m.size.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, statusStyle.Render(m.status), helpView))
}
