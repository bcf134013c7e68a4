// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

// TitleHandler keeps the terminal title as "<base><delimiter><current>".
type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

func (t TitleHandler) render() tea.Cmd {
	return tea.SetWindowTitle(t.String())
}

func (t TitleHandler) String() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t TitleHandler) Init() tea.Cmd {
	return t.render()
}

// Set returns a command only when the title actually changes.
func (t *TitleHandler) Set(current string) tea.Cmd {
	if t.current == current {
		return nil
	}
	t.current = current
	return t.render()
}
