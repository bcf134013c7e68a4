// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
package dropin

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/dropindemo/internal/i18n"
)

type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Pay    key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Prev, km.Submit, km.Pay}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Next, km.Prev}, {km.Submit, km.Pay}}
}

var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap builds the form bindings in the current language.
func NewKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", i18n.T("keys.next_field")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", i18n.T("keys.prev_field")),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("keys.next_submit")),
		),
		Pay: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", i18n.T("keys.pay")),
		),
	}
}
