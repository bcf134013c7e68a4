// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
package container

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/dropindemo/internal/i18n"
)

type KeyMap struct {
	Reload   key.Binding
	Transact key.Binding
	Copy     key.Binding
	Settings key.Binding
	Help     key.Binding
	Exit     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Transact, km.Reload, km.Copy, km.Settings, km.Help, km.Exit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Transact, km.Reload}, {km.Copy, km.Settings}, {km.Help, km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap builds the bindings with translated help texts. Transact starts
// disabled until a payment method is stored.
func NewKeyMap() KeyMap {
	km := KeyMap{
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", i18n.T("keys.reload")),
		),
		Transact: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", i18n.T("keys.transact")),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", i18n.T("keys.copy")),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", i18n.T("keys.settings")),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+_"),
			key.WithHelp("ctrl+/", i18n.T("keys.help")),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("keys.quit")),
		),
	}
	km.Transact.SetEnabled(false)
	return km
}
