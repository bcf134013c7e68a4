// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMapper is implemented by views that contribute bindings to the footer.
type KeyMapper interface {
	KeyMap() help.KeyMap
}

func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keymaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	var bindings [][]key.Binding
	for _, k := range m.KeyMaps {
		if k != nil {
			bindings = append(bindings, k.ShortHelp())
		}
	}
	return slices.Concat(bindings...)
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	var groups [][][]key.Binding
	for _, k := range m.KeyMaps {
		if k != nil {
			groups = append(groups, k.FullHelp())
		}
	}
	return slices.Concat(groups...)
}

var _ help.KeyMap = (*MergedKeyMaps)(nil)
