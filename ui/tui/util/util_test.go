// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type staticKeyMap []key.Binding

func (k staticKeyMap) ShortHelp() []key.Binding  { return k }
func (k staticKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestSizeUpdate(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("key message must not change the size")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) || s.Width != 80 || s.Height != 24 {
		t.Fatalf("unexpected size %+v", s)
	}
	if got := s.Shrink(2, 30); got.Width != 78 || got.Height != 0 {
		t.Fatalf("Shrink = %+v", got)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(0, -1, 3) != 2 || Wrap(2, 1, 3) != 0 || Wrap(1, 1, 0) != 0 {
		t.Fatalf("Wrap does not wrap around")
	}
}

func TestMergeKeyMaps(t *testing.T) {
	a := staticKeyMap{key.NewBinding(key.WithKeys("a"))}
	b := staticKeyMap{key.NewBinding(key.WithKeys("b")), key.NewBinding(key.WithKeys("c"))}
	m := MergeKeyMaps(a, nil, b)
	if n := len(m.ShortHelp()); n != 3 {
		t.Fatalf("ShortHelp has %d bindings", n)
	}
	if n := len(m.FullHelp()); n != 2 {
		t.Fatalf("FullHelp has %d groups", n)
	}
}
