// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package picker is the declarative payment flow: a list of vaulted sandbox
// payment methods the user picks from.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dropindemo/internal/cardinfo"
	"github.com/toeirei/dropindemo/internal/demo"
	"github.com/toeirei/dropindemo/internal/i18n"
	"github.com/toeirei/dropindemo/ui/tui/util"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	detailStyle = lipgloss.NewStyle().Faint(true)
)

// Option is one entry in the picker.
type Option struct {
	Brand       cardinfo.Brand
	Description string
	Declined    bool
}

func (o Option) PaymentMethod() demo.PaymentMethod {
	return demo.PaymentMethod{
		Nonce:       cardinfo.FakeNonce(o.Brand, o.Declined),
		Type:        string(o.Brand),
		Description: o.Description,
	}
}

// DefaultOptions mirrors the sandbox test payment methods.
var DefaultOptions = []Option{
	{Brand: cardinfo.BrandVisa, Description: "ending in 1111"},
	{Brand: cardinfo.BrandMasterCard, Description: "ending in 4444"},
	{Brand: cardinfo.BrandAmex, Description: "ending in 0005"},
	{Brand: cardinfo.BrandUnionPay, Description: "ending in 1232"},
	{Brand: cardinfo.BrandPayPal, Description: "jane.doe@example.com"},
	{Brand: cardinfo.BrandVisa, Description: "ending in 1115 (declines)", Declined: true},
}

type Model struct {
	authorization string
	emit          demo.Emitter
	keys          KeyMap
	options       []Option
	cursor        int
	ended         bool
}

func New(authorization string, emit demo.Emitter) *Model {
	return &Model{
		authorization: authorization,
		emit:          emit,
		keys:          NewKeyMap(),
		options:       DefaultOptions,
	}
}

func (m *Model) Title() string               { return i18n.T("picker.title") }
func (m *Model) Authorization() string       { return m.authorization }
func (m *Model) Framework() demo.UIFramework { return demo.UIFrameworkDeclarative }
func (m *Model) KeyMap() help.KeyMap         { return m.keys }
func (m *Model) Init() tea.Cmd               { return nil }
func (m *Model) End()                        { m.ended = true }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.ended {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = util.Wrap(m.cursor, -1, len(m.options))
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = util.Wrap(m.cursor, 1, len(m.options))
	case key.Matches(keyMsg, m.keys.Pay):
		return m.emit.Transact()
	case key.Matches(keyMsg, m.keys.Select):
		if len(m.options) == 0 {
			return nil
		}
		o := m.options[m.cursor]
		return tea.Sequence(
			m.emit.Progress(i18n.T("picker.selected", o.Brand)),
			m.emit.PaymentMethod(o.PaymentMethod()),
		)
	}
	return nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title()))
	b.WriteString("\n")
	b.WriteString(detailStyle.Render(i18n.T("picker.choose")))
	b.WriteString("\n\n")
	for i, o := range m.options {
		line := fmt.Sprintf("%-18s %s", o.Brand, detailStyle.Render(o.Description))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

var _ demo.Session = (*Model)(nil)
