// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package dropin is the legacy payment flow: a card entry form that
// tokenizes locally into a sandbox nonce.
package dropin

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/dropindemo/internal/cardinfo"
	"github.com/toeirei/dropindemo/internal/demo"
	"github.com/toeirei/dropindemo/internal/i18n"
)

const (
	fieldNumber = iota
	fieldExpiration
	fieldCVV
	fieldCount
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type Model struct {
	authorization string
	emit          demo.Emitter
	keys          KeyMap
	inputs        []textinput.Model
	focus         int
	err           string
	ended         bool

	// now is swapped in tests.
	now func() time.Time
}

func New(authorization string, emit demo.Emitter) *Model {
	m := &Model{
		authorization: authorization,
		emit:          emit,
		keys:          NewKeyMap(),
		inputs:        make([]textinput.Model, fieldCount),
		now:           time.Now,
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = "> "
		switch i {
		case fieldNumber:
			in.Placeholder = "4111 1111 1111 1111"
			in.CharLimit = 23
		case fieldExpiration:
			in.Placeholder = "12/30"
			in.CharLimit = 7
		case fieldCVV:
			in.Placeholder = "123"
			in.CharLimit = 4
			in.EchoMode = textinput.EchoPassword
		}
		m.inputs[i] = in
	}
	m.inputs[fieldNumber].Focus()
	return m
}

func (m *Model) Title() string               { return i18n.T("dropin.title") }
func (m *Model) Authorization() string       { return m.authorization }
func (m *Model) Framework() demo.UIFramework { return demo.UIFrameworkLegacy }
func (m *Model) KeyMap() help.KeyMap         { return m.keys }
func (m *Model) Init() tea.Cmd               { return textinput.Blink }

// End blurs the form; an ended form ignores all further input.
func (m *Model) End() {
	m.ended = true
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.ended {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Next):
			return m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Pay):
			return m.emit.Transact()
		case key.Matches(msg, m.keys.Submit):
			if m.focus < fieldCount-1 {
				return m.setFocus(m.focus + 1)
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	if i < 0 || i >= fieldCount {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *Model) submit() tea.Cmd {
	card, nonce, err := cardinfo.Tokenize(
		m.inputs[fieldNumber].Value(),
		m.inputs[fieldExpiration].Value(),
		m.inputs[fieldCVV].Value(),
		m.now(),
	)
	if err != nil {
		m.err = errorMessage(err)
		return nil
	}
	m.err = ""
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.setFocus(fieldNumber)

	return tea.Sequence(
		m.emit.Progress(i18n.T("dropin.tokenizing")),
		m.emit.PaymentMethod(demo.PaymentMethod{
			Nonce:       nonce,
			Type:        string(card.Brand),
			Description: "ending in " + cardinfo.LastN(card.PAN, 4),
		}),
	)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, cardinfo.ErrInvalidExpiration):
		return i18n.T("dropin.invalid_expiration")
	case errors.Is(err, cardinfo.ErrInvalidCVV):
		return i18n.T("dropin.invalid_cvv")
	default:
		return i18n.T("dropin.invalid_card", strings.TrimPrefix(err.Error(), cardinfo.ErrInvalidPAN.Error()+": "))
	}
}

func (m *Model) View() string {
	labels := []string{i18n.T("dropin.card_number"), i18n.T("dropin.expiration"), i18n.T("dropin.cvv")}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title()))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render(i18n.T("dropin.submit_hint")))
	return b.String()
}

var _ demo.Session = (*Model)(nil)
