// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import tea "github.com/charmbracelet/bubbletea"

// PaymentMethod is the tokenized payment method a session hands back.
type PaymentMethod struct {
	Nonce       string
	Type        string
	Description string
}

// Session is one running payment UI flow. The controller owns it exclusively
// and calls End exactly once before dropping it.
type Session interface {
	Title() string
	Authorization() string
	Framework() UIFramework
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	End()
}

// SessionFactory builds the flow for a resolved authorization. Returning
// ErrFrameworkUnavailable (or a nil session) leaves the controller without a
// session.
type SessionFactory interface {
	NewSession(authorization string, framework UIFramework, emit Emitter) (Session, error)
}

// SessionFactoryFunc adapts a function to SessionFactory.
type SessionFactoryFunc func(authorization string, framework UIFramework, emit Emitter) (Session, error)

func (f SessionFactoryFunc) NewSession(authorization string, framework UIFramework, emit Emitter) (Session, error) {
	return f(authorization, framework, emit)
}

// Emitter is handed to a session so everything it reports is tagged with the
// generation the session was started for.
type Emitter struct {
	generation uint64
}

// NewEmitter returns an emitter for generation; used by factories in tests.
func NewEmitter(generation uint64) Emitter {
	return Emitter{generation: generation}
}

// Generation is the session generation this emitter reports for.
func (e Emitter) Generation() uint64 { return e.generation }

// Progress reports an interim status from the flow.
func (e Emitter) Progress(status string) tea.Cmd {
	gen := e.generation
	return func() tea.Msg {
		return ProgressMsg{Generation: gen, Status: status}
	}
}

// PaymentMethod reports the tokenized payment method.
func (e Emitter) PaymentMethod(method PaymentMethod) tea.Cmd {
	gen := e.generation
	return func() tea.Msg {
		return PaymentMethodMsg{Generation: gen, Method: method}
	}
}

// Transact asks the controller to make a transaction with the stored payment
// method. It is a no-op while none is stored.
func (e Emitter) Transact() tea.Cmd {
	gen := e.generation
	return func() tea.Msg {
		return TransactMsg{Generation: gen}
	}
}
