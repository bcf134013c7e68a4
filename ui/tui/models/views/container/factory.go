// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
package container

import (
	"fmt"
	"os"

	"github.com/toeirei/dropindemo/internal/demo"
	"github.com/toeirei/dropindemo/ui/tui/models/views/dropin"
	"github.com/toeirei/dropindemo/ui/tui/models/views/picker"
	"golang.org/x/term"
)

// Factory creates the payment flow for a UI framework. The declarative
// picker needs an interactive terminal.
type Factory struct {
	IsTerminal func() bool
}

func NewFactory() Factory {
	return Factory{
		IsTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
	}
}

func (f Factory) NewSession(authorization string, framework demo.UIFramework, emit demo.Emitter) (demo.Session, error) {
	switch framework {
	case demo.UIFrameworkLegacy:
		return dropin.New(authorization, emit), nil
	case demo.UIFrameworkDeclarative:
		if f.IsTerminal != nil && !f.IsTerminal() {
			return nil, fmt.Errorf("%w: declarative flow needs an interactive terminal", demo.ErrFrameworkUnavailable)
		}
		return picker.New(authorization, emit), nil
	default:
		return nil, fmt.Errorf("%w: unknown ui framework %q", demo.ErrFrameworkUnavailable, framework)
	}
}

var _ demo.SessionFactory = Factory{}
