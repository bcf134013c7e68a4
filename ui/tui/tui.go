// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/dropindemo/internal/logging"
	"github.com/toeirei/dropindemo/internal/watch"
	"github.com/toeirei/dropindemo/ui/tui/models/views/container"
)

// Run starts the demo screen and blocks until the user quits. When
// config.ConfigPath is set, saving that file restarts the payment flow with
// the new settings.
func Run(ctx context.Context, config container.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := container.New(ctx, config)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if config.ConfigPath != "" {
		w, err := watch.New(config.ConfigPath, func() {
			program.Send(container.SettingsChangedMsg{})
		})
		if err != nil {
			logging.Warnf("settings file will not be watched: %v", err)
		} else {
			go func() {
				if err := w.Run(ctx); err != nil {
					logging.Warnf("settings watcher stopped: %v", err)
				}
			}()
		}
	}

	_, err := program.Run()
	model.Shutdown()
	return err
}
