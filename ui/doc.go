// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui contains the user interfaces of the demo: the Cobra command
// line in ui/cli and the Bubble Tea demo screen in ui/tui.
package ui
