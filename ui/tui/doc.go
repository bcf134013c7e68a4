// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui implements the terminal demo screen. Presentation and input
// handling live here; authorization resolution and the payment lifecycle are
// provided by `internal/demo`.
package tui
