// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package demo holds the authorization resolver and the integration
// lifecycle controller behind the demo screen.
//
// The resolver picks exactly one authorization source from the layered
// settings. The controller owns the single active payment UI session and
// drives it from "no session" to "payment method obtained" to "transaction
// in flight". It is a bubbletea component: all of its state is touched only
// from the program's Update loop, and network calls run as tea.Cmd functions
// whose results come back as messages tagged with the session generation
// they were issued for. Results from an older generation are dropped.
package demo
