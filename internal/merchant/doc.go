// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package merchant contains both sides of the demo merchant API: the HTTP
// client the terminal demo uses to fetch client tokens and create
// transactions, and a small server backed by a bun store that answers those
// calls with sandbox semantics.
package merchant // import "github.com/toeirei/dropindemo/internal/merchant"
