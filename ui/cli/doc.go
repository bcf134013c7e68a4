// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for the demo using Cobra.
// It loads configuration, sets up logging and i18n, and hands off to the
// terminal UI or the merchant server. CLI code should remain thin and
// delegate to the internal packages.
package cli
