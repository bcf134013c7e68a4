// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import "strings"

// Environment selects which tokenization key literal is used.
type Environment string

const (
	EnvironmentSandbox     Environment = "sandbox"
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
)

// ParseEnvironment normalises a configured environment name. Unknown names
// are kept as-is and behave like development.
func ParseEnvironment(s string) Environment {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EnvironmentSandbox
	}
	return Environment(s)
}

// UIFramework selects which payment UI flow a session presents.
type UIFramework string

const (
	UIFrameworkLegacy      UIFramework = "legacy"
	UIFrameworkDeclarative UIFramework = "declarative"
)

// ParseUIFramework normalises a configured framework name; empty means legacy.
func ParseUIFramework(s string) UIFramework {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UIFrameworkLegacy
	}
	return UIFramework(s)
}

// Settings is one snapshot of the layered settings the demo reads.
type Settings struct {
	AuthorizationOverride string
	UseMockedPayPalFlow   bool
	UseTokenizationKey    bool
	Environment           Environment
	UIFramework           UIFramework
}

// SettingsSource yields the current settings snapshot.
type SettingsSource interface {
	DemoSettings() Settings
}

// StaticSettings is a SettingsSource that always returns itself.
type StaticSettings Settings

func (s StaticSettings) DemoSettings() Settings { return Settings(s) }
