// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"strings"
	"time"

	"github.com/toeirei/dropindemo/internal/demo"
)

// Config is the on-disk and in-memory configuration of the demo.
type Config struct {
	AuthorizationOverride string `mapstructure:"authorization_override" yaml:"authorization_override"`
	UseMockedPayPalFlow   bool   `mapstructure:"use_mocked_paypal_flow" yaml:"use_mocked_paypal_flow"`
	UseTokenizationKey    bool   `mapstructure:"use_tokenization_key" yaml:"use_tokenization_key"`
	Environment           string `mapstructure:"environment" yaml:"environment"`
	UIFramework           string `mapstructure:"ui_framework" yaml:"ui_framework"`
	Language              string `mapstructure:"language" yaml:"language"`
	LogLevel              string `mapstructure:"log_level" yaml:"log_level"`

	Merchant struct {
		URL     string        `mapstructure:"url" yaml:"url"`
		Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	} `mapstructure:"merchant" yaml:"merchant"`

	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`

	Server struct {
		Addr string `mapstructure:"addr" yaml:"addr"`
	} `mapstructure:"server" yaml:"server"`
}

// Defaults returns the viper defaults every command starts from.
func Defaults() map[string]any {
	return map[string]any{
		"authorization_override": "",
		"use_mocked_paypal_flow": false,
		"use_tokenization_key":   false,
		"environment":            string(demo.EnvironmentSandbox),
		"ui_framework":           string(demo.UIFrameworkLegacy),
		"language":               "en",
		"log_level":              "info",
		"merchant.url":           "http://localhost:9090",
		"merchant.timeout":       "10s",
		"database.type":          "sqlite",
		"database.dsn":           "./dropin-demo.db",
		"server.addr":            "localhost:9090",
	}
}

// DemoSettings projects the settings the authorization resolver and the
// integration controller consume.
func (c Config) DemoSettings() demo.Settings {
	return demo.Settings{
		AuthorizationOverride: strings.TrimSpace(c.AuthorizationOverride),
		UseMockedPayPalFlow:   c.UseMockedPayPalFlow,
		UseTokenizationKey:    c.UseTokenizationKey,
		Environment:           demo.ParseEnvironment(c.Environment),
		UIFramework:           demo.ParseUIFramework(c.UIFramework),
	}
}

// Config implements demo.SettingsSource
var _ demo.SettingsSource = Config{}
