// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and persistence
// helpers for the demo. It uses Viper for file/env/flag parsing and exposes
// utility functions to read/write configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "dropin-demo"
	envPrefix  = "dropin_demo"
)

// RuntimeOS is overridable by tests that exercise system paths.
var RuntimeOS = runtime.GOOS

var (
	usedMu   sync.Mutex
	usedFile string
)

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch RuntimeOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "DropinDemo")
		default: // Linux, macOS, etc.
			configDir = "/etc/dropin-demo"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "dropin-demo")
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// ConfigFileUsed returns the file the last LoadConfig call read, or "" when
// it ran on defaults, environment and flags only.
func ConfigFileUsed() string {
	usedMu.Lock()
	defer usedMu.Unlock()
	return usedFile
}

// LoadConfig builds T from defaults, the first config file found, DROPIN_DEMO_*
// environment variables and the command's flags, in increasing precedence.
// When no config file is found the fully populated value is returned together
// with a viper.ConfigFileNotFoundError so callers can decide to write one.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	// 3. An explicit --config path has the highest precedence for files.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	} else if isEmptyFile(v.ConfigFileUsed()) {
		notFound = viper.ConfigFileNotFoundError{}
	}

	// 6. Read from environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. cli
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	usedMu.Lock()
	if notFound != nil {
		usedFile = ""
	} else {
		usedFile = v.ConfigFileUsed()
	}
	usedMu.Unlock()

	return c, notFound
}

func isEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Size() == 0
}

// WriteConfigFile marshals c as YAML into the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo marshals c as YAML into path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file may carry an authorization override.
	return os.WriteFile(path, data, 0600)
}
