// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for the demo using the Cobra
// library. It defines the root command (the demo screen), the merchant
// server and inspection subcommands, the shared flags and the entry point.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/dropindemo/buildvars"
	"github.com/toeirei/dropindemo/internal/config"
	"github.com/toeirei/dropindemo/internal/demo"
	"github.com/toeirei/dropindemo/internal/i18n"
	"github.com/toeirei/dropindemo/internal/logging"
	"github.com/toeirei/dropindemo/internal/merchant"
	"github.com/toeirei/dropindemo/ui/tui"
	"github.com/toeirei/dropindemo/ui/tui/models/views/container"
)

const modulePath = "github.com/toeirei/dropindemo"

var version = buildvars.VersionOrDefault("dev") // set by the linker through buildvars
var gitCommit = commitOrDefault("dev")
var buildDate = "" // set at build time (RFC3339)
var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// configPath is the settings file the demo screen watches. It is either the
// file LoadConfig read or the default file written on first run.
var configPath string

func commitOrDefault(def string) string {
	if buildvars.Commit != "" {
		return buildvars.Commit
	}
	return def
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	// Load optional config file argument from cli
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	configPath = config.ConfigFileUsed()
	// A "file not found" error is expected on first run, so we handle it specifically.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if optionalConfigPath != nil {
			// An empty file was passed explicitly; keep watching it.
			configPath = *optionalConfigPath
		} else if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			// The demo runs fine on defaults.
			logging.Warnf("could not write default config file: %v", writeErr)
		} else if path, pathErr := config.GetConfigPath(false); pathErr == nil {
			configPath = path
			logging.Infof("wrote default config to %s", path)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	setupLogging(cmd.ErrOrStderr())
	i18n.Init(appConfig.Language)
	return nil
}

// setupLogging points the logger at w with the configured level; --verbose
// overrides it with debug output.
func setupLogging(w io.Writer) {
	logging.Setup(w, appConfig.LogLevel)
	if verbose {
		logging.SetDebug(true)
	}
}

// reloadSettings re-reads the watched settings file with the same flag and
// environment layering as startup.
func reloadSettings(cmd *cobra.Command) (demo.SettingsSource, error) {
	var path *string
	if configPath != "" {
		p := configPath
		path = &p
	}
	c, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil, err
	}
	appConfig = c
	return c, nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// runDemo starts the demo screen. The terminal belongs to the UI while it
// runs, so logs go to a file instead of stderr.
func runDemo(cmd *cobra.Command, args []string) error {
	if f, err := logging.OpenFile(logging.DefaultFilePath()); err == nil {
		defer f.Close()
		defer setupLogging(cmd.ErrOrStderr())
		setupLogging(f)
	} else {
		setupLogging(io.Discard)
	}

	defaultPath, _ := config.GetConfigPath(false)
	client := merchant.NewClient(appConfig.Merchant.URL, appConfig.Merchant.Timeout)
	logging.Infof("starting demo against merchant server %s", appConfig.Merchant.URL)

	return tui.Run(cmd.Context(), container.Config{
		Settings: appConfig,
		API:      client,
		Factory:  container.NewFactory(),
		LoadSettings: func() (demo.SettingsSource, error) {
			return reloadSettings(cmd)
		},
		ConfigPath:        configPath,
		DefaultConfigPath: defaultPath,
	})
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dropin-demo",
		Short: "Drop-in Demo exercises a payment UI against a demo merchant server.",
		Long: `Drop-in Demo resolves an authorization from its settings, starts a
payment flow in the terminal and spends the resulting nonce against a
merchant server. Run 'dropin-demo serve' to start the merchant server
and 'dropin-demo' to start the demo screen.

Settings are read from dropin-demo.yaml, DROPIN_DEMO_* environment
variables and flags. Saving the settings file restarts the payment flow.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runDemo,
	}
	// Cobra prints this for --version/-V before any hook runs.
	cmd.Version = compositeVersion()

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("log_level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("merchant.url", "http://localhost:9090", "Merchant server base URL")
	applySettingsFlags(cmd)

	cmd.AddCommand(
		newServeCmd(),
		newResolveCmd(),
		newTransactionCmd(),
		newVersionCmd(),
	)
	return cmd
}

// applySettingsFlags adds the flags that shape the authorization and the UI
// framework. They are only meaningful for the demo screen and resolve.
func applySettingsFlags(cmd *cobra.Command) {
	if cmd.Flags().Lookup("environment") != nil {
		return
	}
	cmd.Flags().String("authorization_override", "", "Authorization used verbatim, skipping every other source")
	cmd.Flags().Bool("use_mocked_paypal_flow", false, "Use the mocked PayPal flow tokenization key")
	cmd.Flags().Bool("use_tokenization_key", false, "Use the environment's tokenization key instead of fetching a client token")
	cmd.Flags().String("environment", string(demo.EnvironmentSandbox), "Environment (development, sandbox, production)")
	cmd.Flags().String("ui_framework", string(demo.UIFrameworkLegacy), "UI framework (legacy, declarative)")
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
	// The version command needs neither settings nor logging.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil }
	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != "dev" {
		composite = composite + " (" + c + ")"
	}
	if d != "" {
		composite = composite + " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, if no version was discovered, but a gitCommit was
	// provided via ldflags, show that to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
