// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ConradoAlmeida/cheatsheets/internal/config"
	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. All Cobra command handlers
	// receive an App reference; per-invocation state (flags, loaded config) lives here.
	App struct {
		Config ConfigProvider
		Logger *log.Logger

		stdout io.Writer
		stderr io.Writer

		// Set by the root command's PersistentPreRunE.
		cfg     *config.Config
		verbose bool
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		Logger: log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: "csvcheck",
			Level:  log.WarnLevel,
		}),
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
	}
}

// loadConfig loads configuration for this invocation and applies the verbose
// setting. The --verbose flag wins over ui.verbose from the config.
func (a *App) loadConfig(ctx context.Context, configPath string, verboseFlag bool) error {
	a.setVerbose(verboseFlag)

	cfg, err := a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(configPath),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.setVerbose(verboseFlag || cfg.UI.Verbose)
	if cfg.Source != "" {
		a.Logger.Debug("loaded configuration", "path", cfg.Source)
	} else {
		a.Logger.Debug("no configuration file found, using defaults")
	}
	return nil
}

func (a *App) setVerbose(v bool) {
	a.verbose = v
	if v {
		a.Logger.SetLevel(log.DebugLevel)
	} else {
		a.Logger.SetLevel(log.WarnLevel)
	}
}
