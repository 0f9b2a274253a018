// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ConradoAlmeida/cheatsheets/internal/config"
)

// newConfigCommand creates the `csvcheck config` command tree.
// The configuration itself is loaded by the root command before these run.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect csvcheck configuration",
		Long: `Inspect csvcheck configuration.

The configuration file is csvcheck.cue. The first one found is used:
  - the file given with --config
  - Linux: $XDG_CONFIG_HOME/csvcheck/csvcheck.cue (default ~/.config)
    macOS: ~/Library/Application Support/csvcheck/csvcheck.cue
    Windows: %APPDATA%\csvcheck\csvcheck.cue
  - ./csvcheck.cue in the working directory

CSVCHECK_* environment variables (for example CSVCHECK_REPORT_FORMAT)
override values from the file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(app.cfg))
			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.cfg.Source != "" {
				_, err := fmt.Fprintln(out, app.cfg.Source)
				return err
			}
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "(using defaults; searched %s and ./%s)\n",
				filepath.Join(dir, config.FileName()), config.FileName())
			return err
		},
	})

	return cfgCmd
}
