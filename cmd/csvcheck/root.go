// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ConradoAlmeida/cheatsheets/internal/issue"
	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	verbose    bool
	configPath string
}

// newRootCommand builds the command tree for one invocation.
func newRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "csvcheck",
		Short: "Validate the cheatsheet listing CSV",
		Long: TitleStyle.Render("csvcheck") + SubtitleStyle.Render(" - Validate the cheatsheet listing CSV") + `

csvcheck checks the four-column data file (comandos, descricao, categoria,
grupo) that drives the cheatsheet listing. Structural problems are errors and
fail the run; duplicate keys and unnormalized categories are warnings.

` + SubtitleStyle.Render("Examples:") + `
  csvcheck validate                     Validate _data/store-data.csv in this repository
  csvcheck validate path/to/file.csv    Validate a specific file
  csvcheck validate --format json       Print a machine-readable report
  csvcheck explain column-count         Explain a rule
  csvcheck config show                  Show the effective configuration`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.loadConfig(cmd.Context(), flags.configPath, flags.verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/csvcheck/csvcheck.cue, then ./csvcheck.cue)")

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(newValidateCommand(app))
	rootCmd.AddCommand(newExplainCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process with its status.
// This is called by main.main().
func Execute() {
	os.Exit(Run())
}

// Run executes the CLI with os.Args and returns the process exit status
// instead of exiting, so it can be driven in-process by tests.
func Run() int {
	return run(context.Background(), NewApp(Dependencies{}), os.Args[1:])
}

func run(ctx context.Context, app *App, args []string) int {
	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	return int(exitCodeFor(err))
}

// exitCodeFor maps a command error to a process exit status.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}

// handleError prints command errors to stderr. An ExitError without a cause
// has already been reported by the command and prints nothing.
func (a *App) handleError(w io.Writer, _ fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	s := newStyles(lipgloss.NewRenderer(w))
	fmt.Fprintln(w, s.errHead.Render("Error:")+" "+formatErrorForDisplay(err, a.verbose))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
