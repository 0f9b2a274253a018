// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ConradoAlmeida/cheatsheets/internal/discovery"
	"github.com/ConradoAlmeida/cheatsheets/internal/issue"
	"github.com/ConradoAlmeida/cheatsheets/internal/report"
	"github.com/ConradoAlmeida/cheatsheets/internal/storecsv"
	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

// validateFlags holds the `csvcheck validate` flag values.
type validateFlags struct {
	root          string
	format        string
	failOnWarning bool
}

// newValidateCommand creates the `csvcheck validate` command.
// Without arguments, it validates the configured data file under the repository root.
// With a path argument, it validates that file.
func newValidateCommand(app *App) *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate the data file",
		Long: `Validate the cheatsheet data file.

Without arguments, the file is data_file from the configuration (default
_data/store-data.csv) under the repository root: the nearest parent of the
working directory that contains .git, or the directory given with --root.

Warnings and errors are listed in detection order. The exit status is 1 when
any error is found (or any warning, with --fail-on-warning) and 0 otherwise.

Examples:
  csvcheck validate                          Validate the repository's data file
  csvcheck validate ./other.csv              Validate a specific file
  csvcheck validate --root ../site           Validate another checkout
  csvcheck validate --format yaml            Print a YAML report`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			return runValidate(cmd, app, flags, arg)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "repository root to resolve the data file against")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "report format: "+strings.Join(report.SupportedFormats(), ", ")+" (default from config, else text)")
	cmd.Flags().BoolVar(&flags.failOnWarning, "fail-on-warning", false, "exit with status 1 when there are warnings")

	return cmd
}

func runValidate(cmd *cobra.Command, app *App, flags *validateFlags, arg string) error {
	ctx := cmd.Context()
	cfg := app.cfg

	formatName := cfg.Report.Format.String()
	if cmd.Flags().Changed("format") {
		formatName = flags.format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("select report format").
			WithSuggestion("Use one of: " + strings.Join(report.SupportedFormats(), ", ")).
			Wrap(err).
			BuildError()
	}

	failOnWarning := cfg.Report.FailOnWarning
	if cmd.Flags().Changed("fail-on-warning") {
		failOnWarning = flags.failOnWarning
	}

	resolved, err := discovery.Resolve(discovery.Options{
		Arg:      types.FilesystemPath(arg),
		Root:     types.FilesystemPath(flags.root),
		DataFile: cfg.DataFile.String(),
	})
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("resolve data file").
			WithSuggestion("Pass the file path explicitly: csvcheck validate <path>").
			Wrap(err).
			BuildError()
	}
	app.Logger.Debug("resolved data file", "path", resolved.Path, "source", resolved.Source)

	rep, err := storecsv.ValidateFile(ctx, resolved.Path)
	if err != nil {
		return validationError(resolved.Path, err)
	}

	doc := report.NewDocument(resolved.Path, rep, failOnWarning)
	if err := report.NewWriter(format, cmd.OutOrStdout(), app.Logger).Write(doc); err != nil {
		return err
	}
	app.Logger.Debug("validation finished", "status", doc.Status, "errors", doc.Errors, "warnings", doc.Warnings)

	if app.verbose {
		for _, f := range rep.Findings() {
			if f.Suggestion != "" {
				app.Logger.Debug("suggested value", "line", f.Line, "rule", f.Rule, "suggestion", f.Suggestion)
			}
		}
	}

	if code := rep.ExitCode(failOnWarning); !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}

// validationError turns a failure to read or decode an existing data file
// into an actionable error.
func validationError(path types.FilesystemPath, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	ctx := issue.NewErrorContext().
		WithOperation("validate data file").
		WithResource(path.String()).
		Wrap(err)

	switch {
	case errors.Is(err, storecsv.ErrInvalidEncoding):
		ctx.WithSuggestion("Save the file as UTF-8 (\"CSV UTF-8\" in most spreadsheet tools)").
			WithIssue(issue.InvalidEncodingId)
	default:
		ctx.WithSuggestion("Check that the path is a readable file, not a directory").
			WithIssue(issue.ReadFailedId)
	}

	return ctx.BuildError()
}
