// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ConradoAlmeida/cheatsheets/internal/config"
	"github.com/ConradoAlmeida/cheatsheets/internal/issue"
)

// newExplainCommand creates the `csvcheck explain` command.
func newExplainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [rule]",
		Short: "Explain a validation rule",
		Long: `Explain a validation rule or failure.

Without arguments, lists every rule identifier. With a rule identifier, renders
its documentation. Identifiers appear in JSON, YAML and TOML reports.

Examples:
  csvcheck explain
  csvcheck explain duplicate-key`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return listIssues(out)
			}

			is := issue.Get(issue.Id(args[0]))
			if is == nil {
				return issue.NewErrorContext().
					WithOperation("explain rule").
					WithResource(args[0]).
					WithSuggestion("Run 'csvcheck explain' to list the known rules").
					Wrap(fmt.Errorf("unknown rule %q", args[0])).
					BuildError()
			}

			rendered, err := is.Render(glamourStyle(out, app.cfg.UI.ColorScheme))
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", is.Id(), err)
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
}

func listIssues(w io.Writer) error {
	s := newStyles(lipgloss.NewRenderer(w))

	width := 0
	for _, is := range issue.Values() {
		width = max(width, len(is.Id()))
	}

	for _, is := range issue.Values() {
		id := fmt.Sprintf("%-*s", width, is.Id())
		if _, err := fmt.Fprintf(w, "%s  %s\n", s.rule.Render(id), s.muted.Render(is.Title())); err != nil {
			return err
		}
	}
	return nil
}

// glamourStyle picks the markdown style: "notty" when w is not a terminal,
// otherwise the configured color scheme.
func glamourStyle(w io.Writer, scheme config.ColorScheme) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "notty"
	}
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
