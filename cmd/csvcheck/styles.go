// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the CLI chrome (help text, explain listing, error display).
const (
	// ColorPrimary is purple, used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red, used for errors and failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber, used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, used for rule identifiers and commands.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// styles are the per-writer styles. A style bound to a renderer for a given
// writer degrades to plain text when that writer is not a terminal.
type styles struct {
	rule    lipgloss.Style
	muted   lipgloss.Style
	errHead lipgloss.Style
	warning lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		rule:    r.NewStyle().Foreground(ColorHighlight),
		muted:   r.NewStyle().Foreground(ColorMuted),
		errHead: r.NewStyle().Bold(true).Foreground(ColorError),
		warning: r.NewStyle().Foreground(ColorWarning),
	}
}
