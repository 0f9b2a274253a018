// SPDX-License-Identifier: MPL-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ConradoAlmeida/cheatsheets/internal/storecsv"
)

// Header colors for the text report. They only show when the output is a
// color-capable terminal; piped output is plain.
const (
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorSuccess = lipgloss.Color("#10B981")
)

// Writer serializes a Document in a fixed format.
type Writer struct {
	format Format
	output io.Writer

	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
}

// NewWriter creates a new Writer with the specified format and output destination.
// If output is nil, os.Stdout will be used.
// If format is unknown, a warning goes to logger (log.Default() when nil) and
// the text format is used.
func NewWriter(format Format, output io.Writer, logger *log.Logger) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if logger == nil {
		logger = log.Default()
	}
	if format.IsUnknown() {
		logger.Warn("unknown format, defaulting to text", "format", format)
		format = FormatText
	}

	// A renderer bound to output picks the color profile of that writer,
	// not of stdout.
	r := lipgloss.NewRenderer(output)
	return &Writer{
		format:       format,
		output:       output,
		warningStyle: r.NewStyle().Bold(true).Foreground(colorWarning),
		errorStyle:   r.NewStyle().Bold(true).Foreground(colorError),
		successStyle: r.NewStyle().Foreground(colorSuccess),
	}
}

// Format returns the writer's output format.
func (w *Writer) Format() Format {
	return w.format
}

// Write outputs doc in the configured format.
func (w *Writer) Write(doc *Document) error {
	switch w.format {
	case FormatText:
		return w.writeText(doc)
	case FormatJSON:
		return w.writeJSON(doc)
	case FormatYAML:
		return w.writeYAML(doc)
	case FormatTOML:
		return w.writeTOML(doc)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) writeText(doc *Document) error {
	ew := &errWriter{w: w.output}

	if warnings := doc.messages(storecsv.SeverityWarning); len(warnings) > 0 {
		ew.println(w.warningStyle.Render("WARNINGS:"))
		for _, msg := range warnings {
			ew.println("  - " + msg)
		}
	}
	if errs := doc.messages(storecsv.SeverityError); len(errs) > 0 {
		ew.println(w.errorStyle.Render("ERRORS:"))
		for _, msg := range errs {
			ew.println("  - " + msg)
		}
		return ew.err
	}

	if doc.Passed() {
		ew.println(w.successStyle.Render(fmt.Sprintf("CSV validation passed with %d warnings.", doc.Warnings)))
	} else {
		ew.println(w.errorStyle.Render(fmt.Sprintf("CSV validation failed with %d warnings.", doc.Warnings)))
	}
	return ew.err
}

func (w *Writer) writeJSON(doc *Document) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) writeYAML(doc *Document) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return nil
}

func (w *Writer) writeTOML(doc *Document) error {
	encoder := toml.NewEncoder(w.output)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to serialize to TOML: %w", err)
	}
	return nil
}

// errWriter keeps the first write error so a listing can be written without
// checking every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
