// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ReportFormatText prints the human-readable WARNINGS/ERRORS report.
	// Defined locally to avoid coupling config to internal/report.
	ReportFormatText ReportFormat = "text"
	// ReportFormatJSON prints the report as JSON.
	ReportFormatJSON ReportFormat = "json"
	// ReportFormatYAML prints the report as YAML.
	ReportFormatYAML ReportFormat = "yaml"
	// ReportFormatTOML prints the report as TOML.
	ReportFormatTOML ReportFormat = "toml"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultDataFile is the data file path relative to the repository root.
	DefaultDataFile = "_data/store-data.csv"
)

var (
	// ErrInvalidReportFormat is returned when a ReportFormat value is not recognized.
	ErrInvalidReportFormat = errors.New("invalid report format")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDataFile is returned when the data file path is whitespace-only.
	ErrInvalidDataFile = errors.New("invalid data file")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ReportFormat selects how `csvcheck validate` prints its report.
	ReportFormat string

	// InvalidReportFormatError is returned when a ReportFormat value is not recognized.
	// It wraps ErrInvalidReportFormat for errors.Is() compatibility.
	InvalidReportFormatError struct {
		Value ReportFormat
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// DataFile is the data file path relative to the repository root.
	DataFile string

	// InvalidDataFileError is returned when a DataFile value is empty or whitespace-only.
	InvalidDataFileError struct {
		Value DataFile
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig and every collected field-level error.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// DataFile is the file validated when no path argument is given.
		DataFile DataFile `json:"data_file" mapstructure:"data_file"`
		// Report configures the validate command's output.
		Report ReportConfig `json:"report" mapstructure:"report"`
		// UI contains user interface settings.
		UI UIConfig `json:"ui" mapstructure:"ui"`

		// Source is the config file the values were read from.
		// It is empty when only defaults and environment variables apply.
		Source string `json:"-" mapstructure:"-"`
	}

	// ReportConfig configures the validation report.
	ReportConfig struct {
		// Format is the default output format.
		Format ReportFormat `json:"format" mapstructure:"format"`
		// FailOnWarning makes warnings fail the run like errors do.
		FailOnWarning bool `json:"fail_on_warning" mapstructure:"fail_on_warning"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme ("auto", "dark", "light").
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		Report: ReportConfig{
			Format:        ReportFormatText,
			FailOnWarning: false,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// String returns the string representation of the ReportFormat.
func (f ReportFormat) String() string { return string(f) }

// IsValid returns whether the ReportFormat is one of the defined formats.
func (f ReportFormat) IsValid() (bool, []error) {
	switch f {
	case ReportFormatText, ReportFormatJSON, ReportFormatYAML, ReportFormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidReportFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidReportFormatError.
func (e *InvalidReportFormatError) Error() string {
	return fmt.Sprintf("invalid report format %q (valid: text, json, yaml, toml)", e.Value)
}

// Unwrap returns ErrInvalidReportFormat for errors.Is() compatibility.
func (e *InvalidReportFormatError) Unwrap() error { return ErrInvalidReportFormat }

// String returns the string representation of the ColorScheme.
func (c ColorScheme) String() string { return string(c) }

// IsValid returns whether the ColorScheme is one of the defined color schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the DataFile.
func (d DataFile) String() string { return string(d) }

// IsValid returns whether the DataFile is non-empty and not whitespace-only.
func (d DataFile) IsValid() (bool, []error) {
	if strings.TrimSpace(string(d)) == "" {
		return false, []error{&InvalidDataFileError{Value: d}}
	}
	return true, nil
}

// Error implements the error interface for InvalidDataFileError.
func (e *InvalidDataFileError) Error() string {
	return fmt.Sprintf("invalid data file %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidDataFile for errors.Is() compatibility.
func (e *InvalidDataFileError) Unwrap() error { return ErrInvalidDataFile }

// IsValid returns whether the Config has valid fields.
// Boolean fields need no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.DataFile.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Report.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is()
// matches both the sentinel and the field-level sentinels.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
