// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "select report format"},
			want: "failed to select report format",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "validate data file", Resource: "_data/store-data.csv"},
			want: "failed to validate data file: _data/store-data.csv",
		},
		{
			name: "full",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "csvcheck.cue",
				Issue:     ConfigLoadFailedId,
				Cause:     errors.New("report.format: conflicting values"),
			},
			want: "failed to load configuration: csvcheck.cue: report.format: conflicting values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("open store-data.csv: %w", fs.ErrPermission)
	err := NewErrorContext().WithOperation("validate data file").Wrap(cause).BuildError()

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	var ae *ActionableError
	if !errors.As(err, &ae) || ae.Cause != cause {
		t.Errorf("errors.As() = %+v, want cause %v", ae, cause)
	}
}

func TestActionableError_ExplainHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		issue Id
		want  string
	}{
		{InvalidEncodingId, "Run 'csvcheck explain invalid-encoding' for details"},
		{ReadFailedId, "Run 'csvcheck explain read-failed' for details"},
		{"", ""},
		{"no-such-entry", ""},
	}

	for _, tt := range tests {
		e := &ActionableError{Operation: "validate data file", Issue: tt.issue}
		if got := e.ExplainHint(); got != tt.want {
			t.Errorf("ExplainHint() with issue %q = %q, want %q", tt.issue, got, tt.want)
		}
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "validate data file",
		Resource:    "latin1.csv",
		Issue:       InvalidEncodingId,
		Suggestions: []string{"Save the file as UTF-8"},
		Cause:       fmt.Errorf("latin1.csv: %w", errors.New("data file is not valid UTF-8")),
	}

	want := "failed to validate data file: latin1.csv: latin1.csv: data file is not valid UTF-8\n" +
		"\n  • Save the file as UTF-8" +
		"\n  • Run 'csvcheck explain invalid-encoding' for details"
	if got := err.Format(false); got != want {
		t.Errorf("Format(false) =\n%s\nwant\n%s", got, want)
	}

	verbose := err.Format(true)
	if !strings.HasPrefix(verbose, want) {
		t.Errorf("Format(true) should start with the plain format, got:\n%s", verbose)
	}
	for _, line := range []string{
		"\n\nError chain:",
		"\n  1. latin1.csv: data file is not valid UTF-8",
		"\n  2. data file is not valid UTF-8",
	} {
		if !strings.Contains(verbose, line) {
			t.Errorf("Format(true) missing %q, got:\n%s", line, verbose)
		}
	}

	if len(err.Suggestions) != 1 {
		t.Errorf("Format() must not modify Suggestions, got %q", err.Suggestions)
	}
}

func TestActionableError_FormatWithoutBullets(t *testing.T) {
	t.Parallel()

	err := &ActionableError{Operation: "explain rule", Resource: "nope"}
	if got, want := err.Format(true), "failed to explain rule: nope"; got != want {
		t.Errorf("Format(true) = %q, want %q", got, want)
	}
}

func TestErrorContext_BuildError(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().WithResource("x.csv").Wrap(errors.New("boom")).BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}

	ctx := NewErrorContext().
		WithOperation("load configuration").
		WithResource("csvcheck.cue").
		WithSuggestion("Check the CUE syntax").
		WithSuggestion("Verify the values", "Print the effective configuration").
		WithIssue(ConfigLoadFailedId)

	var first *ActionableError
	if !errors.As(ctx.BuildError(), &first) {
		t.Fatal("BuildError() should return *ActionableError")
	}
	wantSuggestions := []string{"Check the CUE syntax", "Verify the values", "Print the effective configuration"}
	if strings.Join(first.Suggestions, "|") != strings.Join(wantSuggestions, "|") {
		t.Errorf("Suggestions = %q, want %q", first.Suggestions, wantSuggestions)
	}
	if first.Issue != ConfigLoadFailedId || first.Resource != "csvcheck.cue" {
		t.Errorf("BuildError() = %+v", first)
	}

	ctx.WithSuggestion("later")
	if len(first.Suggestions) != 3 {
		t.Errorf("built error changed after the context was reused: %q", first.Suggestions)
	}
}
