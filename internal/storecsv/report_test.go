// SPDX-License-Identifier: MPL-2.0

package storecsv

import (
	"errors"
	"slices"
	"testing"

	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

func TestReportExitCode(t *testing.T) {
	t.Parallel()

	clean := &Report{}
	warned := &Report{}
	warned.add(RuleDuplicateKey, 3, "Line 3: duplicate", "")
	failed := &Report{}
	failed.add(RuleColumnCount, 2, "Line 2: expected 4 columns", "")

	tests := []struct {
		name          string
		report        *Report
		failOnWarning bool
		want          types.ExitCode
	}{
		{name: "clean", report: clean, want: types.ExitSuccess},
		{name: "clean strict", report: clean, failOnWarning: true, want: types.ExitSuccess},
		{name: "warnings only", report: warned, want: types.ExitSuccess},
		{name: "warnings only strict", report: warned, failOnWarning: true, want: types.ExitFailure},
		{name: "errors", report: failed, want: types.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.report.ExitCode(tt.failOnWarning); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.failOnWarning, got, tt.want)
			}
		})
	}
}

func TestReportFindingsIsACopy(t *testing.T) {
	t.Parallel()

	r := &Report{}
	r.add(RuleBlankLine, 2, "Line 2: blank/empty line not allowed", "")

	findings := r.Findings()
	findings[0].Message = "changed"

	if got := r.Errors(); !slices.Equal(got, []string{"Line 2: blank/empty line not allowed"}) {
		t.Errorf("Errors() = %q after mutating Findings() copy", got)
	}
}

func TestMissingFileReport(t *testing.T) {
	t.Parallel()

	r := MissingFileReport("/repo/_data/store-data.csv")
	if got, want := r.Errors(), []string{"Missing file: /repo/_data/store-data.csv"}; !slices.Equal(got, want) {
		t.Errorf("Errors() = %q, want %q", got, want)
	}
	if len(r.Warnings()) != 0 {
		t.Errorf("Warnings() = %q, want none", r.Warnings())
	}
	if r.ExitCode(false) != types.ExitFailure {
		t.Errorf("ExitCode() = %d, want %d", r.ExitCode(false), types.ExitFailure)
	}
}

func TestRuleIDs(t *testing.T) {
	t.Parallel()

	for _, rule := range Rules {
		parsed, err := ParseRuleID(rule.String())
		if err != nil || parsed != rule {
			t.Errorf("ParseRuleID(%q) = %q, %v", rule, parsed, err)
		}
	}

	if _, err := ParseRuleID("no-such-rule"); !errors.Is(err, ErrUnknownRule) {
		t.Errorf("ParseRuleID(unknown) error = %v, want ErrUnknownRule", err)
	}

	warnings := map[RuleID]bool{RuleDuplicateKey: true, RuleCategoryFormat: true}
	for _, rule := range Rules {
		want := SeverityError
		if warnings[rule] {
			want = SeverityWarning
		}
		if got := rule.Severity(); got != want {
			t.Errorf("%s.Severity() = %s, want %s", rule, got, want)
		}
	}
}
