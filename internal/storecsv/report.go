// SPDX-License-Identifier: MPL-2.0

package storecsv

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

// Report holds the findings of one validation run in detection order.
// Findings are never reordered or deduplicated.
type Report struct {
	findings []Finding
}

// MissingFileReport is the report for a data file that does not exist.
func MissingFileReport(path types.FilesystemPath) *Report {
	r := &Report{}
	r.add(RuleMissingFile, 0, fmt.Sprintf("Missing file: %s", path), "")
	return r
}

func (r *Report) add(rule RuleID, line types.LineNumber, message, suggestion string) {
	r.findings = append(r.findings, Finding{
		Rule:       rule,
		Severity:   rule.Severity(),
		Line:       line,
		Message:    message,
		Suggestion: suggestion,
	})
}

// Findings returns a copy of every finding.
func (r *Report) Findings() []Finding {
	return slices.Clone(r.findings)
}

// Errors returns the error messages in detection order.
func (r *Report) Errors() []string {
	return r.messages(SeverityError)
}

// Warnings returns the warning messages in detection order.
func (r *Report) Warnings() []string {
	return r.messages(SeverityWarning)
}

func (r *Report) messages(sev Severity) []string {
	var out []string
	for _, f := range r.findings {
		if f.Severity == sev {
			out = append(out, f.Message)
		}
	}
	return out
}

// HasErrors reports whether any error finding was recorded.
func (r *Report) HasErrors() bool {
	return slices.ContainsFunc(r.findings, func(f Finding) bool { return f.Severity == SeverityError })
}

// Passed reports whether the run should be considered clean. With
// failOnWarning, warnings count against the run as well.
func (r *Report) Passed(failOnWarning bool) bool {
	if failOnWarning {
		return len(r.findings) == 0
	}
	return !r.HasErrors()
}

// ExitCode maps the report to the process exit status.
func (r *Report) ExitCode(failOnWarning bool) types.ExitCode {
	if r.Passed(failOnWarning) {
		return types.ExitSuccess
	}
	return types.ExitFailure
}
