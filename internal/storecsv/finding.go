// SPDX-License-Identifier: MPL-2.0

package storecsv

import (
	"errors"
	"fmt"

	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

const (
	// SeverityError findings make the run fail.
	SeverityError Severity = "error"
	// SeverityWarning findings are advisory.
	SeverityWarning Severity = "warning"
)

const (
	// RuleMissingFile means the data file does not exist.
	RuleMissingFile RuleID = "missing-file"
	// RuleEmptyFile means the data file has no lines at all.
	RuleEmptyFile RuleID = "empty-file"
	// RuleHeaderMismatch means the first line is not the expected header.
	RuleHeaderMismatch RuleID = "header-mismatch"
	// RuleBlankLine means a data row is empty or only whitespace.
	RuleBlankLine RuleID = "blank-line"
	// RuleColumnCount means a data row does not have exactly four fields.
	RuleColumnCount RuleID = "column-count"
	// RuleUnbalancedQuote means a field holds a single stray double quote.
	RuleUnbalancedQuote RuleID = "unbalanced-quote"
	// RuleDuplicateKey means a (comandos, grupo) pair appeared before.
	RuleDuplicateKey RuleID = "duplicate-key"
	// RuleCategoryFormat means a multi-word category is not upper case.
	RuleCategoryFormat RuleID = "category-format"
)

// ErrUnknownRule is returned by ParseRuleID for identifiers that are not in Rules.
var ErrUnknownRule = errors.New("unknown rule")

type (
	// Severity classifies a finding.
	Severity string

	// RuleID names the check that produced a finding.
	RuleID string

	// Finding is one message produced while validating a file.
	Finding struct {
		Rule     RuleID           `json:"rule" yaml:"rule" toml:"rule"`
		Severity Severity         `json:"severity" yaml:"severity" toml:"severity"`
		Line     types.LineNumber `json:"line" yaml:"line" toml:"line"`
		Message  string           `json:"message" yaml:"message" toml:"message"`
		// Suggestion is an optional normalized replacement value.
		Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty" toml:"suggestion,omitempty"`
	}
)

// Rules lists every rule in the order checks run.
var Rules = []RuleID{
	RuleMissingFile,
	RuleEmptyFile,
	RuleHeaderMismatch,
	RuleBlankLine,
	RuleColumnCount,
	RuleUnbalancedQuote,
	RuleDuplicateKey,
	RuleCategoryFormat,
}

// ParseRuleID converts s into a known RuleID.
func ParseRuleID(s string) (RuleID, error) {
	for _, r := range Rules {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// Severity returns the severity every finding of this rule carries.
func (r RuleID) Severity() Severity {
	switch r {
	case RuleDuplicateKey, RuleCategoryFormat:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// String returns the rule identifier.
func (r RuleID) String() string { return string(r) }
