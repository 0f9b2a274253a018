// SPDX-License-Identifier: MPL-2.0

package storecsv

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validate checks the full text of a data file and returns its findings.
//
// An empty file or a header mismatch stops validation with a single error.
// Every other problem is recorded against its row and the scan goes on.
func Validate(content string) *Report {
	report := &Report{}

	lines := splitLines(content)
	if len(lines) == 0 {
		report.add(RuleEmptyFile, 0, "CSV is empty", "")
		return report
	}

	if !Header.Matches(lines[0]) {
		report.add(RuleHeaderMismatch, 1,
			fmt.Sprintf("Header mismatch. Got: %q Expected: %q", stripBOM(lines[0]), Header.String()), "")
		return report
	}

	c := newRowChecker(report)
	// rows[0] is the header record.
	for _, row := range readRows(lines)[1:] {
		c.check(row)
	}

	return report
}

// rowChecker applies the per-row rules. Its key set lives for one Validate call.
type rowChecker struct {
	report *Report
	seen   map[Key]struct{}
	upper  cases.Caser
	title  cases.Caser
}

func newRowChecker(report *Report) *rowChecker {
	return &rowChecker{
		report: report,
		seen:   make(map[Key]struct{}),
		upper:  cases.Upper(language.Und),
		title:  cases.Title(language.Und),
	}
}

func (c *rowChecker) check(row Row) {
	if row.IsBlank() {
		c.report.add(RuleBlankLine, row.Line,
			fmt.Sprintf("Line %d: blank/empty line not allowed", row.Line), "")
		return
	}

	if row.IsComment() {
		return
	}

	if len(row.Fields) != Header.Len() {
		c.report.add(RuleColumnCount, row.Line,
			fmt.Sprintf("Line %d: expected %d columns, got %d -> %q", row.Line, Header.Len(), len(row.Fields), row.Fields), "")
		return
	}

	// A lone quote is the signature of an unterminated quoted segment. Even
	// counts are not inspected.
	for _, field := range row.Fields {
		if strings.Count(field, `"`) == 1 {
			c.report.add(RuleUnbalancedQuote, row.Line,
				fmt.Sprintf("Line %d: unbalanced double quote in field %q", row.Line, field), "")
		}
	}

	key := row.Key()
	if _, dup := c.seen[key]; dup {
		c.report.add(RuleDuplicateKey, row.Line,
			fmt.Sprintf("Line %d: duplicate command+group %s", row.Line, key), "")
	} else {
		c.seen[key] = struct{}{}
	}

	if category := row.Category(); c.needsNormalizing(category) {
		c.report.add(RuleCategoryFormat, row.Line,
			fmt.Sprintf("Line %d: category not normalized (consider title case or uppercase): %q", row.Line, category),
			c.suggestCategory(category))
	}
}

// needsNormalizing flags multi-word categories that are not already upper
// case. Single words are accepted in any case.
func (c *rowChecker) needsNormalizing(category string) bool {
	return category != "" &&
		c.upper.String(category) != category &&
		strings.Contains(category, " ")
}

// suggestCategory proposes a replacement: title case when that changes the
// value, upper case otherwise.
func (c *rowChecker) suggestCategory(category string) string {
	if titled := c.title.String(category); titled != category {
		return titled
	}
	return c.upper.String(category)
}
