// SPDX-License-Identifier: MPL-2.0

package storecsv

import "strings"

const (
	// ColumnCommands holds the command (or key binding) being documented.
	ColumnCommands = "comandos"
	// ColumnDescription is the free-text description.
	ColumnDescription = "descricao"
	// ColumnCategory groups rows inside a page.
	ColumnCategory = "categoria"
	// ColumnGroup names the page (tool) the row belongs to.
	ColumnGroup = "grupo"

	byteOrderMark = "\ufeff"
)

// Header is the exact column list every data file must start with.
var Header = HeaderSpec{ColumnCommands, ColumnDescription, ColumnCategory, ColumnGroup}

// HeaderSpec is an ordered list of expected column names.
type HeaderSpec []string

// String joins the column names with commas, the form the header line is compared against.
func (h HeaderSpec) String() string { return strings.Join(h, ",") }

// Len is the number of columns every data row must have.
func (h HeaderSpec) Len() int { return len(h) }

// Matches reports whether a raw header line equals h once a leading
// byte-order mark and every space character are removed.
func (h HeaderSpec) Matches(line string) bool {
	return strings.ReplaceAll(stripBOM(line), " ", "") == h.String()
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, byteOrderMark)
}
