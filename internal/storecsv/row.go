// SPDX-License-Identifier: MPL-2.0

package storecsv

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

const (
	delimiter = ','
	quote     = '"'
)

// tokenizer states while reading one record.
const (
	startRecord tokenState = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
)

type (
	// Row is one record of the data file, tagged with the physical line it starts on.
	Row struct {
		Line   types.LineNumber
		Fields []string
	}

	// Key is the logical identity of a data row.
	Key struct {
		Commands string
		Group    string
	}

	tokenState int
)

// IsBlank reports whether the row has no fields or only whitespace fields.
func (r Row) IsBlank() bool {
	for _, f := range r.Fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// IsComment reports whether the first field, trimmed, starts with '#'.
// Only the first field is inspected: "x,#y,z,w" is data.
func (r Row) IsComment() bool {
	return len(r.Fields) > 0 && strings.HasPrefix(strings.TrimSpace(r.Fields[0]), "#")
}

// Key returns the row's (comandos, grupo) identity. The row must have Header.Len() fields.
func (r Row) Key() Key {
	return Key{
		Commands: strings.TrimSpace(r.Fields[0]),
		Group:    strings.TrimSpace(r.Fields[3]),
	}
}

// Category returns the raw categoria field. The row must have Header.Len() fields.
func (r Row) Category() string { return r.Fields[2] }

// String renders the key as ("comandos", "grupo").
func (k Key) String() string {
	return fmt.Sprintf("(%q, %q)", k.Commands, k.Group)
}

// isLineBreak reports whether r ends a line. Besides \n and \r this covers
// \v, \f, the file/group/record separators, NEL and the Unicode line and
// paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// splitLines splits content into lines, treating \r\n as a single break.
// A trailing line break does not produce an extra empty line, and empty
// content has no lines at all.
func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, content[start:i])
		i += size
		if r == '\r' && i < len(content) && content[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// readRows tokenizes lines as comma-separated records with lenient quoting.
// Every line yields a row, so blank lines survive as rows without fields.
// A quoted field left open at the end of a line continues on the next one;
// the record is numbered by the line it starts on.
func readRows(lines []string) []Row {
	var rows []Row
	for i := 0; i < len(lines); {
		fields, next := readRecord(lines, i)
		rows = append(rows, Row{Line: types.LineNumber(i + 1), Fields: fields})
		i = next
	}
	return rows
}

// readRecord reads the record starting at lines[i] and returns its fields
// together with the index of the first line after it.
//
// A quote at the start of a field opens a quoted section in which "" is a
// literal quote. A quote followed by anything other than a quote, comma or
// end of line closes the section and the rest of the field is read as plain
// text. Quotes inside plain text are kept as they are. Tokenizing never
// fails: a quoted section still open at the end of input ends the record.
func readRecord(lines []string, i int) ([]string, int) {
	var (
		fields []string
		field  strings.Builder
		state  = startRecord
	)
	save := func() {
		fields = append(fields, field.String())
		field.Reset()
	}

	for {
		for _, r := range lines[i] {
			switch state {
			case startRecord, startField:
				switch r {
				case quote:
					state = inQuotedField
				case delimiter:
					save()
					state = startField
				default:
					field.WriteRune(r)
					state = inField
				}
			case inField:
				if r == delimiter {
					save()
					state = startField
				} else {
					field.WriteRune(r)
				}
			case inQuotedField:
				if r == quote {
					state = quoteInQuotedField
				} else {
					field.WriteRune(r)
				}
			case quoteInQuotedField:
				switch r {
				case quote:
					field.WriteRune(quote)
					state = inQuotedField
				case delimiter:
					save()
					state = startField
				default:
					field.WriteRune(r)
					state = inField
				}
			}
		}
		i++

		switch {
		case state == startRecord:
			return nil, i
		case state == inQuotedField && i < len(lines):
			field.WriteByte('\n')
		default:
			save()
			return fields, i
		}
	}
}
