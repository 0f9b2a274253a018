// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry. Validation rule entries use the rule's
// identifier verbatim so `csvcheck explain <rule>` can look them up directly.
type Id string

const (
	MissingFileId     Id = "missing-file"
	EmptyFileId       Id = "empty-file"
	HeaderMismatchId  Id = "header-mismatch"
	BlankLineId       Id = "blank-line"
	ColumnCountId     Id = "column-count"
	UnbalancedQuoteId Id = "unbalanced-quote"
	DuplicateKeyId    Id = "duplicate-key"
	CategoryFormatId  Id = "category-format"

	InvalidEncodingId  Id = "invalid-encoding"
	ReadFailedId       Id = "read-failed"
	ConfigLoadFailedId Id = "config-load-failed"
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	title    string      // one-line summary shown by `explain` without arguments
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue document with the given glamour style
// ("auto", "dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			sb.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(sb.String(), stylePath)
}

const (
	rfc4180Link   HttpLink = "https://www.rfc-editor.org/rfc/rfc4180"
	utf8Link      HttpLink = "https://www.rfc-editor.org/rfc/rfc3629"
	cueConfigLink HttpLink = "https://cuelang.org/docs/"
)

var (
	render = glamour.Render

	missingFileIssue = &Issue{
		id:    MissingFileId,
		title: "the data file does not exist",
		mdMsg: `
# Missing file

The data file could not be found at the resolved path, so nothing was validated.

## How the path is resolved
1. The positional argument, when one is given
2. ` + "`--root`" + ` joined with ` + "`data_file`" + ` from the configuration
3. The nearest parent directory containing ` + "`.git`" + `, joined with ` + "`data_file`" + `

## Things you can try
- Pass the file explicitly:
~~~
$ csvcheck validate _data/store-data.csv
~~~
- Run the command from inside the repository, or pass ` + "`--root`" + `.`,
	}

	emptyFileIssue = &Issue{
		id:    EmptyFileId,
		title: "the file has no lines at all",
		mdMsg: `
# CSV is empty

The file exists but contains no lines. A valid file has at least the header:

~~~
comandos,descricao,categoria,grupo
~~~`,
	}

	headerMismatchIssue = &Issue{
		id:    HeaderMismatchId,
		title: "the first line is not the expected header",
		mdMsg: `
# Header mismatch

The first line must name the four columns, in this order:

~~~
comandos,descricao,categoria,grupo
~~~

A leading UTF-8 byte order mark is ignored, and so are spaces anywhere on the
line. Tabs, different column names, or a different order are not accepted.
Validation stops at this error.`,
	}

	blankLineIssue = &Issue{
		id:    BlankLineId,
		title: "a row is empty or has only blank fields",
		mdMsg: `
# Blank line

Empty lines, and rows whose fields are all blank (for example ` + "`,,,`" + `),
are not allowed anywhere after the header. This includes blank lines at the end
of the file beyond the final line break.

## Things you can try
- Delete the line.
- To keep a visual separator, use a comment row starting with ` + "`#`" + `.`,
	}

	columnCountIssue = &Issue{
		id:    ColumnCountId,
		title: "a row does not have exactly four fields",
		mdMsg: `
# Wrong column count

Every data row must have exactly four fields. A comma inside a value must be
protected by double quotes:

~~~
"git log --format=%h,%s",Short log,Git,history
~~~

The error lists the fields the row was split into, which usually shows where an
unquoted comma is.`,
		extLinks: []HttpLink{rfc4180Link},
	}

	unbalancedQuoteIssue = &Issue{
		id:    UnbalancedQuoteId,
		title: "a field contains a single double quote",
		mdMsg: `
# Unbalanced double quote

A field that ends up with exactly one ` + "`\"`" + ` character is almost always a
typo: an opening quote without its closing pair, or a literal quote that was
not doubled.

## Things you can try
- Quote the whole field and double the literal quote:
~~~
"echo ""hi""",Print a greeting,Shell,basics
~~~`,
		extLinks: []HttpLink{rfc4180Link},
	}

	duplicateKeyIssue = &Issue{
		id:    DuplicateKeyId,
		title: "(warning) the same command appears twice in one group",
		mdMsg: `
# Duplicate command + group

Two rows share the same ` + "`comandos`" + ` and ` + "`grupo`" + ` values after
trimming spaces. Only the second and later occurrences are reported.

This is a warning: the run still passes unless ` + "`--fail-on-warning`" + ` is set.`,
	}

	categoryFormatIssue = &Issue{
		id:    CategoryFormatId,
		title: "(warning) a multi-word category is not normalized",
		mdMsg: `
# Category not normalized

A ` + "`categoria`" + ` value with spaces should be written in uppercase so the
listing groups it consistently. Single-word values are accepted as they are.

| Value             | Result  |
|-------------------|---------|
| ` + "`OUTROS`" + `          | ok      |
| ` + "`unica`" + `           | ok      |
| ` + "`CONTROLE DE VERSAO`" + ` | ok      |
| ` + "`Minha Categoria`" + ` | warning |

Machine-readable reports include a suggested replacement.`,
	}

	invalidEncodingIssue = &Issue{
		id:    InvalidEncodingId,
		title: "the file is not valid UTF-8",
		mdMsg: `
# Invalid encoding

The data file must be UTF-8. Files saved as Latin-1 or Windows-1252 by a
spreadsheet tool are rejected before any row is checked.

## Things you can try
- Re-save the file choosing "CSV UTF-8".
- Convert it:
~~~
$ iconv -f WINDOWS-1252 -t UTF-8 store-data.csv > store-data.utf8.csv
~~~`,
		extLinks: []HttpLink{utf8Link},
	}

	readFailedIssue = &Issue{
		id:    ReadFailedId,
		title: "the data file exists but could not be read",
		mdMsg: `
# Read failed

The file was found but reading it failed, typically because of permissions or
because the path names a directory.`,
	}

	configLoadFailedIssue = &Issue{
		id:    ConfigLoadFailedId,
		title: "csvcheck.cue could not be loaded",
		mdMsg: `
# Configuration could not be loaded

The configuration file is CUE and is checked against a fixed schema:

~~~cue
data_file: "_data/store-data.csv"
report: {
	format:          "text" // or "json", "yaml", "toml"
	fail_on_warning: false
}
ui: {
	color_scheme: "auto" // or "dark", "light"
	verbose:      false
}
~~~

## Things you can try
- Print the effective configuration:
~~~
$ csvcheck config show
~~~
- Run with ` + "`--verbose`" + ` to see which file was loaded.`,
		extLinks: []HttpLink{cueConfigLink},
	}

	issues = []*Issue{
		missingFileIssue,
		emptyFileIssue,
		headerMismatchIssue,
		blankLineIssue,
		columnCountIssue,
		unbalancedQuoteIssue,
		duplicateKeyIssue,
		categoryFormatIssue,
		invalidEncodingIssue,
		readFailedIssue,
		configLoadFailedIssue,
	}
)

// Values returns every catalog entry in display order.
func Values() []*Issue {
	return slices.Clone(issues)
}

// Get returns the entry for id, or nil when there is none.
func Get(id Id) *Issue {
	i := slices.IndexFunc(issues, func(is *Issue) bool { return is.id == id })
	if i < 0 {
		return nil
	}
	return issues[i]
}
