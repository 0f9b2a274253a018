// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func mockRender(t *testing.T) {
	t.Helper()
	originalRender := render
	t.Cleanup(func() { render = originalRender })
	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}
}

func TestId_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[Id]bool)
	for _, is := range Values() {
		if seen[is.Id()] {
			t.Errorf("duplicate ID: %s", is.Id())
		}
		seen[is.Id()] = true
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id      Id
		wantNil bool
	}{
		{MissingFileId, false},
		{HeaderMismatchId, false},
		{CategoryFormatId, false},
		{ConfigLoadFailedId, false},
		{Id("no-such-rule"), true},
		{Id(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			t.Parallel()
			got := Get(tt.id)
			if (got == nil) != tt.wantNil {
				t.Fatalf("Get(%q) = %v, wantNil %v", tt.id, got, tt.wantNil)
			}
			if got != nil && got.Id() != tt.id {
				t.Errorf("Get(%q).Id() = %q", tt.id, got.Id())
			}
		})
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	t.Parallel()

	msg := Get(HeaderMismatchId).MarkdownMsg()
	if !strings.Contains(string(msg), "comandos,descricao,categoria,grupo") {
		t.Errorf("MarkdownMsg() = %q, should show the expected header", msg)
	}
}

func TestIssue_ExtLinks(t *testing.T) {
	t.Parallel()

	is := Get(ColumnCountId)
	links := is.ExtLinks()
	if len(links) == 0 {
		t.Fatal("ExtLinks() returned no links")
	}

	// Mutating the returned slice must not affect the catalog.
	links[0] = "modified"
	if is.ExtLinks()[0] == "modified" {
		t.Error("ExtLinks() should return a copy")
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	mockRender(t)

	out, err := Get(UnbalancedQuoteId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "## See also") {
		t.Error("Render() should add a See also section")
	}
	if !strings.Contains(out, "- <"+string(rfc4180Link)+">") {
		t.Errorf("Render() should list each link on its own line, got:\n%s", out)
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	mockRender(t)

	is := Get(DuplicateKeyId)
	out, err := is.Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, "See also") {
		t.Error("Render() should not add See also without links")
	}
	if out != string(is.MarkdownMsg()) {
		t.Error("Render() without links should pass the markdown through unchanged")
	}
}

func TestValues_ReturnsCopy(t *testing.T) {
	t.Parallel()

	all := Values()
	if len(all) == 0 {
		t.Fatal("Values() returned empty slice")
	}
	all[0] = nil
	if Values()[0] == nil {
		t.Error("Values() should return a copy")
	}
}

func TestAllIssuesHaveContent(t *testing.T) {
	t.Parallel()

	for _, is := range Values() {
		if strings.TrimSpace(string(is.MarkdownMsg())) == "" {
			t.Errorf("issue %q has empty markdown", is.Id())
		}
		if is.Title() == "" {
			t.Errorf("issue %q has no title", is.Id())
		}
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	for _, is := range Values() {
		if _, err := is.Render("notty"); err != nil {
			t.Errorf("Render(%q) error = %v", is.Id(), err)
		}
	}
}
