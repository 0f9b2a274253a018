// SPDX-License-Identifier: MPL-2.0

package fspath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ConradoAlmeida/cheatsheets/pkg/fspath"
	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

func TestJoinStr(t *testing.T) {
	t.Parallel()

	got := fspath.JoinStr(types.FilesystemPath("repo"), "_data", "store-data.csv")
	want := types.FilesystemPath(filepath.Join("repo", "_data", "store-data.csv"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

func TestDir(t *testing.T) {
	t.Parallel()

	got := fspath.Dir(types.FilesystemPath("repo/_data/store-data.csv"))
	want := types.FilesystemPath(filepath.Dir("repo/_data/store-data.csv"))
	if got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	got, err := fspath.Abs(types.FilesystemPath("store-data.csv"))
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}
	if !fspath.IsAbs(got) {
		t.Errorf("Abs() = %q, want an absolute path", got)
	}
}

func TestIsFileAndExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "store-data.csv")
	if err := os.WriteFile(file, []byte("comandos,descricao,categoria,grupo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fspath.IsFile(types.FilesystemPath(file)) {
		t.Errorf("IsFile(%q) = false, want true", file)
	}
	if fspath.IsFile(types.FilesystemPath(dir)) {
		t.Errorf("IsFile(%q) = true for a directory, want false", dir)
	}
	if !fspath.Exists(types.FilesystemPath(dir)) {
		t.Errorf("Exists(%q) = false, want true", dir)
	}
	missing := types.FilesystemPath(filepath.Join(dir, "missing.csv"))
	if fspath.Exists(missing) || fspath.IsFile(missing) {
		t.Errorf("Exists/IsFile(%q) = true for a missing path", missing)
	}
}
