// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ConradoAlmeida/cheatsheets/internal/testutil"
	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

const dataFile = "_data/store-data.csv"

// newRepo creates a temp directory with a .git marker and a nested subdirectory.
func newRepo(t *testing.T, markerIsFile bool) (root, nested string) {
	t.Helper()
	root = t.TempDir()
	marker := filepath.Join(root, RepoMarker)
	if markerIsFile {
		if err := os.WriteFile(marker, []byte("gitdir: ../elsewhere\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	} else if err := os.Mkdir(marker, 0o755); err != nil {
		t.Fatal(err)
	}
	nested = filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	return root, nested
}

func TestSource_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source Source
		want   string
	}{
		{SourceArgument, "argument"},
		{SourceRootFlag, "--root"},
		{SourceRepository, "repository root"},
		{SourceWorkingDir, "working directory"},
		{Source(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.source.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestFindRoot(t *testing.T) {
	t.Parallel()

	for _, markerIsFile := range []bool{false, true} {
		root, nested := newRepo(t, markerIsFile)

		got, ok := FindRoot(types.FilesystemPath(nested))
		if !ok {
			t.Fatalf("FindRoot(%q) found nothing (marker file: %v)", nested, markerIsFile)
		}
		if string(got) != root {
			t.Errorf("FindRoot(%q) = %q, want %q", nested, got, root)
		}

		got, ok = FindRoot(types.FilesystemPath(root))
		if !ok || string(got) != root {
			t.Errorf("FindRoot(root) = (%q, %v), want (%q, true)", got, ok, root)
		}
	}
}

func TestResolve_Argument(t *testing.T) {
	t.Parallel()

	got, err := Resolve(Options{Arg: "some/file.csv", Root: "/ignored", DataFile: dataFile})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Path != "some/file.csv" || got.Source != SourceArgument || got.Root != "" {
		t.Errorf("Resolve() = %+v, want argument path used as given", got)
	}
}

func TestResolve_ArgumentWhitespace(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Options{Arg: "  "})
	if !errors.Is(err, types.ErrInvalidFilesystemPath) {
		t.Errorf("Resolve() error = %v, want ErrInvalidFilesystemPath", err)
	}
}

func TestResolve_RootFlag(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	got, err := Resolve(Options{Root: types.FilesystemPath(root), DataFile: dataFile})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := filepath.Join(root, "_data", "store-data.csv")
	if string(got.Path) != want || got.Source != SourceRootFlag {
		t.Errorf("Resolve() = %+v, want path %q from --root", got, want)
	}
}

func TestResolve_Repository(t *testing.T) {
	t.Parallel()

	root, nested := newRepo(t, false)
	got, err := Resolve(Options{WorkDir: types.FilesystemPath(nested), DataFile: dataFile})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if string(got.Root) != root || got.Source != SourceRepository {
		t.Errorf("Resolve() = %+v, want root %q", got, root)
	}
	if want := filepath.Join(root, "_data", "store-data.csv"); string(got.Path) != want {
		t.Errorf("Path = %q, want %q", got.Path, want)
	}
}

func TestResolve_WorkingDirFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if found, ok := FindRoot(types.FilesystemPath(dir)); ok {
		t.Skipf("temp dir is inside a repository at %s", found)
	}

	got, err := Resolve(Options{WorkDir: types.FilesystemPath(dir), DataFile: dataFile})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if string(got.Root) != dir || got.Source != SourceWorkingDir {
		t.Errorf("Resolve() = %+v, want working dir %q", got, dir)
	}
}

func TestResolve_AbsoluteDataFile(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "elsewhere.csv")
	got, err := Resolve(Options{Root: types.FilesystemPath(t.TempDir()), DataFile: abs})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if string(got.Path) != abs {
		t.Errorf("Path = %q, want absolute data file %q", got.Path, abs)
	}
}

func TestResolve_NoDataFile(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Options{Root: "/x"})
	if !errors.Is(err, ErrNoDataFile) {
		t.Errorf("Resolve() error = %v, want ErrNoDataFile", err)
	}
}

func TestResolve_DefaultsToProcessWorkingDirectory(t *testing.T) {
	root := testutil.MustMkdirRepo(t, t.TempDir())
	nested := filepath.Join(root, "posts")
	testutil.MustWriteFile(t, nested, "hello.md", "# hi\n")
	t.Cleanup(testutil.MustChdir(t, nested))

	got, err := Resolve(Options{DataFile: dataFile})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Source != SourceRepository {
		t.Errorf("Source = %v, want %v", got.Source, SourceRepository)
	}
	// Compare against the resolved cwd; the temp dir may sit behind a symlink.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(filepath.Dir(wd), filepath.FromSlash(dataFile)); got.Path.String() != want {
		t.Errorf("Path = %q, want %q", got.Path, want)
	}
}
