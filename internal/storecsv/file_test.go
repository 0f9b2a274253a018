// SPDX-License-Identifier: MPL-2.0

package storecsv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

func writeDataFile(t *testing.T, content []byte) types.FilesystemPath {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store-data.csv")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return types.FilesystemPath(path)
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	path := writeDataFile(t, []byte(csvLines(header, "ls,lista,Minha Categoria,bash")))

	report, err := ValidateFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ValidateFile() error = %v", err)
	}
	if report.HasErrors() {
		t.Errorf("Errors() = %q, want none", report.Errors())
	}
	if len(report.Warnings()) != 1 {
		t.Errorf("Warnings() = %q, want exactly one", report.Warnings())
	}
}

func TestValidateFile_Missing(t *testing.T) {
	t.Parallel()

	path := types.FilesystemPath(filepath.Join(t.TempDir(), "_data", "store-data.csv"))

	report, err := ValidateFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ValidateFile() error = %v", err)
	}
	want := []string{"Missing file: " + path.String()}
	if got := report.Errors(); !slices.Equal(got, want) {
		t.Errorf("Errors() = %q, want %q", got, want)
	}
}

func TestValidateFile_InvalidUTF8(t *testing.T) {
	t.Parallel()

	path := writeDataFile(t, []byte("comandos,descricao,categoria,grupo\nls,\xff\xfe,X,bash\n"))

	_, err := ValidateFile(context.Background(), path)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("ValidateFile() error = %v, want ErrInvalidEncoding", err)
	}
}

func TestValidateFile_Directory(t *testing.T) {
	t.Parallel()

	_, err := ValidateFile(context.Background(), types.FilesystemPath(t.TempDir()))
	if err == nil {
		t.Error("ValidateFile() on a directory should return an error")
	}
}

func TestValidateFile_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ValidateFile(ctx, writeDataFile(t, []byte(header)))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ValidateFile() error = %v, want context.Canceled", err)
	}
}
