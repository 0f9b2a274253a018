// SPDX-License-Identifier: MPL-2.0

package storecsv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

// ErrInvalidEncoding is returned when the data file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("data file is not valid UTF-8")

// ValidateFile reads path and validates its content. A missing file yields a
// report with a single missing-file error rather than a Go error; read and
// decode failures on an existing file are returned as errors.
func ValidateFile(ctx context.Context, path types.FilesystemPath) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("validation canceled: %w", err)
	}

	data, err := os.ReadFile(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return MissingFileReport(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	return Validate(string(data)), nil
}
