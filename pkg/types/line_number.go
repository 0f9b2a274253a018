// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidLineNumber is the sentinel error wrapped by InvalidLineNumberError.
var ErrInvalidLineNumber = errors.New("invalid line number")

type (
	// LineNumber is a 1-based physical line number in a text file.
	// The zero value marks a file-level location that has no line.
	LineNumber int

	// InvalidLineNumberError is returned when a LineNumber is negative.
	InvalidLineNumberError struct {
		Value LineNumber
	}
)

// Error implements the error interface.
func (e *InvalidLineNumberError) Error() string {
	return fmt.Sprintf("invalid line number %d (must be >= 0)", e.Value)
}

// Unwrap returns ErrInvalidLineNumber for errors.Is() compatibility.
func (e *InvalidLineNumberError) Unwrap() error { return ErrInvalidLineNumber }

// Validate returns an error if the LineNumber is negative.
func (n LineNumber) Validate() error {
	if n < 0 {
		return &InvalidLineNumberError{Value: n}
	}
	return nil
}

// IsFileLevel reports whether the location refers to the file as a whole.
func (n LineNumber) IsFileLevel() bool { return n == 0 }

// String returns the decimal string representation of the LineNumber.
func (n LineNumber) String() string { return strconv.Itoa(int(n)) }
