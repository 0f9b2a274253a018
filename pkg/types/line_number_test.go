// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestLineNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value         LineNumber
		wantErr       bool
		wantFileLevel bool
	}{
		{value: 0, wantFileLevel: true},
		{value: 1},
		{value: 4096},
		{value: -1, wantErr: true},
	}

	for _, tt := range tests {
		err := tt.value.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("LineNumber(%d).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidLineNumber) {
			t.Errorf("LineNumber(%d).Validate() error does not wrap ErrInvalidLineNumber: %v", tt.value, err)
		}
		if got := tt.value.IsFileLevel(); got != tt.wantFileLevel {
			t.Errorf("LineNumber(%d).IsFileLevel() = %v, want %v", tt.value, got, tt.wantFileLevel)
		}
	}

	if got := LineNumber(12).String(); got != "12" {
		t.Errorf("LineNumber(12).String() = %q, want %q", got, "12")
	}
}
