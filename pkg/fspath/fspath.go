// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath and os.Stat
// that accept and return types.FilesystemPath, so path handling in discovery
// and config stays typed end to end.
package fspath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ConradoAlmeida/cheatsheets/pkg/types"
)

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments such as "_data" or "store-data.csv".
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Dir wraps filepath.Dir for FilesystemPath.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Abs wraps filepath.Abs for FilesystemPath. Returns an error if the
// underlying OS call fails.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// IsAbs wraps filepath.IsAbs for FilesystemPath.
func IsAbs(p types.FilesystemPath) bool {
	return filepath.IsAbs(string(p))
}

// IsFile reports whether p exists and is not a directory.
func IsFile(p types.FilesystemPath) bool {
	info, err := os.Stat(string(p))
	return err == nil && !info.IsDir()
}

// Exists reports whether anything (file or directory) exists at p.
func Exists(p types.FilesystemPath) bool {
	_, err := os.Stat(string(p))
	return err == nil
}
