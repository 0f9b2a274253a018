// SPDX-License-Identifier: MPL-2.0

// Package report writes validation results as plain text or as a
// machine-readable JSON, YAML or TOML document.
package report
