// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for csvcheck.
//
// This package implements the Cobra command hierarchy: the root command with
// its global flags, `validate`, `explain`, and `config show`. Commands are
// built per invocation from an App, so tests can run them in-process.
package cmd
