// SPDX-License-Identifier: MPL-2.0

// Package discovery locates the repository root and resolves which data file
// `csvcheck validate` checks.
//
// Resolution order:
//   - an explicit path argument, used as given
//   - the --root flag joined with the configured data file
//   - the nearest ancestor of the working directory containing .git, joined with the data file
//   - the working directory itself, joined with the data file
package discovery
