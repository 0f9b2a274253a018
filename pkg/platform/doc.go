// SPDX-License-Identifier: MPL-2.0

// Package platform names the operating systems whose conventions csvcheck
// follows when locating per-user files.
package platform
