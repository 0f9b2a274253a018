// SPDX-License-Identifier: MPL-2.0

// Package storecsv validates the four-column listing file (_data/store-data.csv)
// that feeds the cheatsheet pages.
//
// Validate is a pure function from file content to a Report. Structural
// problems (empty file, wrong header) stop validation early; row problems
// (blank rows, wrong column count, stray quotes) are collected and the scan
// continues; advisories (duplicate command+group keys, unnormalized
// categories) are reported as warnings and never affect the exit status.
//
// Rows whose first field, trimmed, starts with '#' are separator comments and
// are ignored entirely.
package storecsv
