// SPDX-License-Identifier: MPL-2.0

// Package cueutil wraps the CUE steps csvcheck uses to read its configuration
// file:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema's root definition
//  3. Validate and decode into a Go value
//
// # Usage
//
//	//go:embed config_schema.cue
//	var configSchema string
//
//	result, err := cueutil.ParseAndDecodeString[map[string]any](
//	    configSchema,
//	    data,
//	    "#Config",
//	    cueutil.WithFilename("csvcheck.cue"),
//	    cueutil.WithConcrete(false),
//	)
//
// Errors carry the file name and a JSON-style path to the offending field,
// e.g. "csvcheck.cue: report.format: 3 errors in empty disjunction".
package cueutil
