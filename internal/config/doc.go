// SPDX-License-Identifier: MPL-2.0

// Package config handles csvcheck configuration using Viper with CUE as the file format.
//
// The configuration file is csvcheck.cue. It is read from the path given with
// --config, otherwise from the platform config directory (for example
// $XDG_CONFIG_HOME/csvcheck/csvcheck.cue), otherwise from the working directory.
// Values are validated against the embedded CUE schema (config_schema.cue) before
// being merged over the defaults. CSVCHECK_* environment variables override both.
package config
