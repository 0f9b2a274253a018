// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps how much CUE input ParseAndDecode accepts.
// Configuration files are a few hundred bytes; anything near this limit is
// not a config file.
const DefaultMaxFileSize int64 = 1 << 20

type (
	// Option customizes a ParseAndDecode call.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
		concrete    bool
	}
)

func defaultOptions() options {
	return options{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
	}
}

// WithFilename sets the file name used in CUE positions and error messages.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(o *options) {
		o.maxFileSize = size
	}
}

// WithConcrete controls whether every field must resolve to a concrete value.
// Config files leave most fields out, so the config loader passes false.
func WithConcrete(concrete bool) Option {
	return func(o *options) {
		o.concrete = concrete
	}
}
