// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps parsed documents at 5MB. Configuration files
// larger than this are rejected rather than fed to the evaluator.
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

type (
	// parseOptions collects the tunable parts of a parse.
	parseOptions struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option adjusts how ParseAndDecode treats its input.
	Option func(*parseOptions)
)

func defaultOptions() parseOptions {
	return parseOptions{maxFileSize: DefaultMaxFileSize, concrete: true}
}

// WithMaxFileSize overrides the DefaultMaxFileSize cap.
func WithMaxFileSize(size int64) Option {
	return func(o *parseOptions) { o.maxFileSize = size }
}

// WithConcrete controls whether unification must produce concrete values.
// Defaults to true; pass false for documents where unset optional fields
// are expected.
func WithConcrete(concrete bool) Option {
	return func(o *parseOptions) { o.concrete = concrete }
}

// WithFilename names the source file in error output.
func WithFilename(name string) Option {
	return func(o *parseOptions) { o.filename = name }
}
