package toon

import "github.com/cwbudde/go-toon/internal/lexrules"

// Delimiter selects the in-row separator used for array bodies and
// tabular cells.
type Delimiter = lexrules.Delimiter

// The three delimiters the format recognizes.
const (
	CommaDelimiter = lexrules.Comma
	TabDelimiter   = lexrules.Tab
	PipeDelimiter  = lexrules.Pipe
)

// Options configures a single encode or decode invocation. The zero value
// is not valid; use Default to obtain one with the
// documented defaults applied.
type Options struct {
	IndentSize      int
	Delimiter       Delimiter
	UseLengthMarker bool
	Strict          bool
}

// Default returns the options every encode/decode uses unless overridden:
// two-space indent, comma delimiter, no length marker, strict mode on.
func Default() Options {
	return Options{
		IndentSize:      2,
		Delimiter:       CommaDelimiter,
		UseLengthMarker: false,
		Strict:          true,
	}
}

// Option mutates an Options value. Encoders and Decoders both accept the
// same Option type so a single configuration helper can build both.
type Option func(*Options)

// WithIndentSize sets the number of spaces per structural level. Values
// outside [1,8] are clamped to the nearest bound.
func WithIndentSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		if n > 8 {
			n = 8
		}
		o.IndentSize = n
	}
}

// WithDelimiter sets the delimiter Encode uses for every array, declared
// in each header's suffix. Decode does not consult it: a header without a
// delimiter suffix is read as comma-delimited.
func WithDelimiter(d Delimiter) Option {
	return func(o *Options) { o.Delimiter = d }
}

// WithLengthMarker toggles the '#' length-marker prefix in array headers.
func WithLengthMarker(on bool) Option {
	return func(o *Options) { o.UseLengthMarker = on }
}

// WithStrict toggles strict-mode validation on decode.
func WithStrict(on bool) Option {
	return func(o *Options) { o.Strict = on }
}

// apply builds an Options value from Default plus the given overrides.
func apply(opts []Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
