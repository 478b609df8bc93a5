package toon

import "github.com/cwbudde/go-toon/internal/encoder"

// Encode renders v as TOON text under the given options (Default()
// overridden by any Option passed). There is no trailing newline; an
// empty root object renders as the empty string.
func Encode(v *Value, opts ...Option) (string, error) {
	o := apply(opts)
	enc := encoder.New(encoder.Config{
		IndentSize:      o.IndentSize,
		Delimiter:       o.Delimiter,
		UseLengthMarker: o.UseLengthMarker,
	})
	return enc.Encode(v)
}
