package toon

import "github.com/cwbudde/go-toon/internal/decoder"

// Decode parses source as TOON text under the given options and returns
// the resulting tree, or the first decode error encountered. Use
// AsDecodeError to recover the line/kind of a returned error.
func Decode(source string, opts ...Option) (*Value, error) {
	o := apply(opts)
	dec := decoder.New(decoder.Config{
		IndentSize: o.IndentSize,
		Delimiter:  o.Delimiter,
		Strict:     o.Strict,
	})
	return dec.Decode(source)
}
