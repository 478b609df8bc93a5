// Package decoder turns TOON text back into a value tree. It keeps a
// single mutable line cursor and walks it forward through a set of
// mutually recursive readers — one per grammar production — so that
// backtracking is impossible by construction and every error carries the
// exact line it was found on.
package decoder

import (
	"github.com/cwbudde/go-toon/internal/lexrules"
	"github.com/cwbudde/go-toon/internal/value"
)

// Config mirrors the subset of the public Options type the decoder
// actually needs; declared locally to avoid an import cycle with the root
// package.
type Config struct {
	IndentSize int
	Delimiter  lexrules.Delimiter
	Strict     bool
}

// Decoder parses TOON text into a *value.Value tree.
type Decoder struct {
	cfg Config
}

// New constructs a Decoder using cfg.
func New(cfg Config) *Decoder {
	return &Decoder{cfg: cfg}
}

// Decode parses source and returns the resulting tree, or the first
// decode error encountered.
func (d *Decoder) Decode(source string) (*value.Value, error) {
	p := newParser(source, d.cfg)
	return p.parseDocument()
}
