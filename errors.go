package toon

import (
	"errors"

	"github.com/cwbudde/go-toon/internal/errs"
)

// DecodeError is a single decode failure: the rule that was violated, a
// 1-based source line, and (when known) a column.
type DecodeError = errs.DecodeError

// ErrorKind classifies a DecodeError into one of the three buckets the
// format's error model defines.
type ErrorKind = errs.Kind

// The three error kinds a DecodeError can carry.
const (
	StructuralError = errs.Structural
	LexicalError    = errs.Lexical
	SemanticError   = errs.Semantic
)

// AsDecodeError extracts the structured *DecodeError from err, if any.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	ok := errors.As(err, &de)
	return de, ok
}
