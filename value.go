package toon

import "github.com/cwbudde/go-toon/internal/value"

// Value is a tagged union over the six TOON variants: Null, Bool, Number,
// String, Array, and Object. Construct one with the functions below;
// values are immutable once built.
type Value = value.Value

// Kind identifies which variant a Value holds.
type Kind = value.Kind

// The six Value variants.
const (
	KindNull   = value.KindNull
	KindBool   = value.KindBool
	KindNumber = value.KindNumber
	KindString = value.KindString
	KindArray  = value.KindArray
	KindObject = value.KindObject
)

// Field is a single object key/value pair, retained in insertion order.
type Field = value.Field

// Null returns the Null value.
func Null() *Value { return value.Null() }

// Bool returns a Bool value.
func Bool(b bool) *Value { return value.Bool(b) }

// Number returns a Number value. NaN and ±Inf normalize to Null; -0
// normalizes to 0.
func Number(n float64) *Value { return value.Number(n) }

// String returns a String value.
func String(s string) *Value { return value.String(s) }

// Array returns an Array value wrapping the given elements in order.
func Array(elems ...*Value) *Value { return value.Array(elems...) }

// Object returns an Object value with the given fields, preserving order.
func Object(fields ...Field) *Value { return value.Object(fields...) }

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Value) bool { return value.Equal(a, b) }
