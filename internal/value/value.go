// Package value provides the in-memory tree representation shared by the
// TOON encoder and decoder. It mirrors the JSON data model (null, bool,
// number, string, array, object) but keeps object keys in insertion order,
// since TOON's tabular and expanded array forms depend on stable field
// ordering.
package value

import "math"

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Field is a single key/value pair of an object, retained in the order it
// was inserted.
type Field struct {
	Key   string
	Value *Value
}

// Value is a tagged union over the six TOON variants. The zero Value is
// Null. Values are treated as immutable once constructed: callers should
// not mutate a *Value shared with another tree without copying it first.
type Value struct {
	kind Kind

	b   bool
	n   float64
	s   string
	arr []*Value
	obj []Field
}

// Null returns the Null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a Bool value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Number returns a Number value. NaN and ±Inf are normalized to Null,
// matching the encoder's behavior of never emitting those as numbers.
// -0 normalizes to 0.
func Number(n float64) *Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Null()
	}
	if n == 0 {
		n = 0
	}
	return &Value{kind: KindNumber, n: n}
}

// String returns a String value.
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// Array returns an Array value wrapping the given elements in order. The
// slice is copied so the caller may reuse or mutate it afterward.
func Array(elems ...*Value) *Value {
	cp := make([]*Value, len(elems))
	copy(cp, elems)
	return &Value{kind: KindArray, arr: cp}
}

// Object returns an Object value with the given fields, preserving order.
// Duplicate keys are not rejected here; construction-time dedup is the
// caller's responsibility. The decoder enforces duplicate-key rejection
// itself (see internal/decoder).
func Object(fields ...Field) *Value {
	cp := make([]Field, len(fields))
	copy(cp, fields)
	return &Value{kind: KindObject, obj: cp}
}

// Kind reports the variant held by v. A nil receiver reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is Null (or nil).
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// BoolValue returns the boolean payload, or false if v is not a Bool.
func (v *Value) BoolValue() bool {
	if v == nil || v.kind != KindBool {
		return false
	}
	return v.b
}

// NumberValue returns the float64 payload, or 0 if v is not a Number.
func (v *Value) NumberValue() float64 {
	if v == nil || v.kind != KindNumber {
		return 0
	}
	return v.n
}

// StringValue returns the string payload, or "" if v is not a String.
func (v *Value) StringValue() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.s
}

// Elements returns the array elements in order, or nil if v is not an
// Array. The returned slice is a copy.
func (v *Value) Elements() []*Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	cp := make([]*Value, len(v.arr))
	copy(cp, v.arr)
	return cp
}

// Len returns the number of array elements, or 0 if v is not an Array.
func (v *Value) Len() int {
	if v == nil || v.kind != KindArray {
		return 0
	}
	return len(v.arr)
}

// At returns the element at index, or nil if out of range or v is not an
// Array.
func (v *Value) At(index int) *Value {
	if v == nil || v.kind != KindArray || index < 0 || index >= len(v.arr) {
		return nil
	}
	return v.arr[index]
}

// Fields returns the object's fields in insertion order, or nil if v is
// not an Object. The returned slice is a copy.
func (v *Value) Fields() []Field {
	if v == nil || v.kind != KindObject {
		return nil
	}
	cp := make([]Field, len(v.obj))
	copy(cp, v.obj)
	return cp
}

// Keys returns the object's keys in insertion order, or nil if v is not
// an Object.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.obj))
	for i, f := range v.obj {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key and true, or (nil, false) if v
// is not an Object or has no such key.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	for _, f := range v.obj {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Equal reports whether v and other are structurally equal: same variant,
// same payload, same array/object element order. Numbers are compared
// with Go's native float64 equality (so -0 == 0 and NaN != NaN), matching
// the round-trip invariants in the format specification.
func Equal(v, other *Value) bool {
	vk, otherKind := v.Kind(), other.Kind()
	if vk != otherKind {
		return false
	}
	switch vk {
	case KindNull:
		return true
	case KindBool:
		return v.BoolValue() == other.BoolValue()
	case KindNumber:
		return v.NumberValue() == other.NumberValue()
	case KindString:
		return v.StringValue() == other.StringValue()
	case KindArray:
		a, b := v.arr, other.arr
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case KindObject:
		a, b := v.obj, other.obj
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Key != b[i].Key || !Equal(a[i].Value, b[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
