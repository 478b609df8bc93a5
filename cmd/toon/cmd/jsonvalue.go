package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	toon "github.com/cwbudde/go-toon"
)

// jsonToValue converts a parsed JSON document into a *toon.Value tree,
// preserving object key order from the source text (gjson.ForEach walks
// object members and array elements in source order; Result.Map, which
// would lose it, is deliberately not used here).
func jsonToValue(r gjson.Result) *toon.Value {
	switch {
	case r.IsArray():
		var elems []*toon.Value
		r.ForEach(func(_, v gjson.Result) bool {
			elems = append(elems, jsonToValue(v))
			return true
		})
		return toon.Array(elems...)
	case r.IsObject():
		var fields []toon.Field
		r.ForEach(func(k, v gjson.Result) bool {
			fields = append(fields, toon.Field{Key: k.String(), Value: jsonToValue(v)})
			return true
		})
		return toon.Object(fields...)
	default:
		switch r.Type {
		case gjson.String:
			return toon.String(r.String())
		case gjson.Number:
			return toon.Number(r.Float())
		case gjson.True:
			return toon.Bool(true)
		case gjson.False:
			return toon.Bool(false)
		default:
			return toon.Null()
		}
	}
}

// valueToJSON converts a *toon.Value tree into plain Go values suitable
// for encoding/json.Marshal.
func valueToJSON(v *toon.Value) any {
	switch v.Kind() {
	case toon.KindNull:
		return nil
	case toon.KindBool:
		return v.BoolValue()
	case toon.KindNumber:
		return v.NumberValue()
	case toon.KindString:
		return v.StringValue()
	case toon.KindArray:
		elems := v.Elements()
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = valueToJSON(e)
		}
		return out
	case toon.KindObject:
		return orderedObject(v.Fields())
	default:
		panic(fmt.Sprintf("toon: unreachable value kind %v", v.Kind()))
	}
}

// orderedObject marshals a TOON object's fields in their original order.
// encoding/json sorts map[string]any keys alphabetically, which would
// silently undo the order jsonToValue above takes care to preserve; this
// is the same json.Marshaler idiom internal/jsonvalue.Value uses in the
// teacher, applied so that object-key order actually survives the trip.
type orderedObject []toon.Field

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(valueToJSON(f.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
