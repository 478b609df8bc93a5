// Package encoder walks a value tree and renders it as TOON text. It
// chooses, for every array, exactly one of the three shapes the format
// defines (inline, tabular, expanded list) per the precedence rule in the
// format specification, and defers all quoting/escaping/delimiter
// decisions to internal/lexrules so the decoder and encoder never
// disagree about what is ambiguous.
package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-toon/internal/lexrules"
	"github.com/cwbudde/go-toon/internal/value"
)

// Config mirrors the subset of the public Options type the encoder
// actually needs; it is declared here (rather than importing the root
// package) to avoid an import cycle between the scaffolding package and
// its internal components.
type Config struct {
	IndentSize      int
	Delimiter       lexrules.Delimiter
	UseLengthMarker bool
}

// Encoder renders a *value.Value tree into TOON text.
type Encoder struct {
	cfg   Config
	lines []string
}

// New constructs an Encoder using cfg.
func New(cfg Config) *Encoder {
	return &Encoder{cfg: cfg}
}

// Encode renders root and returns the document text. There is no trailing
// newline; an empty root object renders as the empty string.
func (e *Encoder) Encode(root *value.Value) (string, error) {
	e.lines = nil
	if err := e.encodeRoot(root); err != nil {
		return "", err
	}
	return strings.Join(e.lines, "\n"), nil
}

func (e *Encoder) emit(line string) {
	e.lines = append(e.lines, line)
}

func (e *Encoder) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth*e.cfg.IndentSize)
}

func (e *Encoder) encodeRoot(v *value.Value) error {
	switch v.Kind() {
	case value.KindNull, value.KindBool, value.KindNumber, value.KindString:
		e.emit(formatPrimitive(v, e.cfg.Delimiter))
		return nil
	case value.KindObject:
		if len(v.Fields()) == 0 {
			return nil
		}
		return e.encodeObject(v, 0)
	case value.KindArray:
		return e.encodeArray("", v, 0, true)
	default:
		return fmt.Errorf("toon: unsupported root value kind %v", v.Kind())
	}
}

func (e *Encoder) encodeObject(obj *value.Value, depth int) error {
	indent := e.indent(depth)
	for _, field := range obj.Fields() {
		keyLiteral := encodeKey(field.Key)
		switch field.Value.Kind() {
		case value.KindNull, value.KindBool, value.KindNumber, value.KindString:
			e.emit(indent + keyLiteral + ": " + formatPrimitive(field.Value, e.cfg.Delimiter))
		case value.KindObject:
			if len(field.Value.Fields()) == 0 {
				e.emit(indent + keyLiteral + ":")
				continue
			}
			e.emit(indent + keyLiteral + ":")
			if err := e.encodeObject(field.Value, depth+1); err != nil {
				return err
			}
		case value.KindArray:
			if err := e.encodeArray(field.Key, field.Value, depth, false); err != nil {
				return err
			}
		default:
			return fmt.Errorf("toon: unsupported field %q of kind %v", field.Key, field.Value.Kind())
		}
	}
	return nil
}

// encodeArray renders arr, which is a property value under key unless root
// is true (key is then ignored). The "array without key in non-root
// non-list context" structural error described by the specification is
// therefore impossible: every call site either supplies a key (an empty
// one is written quoted) or passes root context explicitly.
func (e *Encoder) encodeArray(key string, arr *value.Value, depth int, root bool) error {
	indent := e.indent(depth)
	delim := e.cfg.Delimiter
	elems := arr.Elements()

	keyLiteral := ""
	if !root {
		keyLiteral = encodeKey(key)
	}

	if isPrimitiveArray(elems) {
		header := renderHeader(keyLiteral, len(elems), delim, e.cfg.UseLengthMarker, nil)
		line := indent + header
		if len(elems) > 0 {
			tokens := make([]string, len(elems))
			for i, el := range elems {
				tokens[i] = formatPrimitive(el, delim)
			}
			line += " " + strings.Join(tokens, string(delim.Rune()))
		}
		e.emit(line)
		return nil
	}

	if fields, ok := detectTabular(elems); ok {
		header := renderHeader(keyLiteral, len(elems), delim, e.cfg.UseLengthMarker, fields)
		e.emit(indent + header)
		rowIndent := e.indent(depth + 1)
		for _, row := range elems {
			cells := make([]string, len(fields))
			for i, f := range fields {
				child, _ := row.Get(f)
				cells[i] = formatPrimitive(child, delim)
			}
			e.emit(rowIndent + strings.Join(cells, string(delim.Rune())))
		}
		return nil
	}

	header := renderHeader(keyLiteral, len(elems), delim, e.cfg.UseLengthMarker, nil)
	e.emit(indent + header)
	for _, item := range elems {
		if err := e.encodeListItem(item, depth+1, delim); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeListItem(item *value.Value, depth int, delim lexrules.Delimiter) error {
	switch item.Kind() {
	case value.KindNull, value.KindBool, value.KindNumber, value.KindString:
		e.emit(e.indent(depth) + "- " + formatPrimitive(item, delim))
		return nil
	case value.KindObject:
		return e.encodeObjectListItem(item, depth)
	case value.KindArray:
		return e.encodeArrayAsListItem("", item, depth)
	default:
		return fmt.Errorf("toon: unsupported list item kind %v", item.Kind())
	}
}

// encodeArrayAsListItem renders arr as the value following a "- " marker:
// the header line (inline, tabular, or expanded) carries the "- " prefix,
// and any body rows/items sit at depth+1. keyLiteral is non-empty when
// this array is itself the first field of an object list item (so the
// hyphen line reads "- key[n]: ..." instead of just "- [n]: ...").
func (e *Encoder) encodeArrayAsListItem(keyLiteral string, arr *value.Value, depth int) error {
	delim := e.cfg.Delimiter
	indent := e.indent(depth)
	elems := arr.Elements()

	if isPrimitiveArray(elems) {
		header := renderHeader(keyLiteral, len(elems), delim, e.cfg.UseLengthMarker, nil)
		line := indent + "- " + header
		if len(elems) > 0 {
			tokens := make([]string, len(elems))
			for i, el := range elems {
				tokens[i] = formatPrimitive(el, delim)
			}
			line += " " + strings.Join(tokens, string(delim.Rune()))
		}
		e.emit(line)
		return nil
	}

	if fields, ok := detectTabular(elems); ok {
		header := renderHeader(keyLiteral, len(elems), delim, e.cfg.UseLengthMarker, fields)
		e.emit(indent + "- " + header)
		rowIndent := e.indent(depth + 1)
		for _, row := range elems {
			cells := make([]string, len(fields))
			for i, f := range fields {
				child, _ := row.Get(f)
				cells[i] = formatPrimitive(child, delim)
			}
			e.emit(rowIndent + strings.Join(cells, string(delim.Rune())))
		}
		return nil
	}

	header := renderHeader(keyLiteral, len(elems), delim, e.cfg.UseLengthMarker, nil)
	e.emit(indent + "- " + header)
	for _, item := range elems {
		if err := e.encodeListItem(item, depth+1, delim); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeObjectListItem(obj *value.Value, depth int) error {
	fields := obj.Fields()
	if len(fields) == 0 {
		e.emit(e.indent(depth) + "- {}")
		return nil
	}
	first := fields[0]
	indent := e.indent(depth)
	switch first.Value.Kind() {
	case value.KindNull, value.KindBool, value.KindNumber, value.KindString:
		e.emit(indent + "- " + encodeKey(first.Key) + ": " + formatPrimitive(first.Value, e.cfg.Delimiter))
	case value.KindArray:
		if err := e.encodeArrayAsListItem(encodeKey(first.Key), first.Value, depth); err != nil {
			return err
		}
	default:
		e.emit(indent + "-")
		return e.encodeObject(obj, depth+1)
	}
	if len(fields) > 1 {
		rest := value.Object(fields[1:]...)
		return e.encodeObject(rest, depth+1)
	}
	return nil
}

func detectTabular(elems []*value.Value) ([]string, bool) {
	if len(elems) == 0 {
		return nil, false
	}
	first := elems[0]
	if first.Kind() != value.KindObject {
		return nil, false
	}
	firstFields := first.Fields()
	if len(firstFields) == 0 {
		return nil, false
	}
	names := make([]string, len(firstFields))
	for i, f := range firstFields {
		if !isPrimitive(f.Value) {
			return nil, false
		}
		names[i] = f.Key
	}
	for _, row := range elems[1:] {
		if row.Kind() != value.KindObject {
			return nil, false
		}
		rowFields := row.Fields()
		if len(rowFields) != len(names) {
			return nil, false
		}
		for i, f := range rowFields {
			if f.Key != names[i] || !isPrimitive(f.Value) {
				return nil, false
			}
		}
	}
	return names, true
}

func isPrimitive(v *value.Value) bool {
	switch v.Kind() {
	case value.KindNull, value.KindBool, value.KindNumber, value.KindString:
		return true
	default:
		return false
	}
}

func isPrimitiveArray(elems []*value.Value) bool {
	for _, v := range elems {
		if !isPrimitive(v) {
			return false
		}
	}
	return true
}

func renderHeader(keyLiteral string, length int, delim lexrules.Delimiter, useMarker bool, fields []string) string {
	var b strings.Builder
	b.WriteString(keyLiteral)
	b.WriteByte('[')
	if useMarker {
		b.WriteByte('#')
	}
	b.WriteString(strconv.Itoa(length))
	b.WriteString(delim.HeaderSuffix())
	b.WriteByte(']')
	if len(fields) > 0 {
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteRune(delim.Rune())
			}
			b.WriteString(encodeKey(f))
		}
		b.WriteByte('}')
	}
	b.WriteByte(':')
	return b.String()
}

func encodeKey(key string) string {
	if lexrules.IsValidUnquotedKey(key) {
		return key
	}
	return lexrules.Quote(key)
}

func formatPrimitive(v *value.Value, delim lexrules.Delimiter) string {
	switch v.Kind() {
	case value.KindNull:
		return "null"
	case value.KindBool:
		if v.BoolValue() {
			return "true"
		}
		return "false"
	case value.KindNumber:
		return formatNumber(v.NumberValue())
	case value.KindString:
		s := v.StringValue()
		if lexrules.NeedsQuoting(s, delim) {
			return lexrules.Quote(s)
		}
		return s
	default:
		return "null"
	}
}

// formatNumber renders n without scientific notation, trimming trailing
// fractional zeros, with -0 normalized to 0.
func formatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	s := strconv.FormatFloat(n, 'f', -1, 64)
	return s
}
