package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-toon/internal/errs"
	"github.com/cwbudde/go-toon/internal/lexrules"
	"github.com/cwbudde/go-toon/internal/value"
)

// parser walks source one line at a time via an explicit cursor (pos),
// shared by every reader below. Readers never look behind pos; each
// leaves pos pointing just past whatever it consumed.
type parser struct {
	lines         []string
	pos           int
	cfg           Config
	source        string
	totalNonBlank int
}

func newParser(source string, cfg Config) *parser {
	norm := strings.ReplaceAll(source, "\r\n", "\n")
	var lines []string
	if norm != "" {
		lines = strings.Split(norm, "\n")
	}
	nonBlank := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonBlank++
		}
	}
	return &parser{lines: lines, cfg: cfg, source: source, totalNonBlank: nonBlank}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.lines) }

func (p *parser) current() string { return p.lines[p.pos] }

func (p *parser) isBlank(line string) bool { return strings.TrimSpace(line) == "" }

func (p *parser) skipBlanks() {
	for !p.atEnd() && p.isBlank(p.current()) {
		p.pos++
	}
}

// peekNonBlank scans forward from line index from without moving pos, returning the
// index and depth of the first non-blank line found.
func (p *parser) peekNonBlank(from int) (idx int, depth int, ok bool) {
	i := from
	for i < len(p.lines) {
		if !p.isBlank(p.lines[i]) {
			d, _, err := lexrules.ComputeIndent(p.lines[i], p.cfg.IndentSize, p.cfg.Strict)
			if err != nil {
				return i, 0, true
			}
			return i, d, true
		}
		i++
	}
	return 0, 0, false
}

func (p *parser) firstNonBlank(from int) int {
	idx, _, ok := p.peekNonBlank(from)
	if !ok {
		return -1
	}
	return idx
}

func (p *parser) computeIndentAt(idx int) (depth int, content string, err error) {
	depth, content, rerr := lexrules.ComputeIndent(p.lines[idx], p.cfg.IndentSize, p.cfg.Strict)
	if rerr != nil {
		return 0, "", p.errStructural(idx+1, rerr.Error())
	}
	return depth, content, nil
}

func (p *parser) errStructural(lineNo int, rule string) error {
	return errs.New(errs.Structural, rule, errs.Position{Line: lineNo}, p.source)
}

func (p *parser) errLexical(lineNo int, rule string) error {
	return errs.New(errs.Lexical, rule, errs.Position{Line: lineNo}, p.source)
}

func (p *parser) errSemantic(lineNo int, rule string) error {
	return errs.New(errs.Semantic, rule, errs.Position{Line: lineNo}, p.source)
}

// parseDocument implements root dispatch: empty input, root array, root
// primitive, or root object, in that precedence order.
func (p *parser) parseDocument() (*value.Value, error) {
	firstIdx := p.firstNonBlank(0)
	if firstIdx == -1 {
		if p.cfg.Strict {
			return nil, p.errStructural(1, "empty input")
		}
		return value.Object(), nil
	}

	depth, content, err := p.computeIndentAt(firstIdx)
	if err != nil {
		return nil, err
	}
	if depth != 0 {
		return nil, p.errStructural(firstIdx+1, "first line must be at depth 0")
	}

	if strings.HasPrefix(content, "[") {
		p.pos = firstIdx
		return p.parseRootArray()
	}

	if p.totalNonBlank == 1 && lexrules.IndexOutsideQuotes(content, ':') == -1 {
		v, err := p.parsePrimitive(content, firstIdx+1)
		if err != nil {
			return nil, err
		}
		p.pos = firstIdx + 1
		return v, nil
	}

	p.pos = firstIdx
	return p.parseObject(0)
}

func (p *parser) parseRootArray() (*value.Value, error) {
	lineNo := p.pos + 1
	_, content, err := p.computeIndentAt(p.pos)
	if err != nil {
		return nil, err
	}
	idx := lexrules.IndexOutsideQuotes(content, ':')
	if idx == -1 {
		return nil, p.errLexical(lineNo, "malformed array header")
	}
	headerRest := content[:idx]
	tail := strings.TrimLeft(content[idx+1:], " ")
	return p.parseArrayAfterHeader(headerRest, tail, 0, lineNo)
}

// parseObject reads consecutive key-value lines at depth until a shallower
// line (or EOF) is found.
func (p *parser) parseObject(depth int) (*value.Value, error) {
	var fields []value.Field
	seen := make(map[string]bool)

	for {
		p.skipBlanks()
		if p.atEnd() {
			break
		}
		lineNo := p.pos + 1
		d, content, err := p.computeIndentAt(p.pos)
		if err != nil {
			return nil, err
		}
		if d < depth {
			break
		}
		if d > depth {
			return nil, p.errStructural(lineNo, "unexpected jump in depth")
		}

		field, err := p.parseKVLine(content, depth, lineNo)
		if err != nil {
			return nil, err
		}
		if seen[field.Key] {
			return nil, p.errSemantic(lineNo, fmt.Sprintf("duplicate object key %q", field.Key))
		}
		seen[field.Key] = true
		fields = append(fields, field)
	}
	return value.Object(fields...), nil
}

// parseKVLine parses a single "key: value" line (content already has its
// indentation stripped) and advances pos past whatever it consumes —
// just this line for a scalar, or further lines for a nested object or
// array body.
func (p *parser) parseKVLine(content string, depth int, lineNo int) (value.Field, error) {
	idx := lexrules.IndexOutsideQuotes(content, ':')
	if idx == -1 {
		if p.cfg.Strict {
			return value.Field{}, p.errSemantic(lineNo, "missing colon after key")
		}
		p.pos++
		return value.Field{Key: strings.TrimSpace(content), Value: value.Null()}, nil
	}

	keySubstr := strings.TrimSpace(content[:idx])
	valueSubstr := strings.TrimLeft(content[idx+1:], " ")

	if name, headerRest, ok := splitArrayIntro(keySubstr); ok {
		key, err := p.decodeKeyToken(name, lineNo)
		if err != nil {
			return value.Field{}, err
		}
		arr, err := p.parseArrayAfterHeader(headerRest, valueSubstr, depth, lineNo)
		if err != nil {
			return value.Field{}, err
		}
		return value.Field{Key: key, Value: arr}, nil
	}

	key, err := p.decodeKeyToken(keySubstr, lineNo)
	if err != nil {
		return value.Field{}, err
	}

	if valueSubstr == "" {
		nextIdx, nextDepth, hasNext := p.peekNonBlank(p.pos + 1)
		if hasNext && nextDepth == depth+1 {
			p.pos = nextIdx
			obj, err := p.parseObject(depth + 1)
			if err != nil {
				return value.Field{}, err
			}
			return value.Field{Key: key, Value: obj}, nil
		}
		p.pos++
		return value.Field{Key: key, Value: value.Object()}, nil
	}

	v, err := p.parsePrimitive(valueSubstr, lineNo)
	if err != nil {
		return value.Field{}, err
	}
	p.pos++
	return value.Field{Key: key, Value: v}, nil
}

// splitArrayIntro reports whether keySubstr introduces an array (key
// name, bare or quoted, possibly empty, followed by a bracketed header)
// rather than an ordinary scalar/object key.
func splitArrayIntro(keySubstr string) (name, headerRest string, ok bool) {
	if keySubstr == "" {
		return "", "", false
	}
	idx := lexrules.IndexOutsideQuotes(keySubstr, '[')
	if idx == -1 || !strings.Contains(keySubstr[idx:], "]") {
		return "", "", false
	}
	return keySubstr[:idx], keySubstr[idx:], true
}

// parseArrayAfterHeader parses headerRest (beginning with '[', with the
// line's own terminating colon already stripped) and reads whichever
// body shape it declares. parentDepth is the depth of the line the
// header itself sits on; body rows/items sit at parentDepth+1.
func (p *parser) parseArrayAfterHeader(headerRest, tail string, parentDepth int, lineNo int) (*value.Value, error) {
	if !strings.HasPrefix(headerRest, "[") {
		return nil, p.errLexical(lineNo, "malformed array header")
	}
	closeIdx := lexrules.IndexOutsideQuotes(headerRest, ']')
	if closeIdx == -1 {
		return nil, p.errLexical(lineNo, "malformed array header")
	}

	body := headerRest[1:closeIdx]
	// The '#' length marker is semantically inert on decode: it only
	// affects whether the encoder re-emits it.
	body = strings.TrimPrefix(body, "#")

	delim := lexrules.Comma
	if n := len(body); n > 0 {
		if d, ok := lexrules.DelimiterFromSuffix(rune(body[n-1])); ok {
			delim = d
			body = body[:n-1]
		}
	}
	if body == "" {
		return nil, p.errLexical(lineNo, "invalid array length")
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return nil, p.errLexical(lineNo, "invalid array length")
		}
	}
	count, convErr := strconv.Atoi(body)
	if convErr != nil || count < 0 {
		return nil, p.errLexical(lineNo, "invalid array length")
	}

	rest := headerRest[closeIdx+1:]
	var fields []string
	if strings.HasPrefix(rest, "{") {
		closeBrace := lexrules.IndexOutsideQuotes(rest, '}')
		if closeBrace == -1 {
			return nil, p.errLexical(lineNo, "malformed array header")
		}
		raw := lexrules.SplitOutsideQuotes(rest[1:closeBrace], byte(delim.Rune()))
		for _, f := range raw {
			name, err := p.decodeKeyToken(strings.TrimSpace(f), lineNo)
			if err != nil {
				return nil, err
			}
			fields = append(fields, name)
		}
		rest = rest[closeBrace+1:]
	}
	if rest != "" {
		return nil, p.errLexical(lineNo, "malformed array header")
	}

	if tail != "" {
		if len(fields) > 0 {
			return nil, p.errLexical(lineNo, "tabular header cannot carry an inline tail")
		}
		raw := lexrules.SplitOutsideQuotes(tail, byte(delim.Rune()))
		elems := make([]*value.Value, len(raw))
		for i, tok := range raw {
			v, err := p.parsePrimitive(strings.TrimSpace(tok), lineNo)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		if p.cfg.Strict && len(elems) != count {
			return nil, p.errSemantic(lineNo, "array length mismatch")
		}
		p.pos++
		return value.Array(elems...), nil
	}

	p.pos++
	if count == 0 {
		return value.Array(), nil
	}
	if len(fields) > 0 {
		return p.parseTabularBody(fields, delim, parentDepth+1, count, lineNo)
	}
	return p.parseExpandedBody(delim, parentDepth+1, count, lineNo)
}

// parseTabularBody reads consecutive rows at rowDepth, each a delimited
// list of primitive cells zipped against fields.
func (p *parser) parseTabularBody(fields []string, delim lexrules.Delimiter, rowDepth int, declaredCount int, headerLineNo int) (*value.Value, error) {
	var rows []*value.Value
	for {
		if p.atEnd() {
			break
		}
		if p.isBlank(p.current()) {
			if p.cfg.Strict {
				return nil, p.errStructural(p.pos+1, "blank line inside array body")
			}
			p.pos++
			continue
		}
		lineNo := p.pos + 1
		d, content, err := p.computeIndentAt(p.pos)
		if err != nil {
			return nil, err
		}
		if d < rowDepth {
			break
		}
		if d > rowDepth {
			return nil, p.errStructural(lineNo, "unexpected jump in depth")
		}

		delimIdx := lexrules.IndexOutsideQuotes(content, byte(delim.Rune()))
		colonIdx := lexrules.IndexOutsideQuotes(content, ':')
		isRow := colonIdx == -1 || (delimIdx != -1 && delimIdx < colonIdx)
		if !isRow {
			break
		}

		cellsRaw := lexrules.SplitOutsideQuotes(content, byte(delim.Rune()))
		if p.cfg.Strict && len(cellsRaw) != len(fields) {
			return nil, p.errSemantic(lineNo, "tabular row width mismatch")
		}
		row := make([]value.Field, len(fields))
		for i, fname := range fields {
			cellText := ""
			if i < len(cellsRaw) {
				cellText = strings.TrimSpace(cellsRaw[i])
			}
			v, err := p.parsePrimitive(cellText, lineNo)
			if err != nil {
				return nil, err
			}
			row[i] = value.Field{Key: fname, Value: v}
		}
		rows = append(rows, value.Object(row...))
		p.pos++
	}
	if p.cfg.Strict && len(rows) != declaredCount {
		return nil, p.errSemantic(headerLineNo, "array length mismatch")
	}
	return value.Array(rows...), nil
}

// parseExpandedBody reads consecutive "- " items at itemDepth.
func (p *parser) parseExpandedBody(delim lexrules.Delimiter, itemDepth int, declaredCount int, headerLineNo int) (*value.Value, error) {
	var items []*value.Value
	for {
		if p.atEnd() {
			break
		}
		if p.isBlank(p.current()) {
			if p.cfg.Strict {
				return nil, p.errStructural(p.pos+1, "blank line inside array body")
			}
			p.pos++
			continue
		}
		lineNo := p.pos + 1
		d, content, err := p.computeIndentAt(p.pos)
		if err != nil {
			return nil, err
		}
		if d < itemDepth {
			break
		}
		if d > itemDepth {
			return nil, p.errStructural(lineNo, "unexpected jump in depth")
		}
		if content != "-" && !strings.HasPrefix(content, "- ") {
			break
		}

		itemContent := strings.TrimPrefix(strings.TrimPrefix(content, "-"), " ")
		item, err := p.parseExpandedItem(itemContent, itemDepth, lineNo)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if p.cfg.Strict && len(items) != declaredCount {
		return nil, p.errSemantic(headerLineNo, "array length mismatch")
	}
	return value.Array(items...), nil
}

// parseExpandedItem classifies and parses one list item's text (with its
// leading "- " already stripped). pos still points at the item's own
// hyphen line on entry; every branch is responsible for advancing it.
func (p *parser) parseExpandedItem(itemContent string, itemDepth int, lineNo int) (*value.Value, error) {
	if itemContent == "{}" {
		p.pos++
		return value.Object(), nil
	}

	// A bare "-" followed by deeper lines is an object item whose fields
	// all sit one level below the hyphen.
	if itemContent == "" {
		if _, nextDepth, ok := p.peekNonBlank(p.pos + 1); ok && nextDepth == itemDepth+1 {
			p.pos++
			return p.parseObject(itemDepth + 1)
		}
	}

	if strings.HasPrefix(itemContent, "[") {
		idx := lexrules.IndexOutsideQuotes(itemContent, ':')
		if idx == -1 {
			return nil, p.errLexical(lineNo, "malformed array header")
		}
		headerRest := itemContent[:idx]
		tail := strings.TrimLeft(itemContent[idx+1:], " ")
		return p.parseArrayAfterHeader(headerRest, tail, itemDepth, lineNo)
	}

	if lexrules.IndexOutsideQuotes(itemContent, ':') == -1 {
		p.pos++
		return p.parsePrimitive(itemContent, lineNo)
	}

	field, err := p.parseKVLine(itemContent, itemDepth, lineNo)
	if err != nil {
		return nil, err
	}
	rest, err := p.parseObject(itemDepth + 1)
	if err != nil {
		return nil, err
	}
	fields := append([]value.Field{field}, rest.Fields()...)
	return value.Object(fields...), nil
}

// decodeKeyToken unquotes a quoted key or validates/accepts a bare one.
func (p *parser) decodeKeyToken(raw string, lineNo int) (string, error) {
	if strings.HasPrefix(raw, "\"") {
		s, err := lexrules.Unquote(raw)
		if err != nil {
			return "", p.errLexical(lineNo, err.Error())
		}
		return s, nil
	}
	if p.cfg.Strict && !lexrules.IsValidUnquotedKey(raw) {
		return "", p.errSemantic(lineNo, fmt.Sprintf("invalid unquoted key %q", raw))
	}
	return raw, nil
}

// parsePrimitive parses a single trimmed value token per the primitive
// grammar: empty text, quoted string, the three literal tokens, a number
// (unless forbidden leading zeros keep it a string), else a bare string.
func (p *parser) parsePrimitive(text string, lineNo int) (*value.Value, error) {
	if text == "" {
		return value.String(""), nil
	}
	if strings.HasPrefix(text, "\"") {
		s, err := lexrules.Unquote(text)
		if err != nil {
			return nil, p.errLexical(lineNo, err.Error())
		}
		return value.String(s), nil
	}
	switch text {
	case "null":
		return value.Null(), nil
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	}
	if lexrules.IsNumericLike(text) && !lexrules.HasForbiddenLeadingZero(text) {
		if n, err := strconv.ParseFloat(text, 64); err == nil {
			return value.Number(n), nil
		}
	}
	return value.String(text), nil
}
