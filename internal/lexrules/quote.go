package lexrules

import (
	"errors"
	"strings"
)

// NeedsQuoting reports whether s must be wrapped in double quotes when
// emitted as a value in a document using the given active delimiter.
func NeedsQuoting(s string, active Delimiter) bool {
	if s == "" {
		return true
	}
	runes := []rune(s)
	first, last := runes[0], runes[len(runes)-1]
	if isWhitespace(first) || isWhitespace(last) {
		return true
	}
	switch s {
	case "true", "false", "null":
		return true
	}
	if first == '-' {
		return true
	}
	if IsNumericLike(s) {
		return true
	}
	if strings.ContainsAny(s, ":\"\\[]{}") {
		return true
	}
	if strings.ContainsRune(s, '\n') || strings.ContainsRune(s, '\r') || strings.ContainsRune(s, '\t') {
		return true
	}
	if strings.ContainsRune(s, active.Rune()) {
		return true
	}
	return false
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Quote wraps s in double quotes, escaping the five characters the format
// defines escapes for. Other control characters pass through verbatim.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote reverses Quote: token must be a single double-quoted run with no
// trailing content after the closing quote. It returns an error naming the
// rule that failed, so internal/errs can attach a position to it.
func Unquote(token string) (string, error) {
	runes := []rune(token)
	if len(runes) < 2 || runes[0] != '"' {
		return "", errUnterminated
	}
	var b strings.Builder
	b.Grow(len(runes))
	closed := false
	i := 1
	for i < len(runes) {
		r := runes[i]
		if r == '\\' {
			if i+1 >= len(runes) {
				return "", errInvalidEscape
			}
			switch runes[i+1] {
			case '\\':
				b.WriteRune('\\')
			case '"':
				b.WriteRune('"')
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			case 't':
				b.WriteRune('\t')
			default:
				return "", errInvalidEscape
			}
			i += 2
			continue
		}
		if r == '"' {
			closed = true
			i++
			break
		}
		b.WriteRune(r)
		i++
	}
	if !closed || i != len(runes) {
		return "", errUnterminated
	}
	return b.String(), nil
}

var (
	errUnterminated  = errors.New("unterminated quoted string")
	errInvalidEscape = errors.New("invalid escape sequence")
)
