package lexrules

import "errors"

// ErrTabInIndent is returned by ComputeIndent when a tab appears in
// leading whitespace and strict is true.
var ErrTabInIndent = errors.New("tabs are not allowed in indentation (strict mode)")

// ErrUnevenIndent is returned by ComputeIndent when the leading-space
// count is not a multiple of indentSize and strict is true.
var ErrUnevenIndent = errors.New("indentation is not a multiple of the configured indent size")

// ComputeIndent walks the leading whitespace of line and returns its depth
// (leading-space count divided by indentSize) along with the remaining
// content starting at the first non-space, non-tab byte. In strict mode a
// tab in the indentation is an error, and an odd leading-space count (not
// a multiple of indentSize) is an error. In lax mode a tab simply counts
// as indentSize spaces, and uneven indentation still divides down
// (truncating) rather than failing.
func ComputeIndent(line string, indentSize int, strict bool) (depth int, content string, err error) {
	spaces := 0
	i := 0
	for ; i < len(line); i++ {
		switch line[i] {
		case ' ':
			spaces++
		case '\t':
			if strict {
				return 0, "", ErrTabInIndent
			}
			spaces += indentSize
		default:
			if strict && spaces%indentSize != 0 {
				return 0, "", ErrUnevenIndent
			}
			return spaces / indentSize, line[i:], nil
		}
	}
	return spaces / indentSize, "", nil
}
