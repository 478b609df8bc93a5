// Package errs formats decode errors with source position and the name of
// the rule that failed, following the pattern established by the
// compiler's own error reporting: a line/column position, the offending
// source line, and a message naming the violated rule.
package errs

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/xerrors"
)

// Kind classifies a decode error per the three buckets the format
// specification defines: structural (indentation/depth/blank-line
// problems), lexical (quoting/escaping/header syntax), and semantic
// (duplicate keys, count mismatches, missing colons).
type Kind int

const (
	Structural Kind = iota
	Lexical
	Semantic
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural"
	case Lexical:
		return "lexical"
	case Semantic:
		return "semantic"
	default:
		return "error"
	}
}

// Position is a 1-based line number, with an optional column when known.
type Position struct {
	Line   int
	Column int // 0 when unknown
}

// DecodeError is a single decode failure, carrying the rule that was
// violated and the 1-based line it was found on.
type DecodeError struct {
	Kind   Kind
	Rule   string
	Pos    Position
	Source string // the full document, for rendering source context
	frame  xerrors.Frame
}

// New constructs a DecodeError. source may be empty when no document text
// is available to quote back to the user.
func New(kind Kind, rule string, pos Position, source string) *DecodeError {
	return &DecodeError{Kind: kind, Rule: rule, Pos: pos, Source: source, frame: xerrors.Caller(1)}
}

// Error implements the error interface without source context or color,
// matching the convention that Error() always returns a plain single line.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("toon: %s error at line %d: %s", e.Kind, e.Pos.Line, e.Rule)
}

// Format renders the error with a source-line excerpt and caret. When
// colored is true, the caret and header are rendered in ANSI color via
// fatih/color.
func (e *DecodeError) Format(colored bool) string {
	var sb strings.Builder

	header := fmt.Sprintf("toon: %s error at line %d", e.Kind, e.Pos.Line)
	if e.Pos.Column > 0 {
		header = fmt.Sprintf("%s:%d", header, e.Pos.Column)
	}
	if colored {
		header = color.New(color.FgRed, color.Bold).Sprint(header)
	}
	sb.WriteString(header)
	sb.WriteString("\n")

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		col := e.Pos.Column
		if col <= 0 {
			col = 1
		}
		caret := strings.Repeat(" ", len(prefix)+col-1) + "^"
		if colored {
			caret = color.New(color.FgRed, color.Bold).Sprint(caret)
		}
		sb.WriteString(caret)
		sb.WriteString("\n")
	}

	sb.WriteString(e.Rule)
	return sb.String()
}

// FormatError implements xerrors.Formatter, so %+v on an error chain built
// by xerrors (see Wrap) renders this error's call frame for debugging.
// Printing a bare *DecodeError with %+v shows only Error().
func (e *DecodeError) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	if p.Detail() {
		e.frame.Format(p)
	}
	return nil
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Wrap annotates err with msg, preserving it as the error chain's cause,
// so a wrapped DecodeError can still be recovered with errors.As.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf("%s: %w", msg, err)
}
