// Package logicerr defines the surface-visible error kinds shared by the
// lexer, parser, argument splitter and Lemmon-line reader.
package logicerr

import (
	"fmt"
	"strings"
)

// Kind is one of the surface-visible error codes.
type Kind int

const (
	_ Kind = iota
	InvalidConclusion
	LemmonParseError
	UnbalancedParens
	MissingNotOperand
	InsufficientOperands
	UnknownOperator
	MalformedExpression
	UnsupportedLogicType
)

func (k Kind) String() string {
	switch k {
	case InvalidConclusion:
		return "InvalidConclusion"
	case LemmonParseError:
		return "LemmonParseError"
	case UnbalancedParens:
		return "UnbalancedParens"
	case MissingNotOperand:
		return "MissingNotOperand"
	case InsufficientOperands:
		return "InsufficientOperands"
	case UnknownOperator:
		return "UnknownOperator"
	case MalformedExpression:
		return "MalformedExpression"
	case UnsupportedLogicType:
		return "UnsupportedLogicType"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Position is a 1-based line/column plus a 0-based byte offset into Input.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Error is the single error type every parsing layer returns. It carries
// enough context to render a caret-pointer snippet under the offending
// input.
type Error struct {
	Kind     Kind
	Message  string
	Pos      Position
	Input    string
	Snippet  string // offending token/substring, for messages that want it quoted
}

func New(kind Kind, message string, pos Position, input string) *Error {
	return &Error{Kind: kind, Message: message, Pos: pos, Input: input}
}

func (e *Error) Error() string {
	snippet := e.codeSnippet()
	if snippet == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s\n%s", e.Kind, e.Message, snippet)
}

// Is lets callers check an error's Kind with
// errors.Is(err, logicerr.Sentinel(logicerr.InvalidConclusion)): any *Error
// target with the same Kind matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func (e *Error) codeSnippet() string {
	if e.Input == "" || e.Pos.Line <= 0 {
		return ""
	}
	lines := strings.Split(e.Input, "\n")
	if e.Pos.Line > len(lines) {
		return ""
	}
	line := lines[e.Pos.Line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", e.Pos.Line, e.Pos.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", e.Pos.Line, line)
	b.WriteString("   | ")
	if e.Pos.Column > 0 && e.Pos.Column <= len(line)+1 {
		b.WriteString(strings.Repeat(" ", e.Pos.Column-1) + "^")
	}
	return b.String()
}

// Sentinel returns a bare *Error carrying only Kind, suitable as the
// target of errors.Is(err, logicerr.Sentinel(logicerr.UnbalancedParens)).
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
