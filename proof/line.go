// Package proof holds the per-line record of a Lemmon-style deduction and
// the opt-in assumption-scoping check over a set of lines.
package proof

import "github.com/jafaripur/avicenna-logic-system/ast"

// AutoType classifies how a line justifies itself.
type AutoType int

const (
	// None is an ordinary derived line: its justification comes from the
	// detected/cited rule, not from being self-justifying.
	None AutoType = iota
	// Premise is a self-justifying premise line.
	Premise
	// Assume is a self-justifying subproof-opening assumption line.
	Assume
)

func (t AutoType) String() string {
	switch t {
	case Premise:
		return "Premise"
	case Assume:
		return "Assume"
	default:
		return "None"
	}
}

// Line is one step of a Lemmon-style deduction.
type Line struct {
	LineNumber int // 1-based, unique within the deduction

	// Assumptions is the bracketed "[...]" set on the left: the line
	// numbers of open assumptions this line depends on.
	Assumptions []int

	Formula string         // formula text as supplied by the source; not re-printed in canonical form
	AST     ast.Expression // parsed AST

	// CitedRefs are the numeric citations inside the trailing "[...]" —
	// other lines used to derive this one.
	CitedRefs []int

	// UserRule is the rule name the user wrote, verbatim (only whitespace-
	// trimmed); it is not canonicalised when the line is populated. Callers
	// needing the canonical code should run it through
	// rules.NormalizeRuleName. Empty string means absent.
	UserRule string

	AutoType AutoType

	// DetectedRule is the rule key the detector found, or empty if none.
	// Left empty until a caller runs rules.Detect over the line set.
	DetectedRule string
}

// IsSelfJustifying reports whether the line is a Premise or Assume line, for
// which cited_refs = [line] and detected_rule is irrelevant.
func (l Line) IsSelfJustifying() bool {
	return l.AutoType == Premise || l.AutoType == Assume
}
