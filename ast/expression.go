// Package ast defines the typed expression tree for classical propositional
// formulas: the Var/Not/And/Or/Xor/Implies/Iff sum type, its evaluator, its
// structural comparator, and its canonical printer.
//
// Trees are value-owned: child expressions are plain interface values, never
// shared through a mutable store, so two trees can be compared or printed
// without any notion of node identity beyond structural equality.
package ast

import "strings"

// Expression is the sealed sum type over formula AST nodes. The unexported
// method keeps the variant set closed to this package.
type Expression interface {
	expressionNode()
	// String renders the node in fully-parenthesised form; callers that want
	// the canonical printed form should use Print, not String.
	String() string
}

// Var is an atomic proposition, e.g. P.
type Var struct {
	Name string
}

func (Var) expressionNode() {}
func (v Var) String() string { return v.Name }

// NewVar builds a variable node. Name must be non-empty; callers that need
// names case-folded to upper for comparison should normalise before
// constructing the node — see lemmon.CanonicalVarName.
func NewVar(name string) Var { return Var{Name: name} }

// Not is logical negation: ¬Inner.
type Not struct {
	Inner Expression
}

func (Not) expressionNode() {}
func (n Not) String() string { return "¬" + n.Inner.String() }

func NewNot(inner Expression) Not { return Not{Inner: inner} }

// binary is embedded by every two-operand node to hold its Left and Right
// operands.
type binary struct {
	Left, Right Expression
}

// And is conjunction: Left ∧ Right.
type And struct{ binary }

func (And) expressionNode() {}
func (b And) String() string { return paren(b.Left, "∧", b.Right) }

func NewAnd(l, r Expression) And { return And{binary{l, r}} }

// Or is disjunction: Left ∨ Right.
type Or struct{ binary }

func (Or) expressionNode() {}
func (b Or) String() string { return paren(b.Left, "∨", b.Right) }

func NewOr(l, r Expression) Or { return Or{binary{l, r}} }

// Xor is exclusive-or: Left ⊕ Right.
type Xor struct{ binary }

func (Xor) expressionNode() {}
func (b Xor) String() string { return paren(b.Left, "⊕", b.Right) }

func NewXor(l, r Expression) Xor { return Xor{binary{l, r}} }

// Implies is material implication: Left → Right.
type Implies struct{ binary }

func (Implies) expressionNode() {}
func (b Implies) String() string { return paren(b.Left, "→", b.Right) }

func NewImplies(l, r Expression) Implies { return Implies{binary{l, r}} }

// Iff is the biconditional: Left ↔ Right.
type Iff struct{ binary }

func (Iff) expressionNode() {}
func (b Iff) String() string { return paren(b.Left, "↔", b.Right) }

func NewIff(l, r Expression) Iff { return Iff{binary{l, r}} }

func paren(l Expression, op string, r Expression) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(l.String())
	b.WriteString(op)
	b.WriteString(r.String())
	b.WriteByte(')')
	return b.String()
}

// IsAtomic reports whether e is a bare Var (never a compound node).
func IsAtomic(e Expression) bool {
	_, ok := e.(Var)
	return ok
}

// Depth computes the AST depth used to order sub-expressions for evaluation:
// atoms are 0, Not(x) is 1+depth(x), binary nodes are 1+max(depth(l),depth(r)).
func Depth(e Expression) int {
	switch n := e.(type) {
	case Var:
		return 0
	case Not:
		return 1 + Depth(n.Inner)
	case And:
		return 1 + maxInt(Depth(n.Left), Depth(n.Right))
	case Or:
		return 1 + maxInt(Depth(n.Left), Depth(n.Right))
	case Xor:
		return 1 + maxInt(Depth(n.Left), Depth(n.Right))
	case Implies:
		return 1 + maxInt(Depth(n.Left), Depth(n.Right))
	case Iff:
		return 1 + maxInt(Depth(n.Left), Depth(n.Right))
	default:
		return 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Children returns the direct operands of a compound node, or nil for a Var.
func Children(e Expression) []Expression {
	switch n := e.(type) {
	case Not:
		return []Expression{n.Inner}
	case And:
		return []Expression{n.Left, n.Right}
	case Or:
		return []Expression{n.Left, n.Right}
	case Xor:
		return []Expression{n.Left, n.Right}
	case Implies:
		return []Expression{n.Left, n.Right}
	case Iff:
		return []Expression{n.Left, n.Right}
	default:
		return nil
	}
}
