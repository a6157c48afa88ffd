package ast

import "sort"

// Equal is the structural comparator: same variant and
//   - Var: equal name
//   - Not: inner subtrees equal
//   - And, Or, Iff: children equal as an UNORDERED pair (commutative)
//   - Implies, Xor: children equal as an ORDERED pair
//
// Xor is semantically commutative but is deliberately treated as ordered
// here.
func Equal(a, b Expression) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Not:
		y, ok := b.(Not)
		return ok && Equal(x.Inner, y.Inner)
	case And:
		y, ok := b.(And)
		return ok && equalUnordered(x.Left, x.Right, y.Left, y.Right)
	case Or:
		y, ok := b.(Or)
		return ok && equalUnordered(x.Left, x.Right, y.Left, y.Right)
	case Iff:
		y, ok := b.(Iff)
		return ok && equalUnordered(x.Left, x.Right, y.Left, y.Right)
	case Xor:
		y, ok := b.(Xor)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Implies:
		y, ok := b.(Implies)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}

func equalUnordered(al, ar, bl, br Expression) bool {
	if Equal(al, bl) && Equal(ar, br) {
		return true
	}
	return Equal(al, br) && Equal(ar, bl)
}

// leafRank imposes the total order over leaves the Associativity detector
// needs: compare by variant first (Var < Not < And < Or < Xor < Implies <
// Iff), then by Var name, recursing into compounds via their printed form so
// any two structurally distinct leaves sort deterministically.
func leafRank(e Expression) int {
	switch e.(type) {
	case Var:
		return 0
	case Not:
		return 1
	case And:
		return 2
	case Or:
		return 3
	case Xor:
		return 4
	case Implies:
		return 5
	case Iff:
		return 6
	default:
		return 7
	}
}

func leafLess(a, b Expression) bool {
	ra, rb := leafRank(a), leafRank(b)
	if ra != rb {
		return ra < rb
	}
	if av, ok := a.(Var); ok {
		bv := b.(Var)
		return av.Name < bv.Name
	}
	return a.String() < b.String()
}

// SortLeaves returns a copy of leaves sorted under the total order used by
// the Associativity detector (rules.detectAssoc).
func SortLeaves(leaves []Expression) []Expression {
	out := make([]Expression, len(leaves))
	copy(out, leaves)
	sort.Slice(out, func(i, j int) bool { return leafLess(out[i], out[j]) })
	return out
}

// Flatten collects the leaves of a maximal run of the same associative
// operator (∧ or ∨) starting at e: e.g. flattening (A∧B)∧C under ∧ yields
// [A, B, C]. A node whose operator differs from op is itself a leaf.
func Flatten(e Expression, op func(Expression) (l, r Expression, ok bool)) []Expression {
	l, r, ok := op(e)
	if !ok {
		return []Expression{e}
	}
	return append(Flatten(l, op), Flatten(r, op)...)
}

// AsAnd extracts the children of an And node, for use with Flatten.
func AsAnd(e Expression) (Expression, Expression, bool) {
	n, ok := e.(And)
	if !ok {
		return nil, nil, false
	}
	return n.Left, n.Right, true
}

// AsOr extracts the children of an Or node, for use with Flatten.
func AsOr(e Expression) (Expression, Expression, bool) {
	n, ok := e.(Or)
	if !ok {
		return nil, nil, false
	}
	return n.Left, n.Right, true
}
