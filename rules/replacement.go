package rules

import (
	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/proof"
)

// The replacement detectors all share one shape: a single citation, and a
// rewrite that is checked in both directions, since every rule in this file
// is a biconditional equivalence rather than a one-way inference.

func single(refs []proof.Line) (ast.Expression, bool) {
	if len(refs) != 1 {
		return nil, false
	}
	return refs[0].AST, true
}

// detectDist implements Distribution: (A∨B)∧(A∨C) ⇔ A∨(B∧C), and its ∧-over-∨
// dual (A∧B)∨(A∧C) ⇔ A∧(B∨C). The shared term may appear on either side of
// each disjunct/conjunct pair.
func detectDist(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST

	if andNode, ok := ref.(ast.And); ok {
		if shared, b, c, ok := extractSharedOr(andNode); ok {
			if ast.Equal(ast.NewOr(shared, ast.NewAnd(b, c)), cur) {
				return true
			}
		}
		if shared, b, c, ok := extractOrInsideAnd(andNode); ok {
			if ast.Equal(ast.NewOr(ast.NewAnd(shared, b), ast.NewAnd(shared, c)), cur) {
				return true
			}
		}
	}
	if orNode, ok := ref.(ast.Or); ok {
		if shared, b, c, ok := extractAndInsideOr(orNode); ok {
			if ast.Equal(ast.NewAnd(ast.NewOr(shared, b), ast.NewOr(shared, c)), cur) {
				return true
			}
		}
		if shared, b, c, ok := extractSharedAnd(orNode); ok {
			if ast.Equal(ast.NewAnd(shared, ast.NewOr(b, c)), cur) {
				return true
			}
		}
	}
	return false
}

// extractSharedOr matches and = (X∨Y)∧(Z∨W) where one of X,Y equals one of
// Z,W, returning the shared leaf and the two remainders.
func extractSharedOr(and ast.And) (shared, b, c ast.Expression, ok bool) {
	x, xok := and.Left.(ast.Or)
	y, yok := and.Right.(ast.Or)
	if !xok || !yok {
		return nil, nil, nil, false
	}
	switch {
	case ast.Equal(x.Left, y.Left):
		return x.Left, x.Right, y.Right, true
	case ast.Equal(x.Left, y.Right):
		return x.Left, x.Right, y.Left, true
	case ast.Equal(x.Right, y.Left):
		return x.Right, x.Left, y.Right, true
	case ast.Equal(x.Right, y.Right):
		return x.Right, x.Left, y.Left, true
	default:
		return nil, nil, nil, false
	}
}

// extractSharedAnd is extractSharedOr's ∧-over-∨ dual: matches
// or = (X∧Y)∨(Z∧W).
func extractSharedAnd(or ast.Or) (shared, b, c ast.Expression, ok bool) {
	x, xok := or.Left.(ast.And)
	y, yok := or.Right.(ast.And)
	if !xok || !yok {
		return nil, nil, nil, false
	}
	switch {
	case ast.Equal(x.Left, y.Left):
		return x.Left, x.Right, y.Right, true
	case ast.Equal(x.Left, y.Right):
		return x.Left, x.Right, y.Left, true
	case ast.Equal(x.Right, y.Left):
		return x.Right, x.Left, y.Right, true
	case ast.Equal(x.Right, y.Right):
		return x.Right, x.Left, y.Left, true
	default:
		return nil, nil, nil, false
	}
}

// extractOrInsideAnd matches and = X∧(Y∨Z) — the factored ∧-over-∨ form that
// is read back into (X∧Y)∨(X∧Z) by detectDist.
func extractOrInsideAnd(and ast.And) (shared, b, c ast.Expression, ok bool) {
	if orNode, ok := and.Right.(ast.Or); ok {
		return and.Left, orNode.Left, orNode.Right, true
	}
	if orNode, ok := and.Left.(ast.Or); ok {
		return and.Right, orNode.Left, orNode.Right, true
	}
	return nil, nil, nil, false
}

// extractAndInsideOr matches or = X∨(Y∧Z) — the factored ∨-over-∧ form that
// is expanded into (X∨Y)∧(X∨Z) by detectDist.
func extractAndInsideOr(or ast.Or) (shared, b, c ast.Expression, ok bool) {
	if andNode, ok := or.Right.(ast.And); ok {
		return or.Left, andNode.Left, andNode.Right, true
	}
	if andNode, ok := or.Left.(ast.And); ok {
		return or.Right, andNode.Left, andNode.Right, true
	}
	return nil, nil, nil, false
}

// detectComm implements Commutation: a swap of children under ∧, ∨ or ↔.
// ast.Equal already compares those variants' children unordered, so a
// same-variant structural match is exactly a commutative rearrangement.
func detectComm(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST
	switch cur.(type) {
	case ast.And, ast.Or, ast.Iff:
	default:
		return false
	}
	if sameVariant(cur, ref) {
		return ast.Equal(cur, ref)
	}
	return false
}

func sameVariant(a, b ast.Expression) bool {
	switch a.(type) {
	case ast.And:
		_, ok := b.(ast.And)
		return ok
	case ast.Or:
		_, ok := b.(ast.Or)
		return ok
	case ast.Iff:
		_, ok := b.(ast.Iff)
		return ok
	default:
		return false
	}
}

// detectAssoc implements Association: regrouping a run of the same
// associative operator (∧ or ∨). Current and ref must share a top-level
// operator whose flattened, sorted leaf lists are equal.
func detectAssoc(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST

	var op func(ast.Expression) (ast.Expression, ast.Expression, bool)
	switch cur.(type) {
	case ast.And:
		if _, ok := ref.(ast.And); !ok {
			return false
		}
		op = ast.AsAnd
	case ast.Or:
		if _, ok := ref.(ast.Or); !ok {
			return false
		}
		op = ast.AsOr
	default:
		return false
	}

	curLeaves := ast.SortLeaves(ast.Flatten(cur, op))
	refLeaves := ast.SortLeaves(ast.Flatten(ref, op))
	if len(curLeaves) != len(refLeaves) {
		return false
	}
	for i := range curLeaves {
		if !ast.Equal(curLeaves[i], refLeaves[i]) {
			return false
		}
	}
	return true
}

// detectExp implements Exportation: (A∧B)→C ⇔ A→(B→C).
func detectExp(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST
	if cand, ok := exportationForm(ref); ok && ast.Equal(cand, cur) {
		return true
	}
	if cand, ok := exportationForm(cur); ok && ast.Equal(cand, ref) {
		return true
	}
	return false
}

// exportationForm turns (A∧B)→C into A→(B→C); the reverse is handled by the
// symmetric call to the same function on the other side.
func exportationForm(e ast.Expression) (ast.Expression, bool) {
	imp, ok := e.(ast.Implies)
	if !ok {
		return nil, false
	}
	if andNode, ok := imp.Left.(ast.And); ok {
		return ast.NewImplies(andNode.Left, ast.NewImplies(andNode.Right, imp.Right)), true
	}
	if imp2, ok := imp.Right.(ast.Implies); ok {
		return ast.NewImplies(ast.NewAnd(imp.Left, imp2.Left), imp2.Right), true
	}
	return nil, false
}

// detectDN implements Double Negation: ¬¬A ⇔ A.
func detectDN(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST
	if inner, ok := stripDoubleNegation(ref); ok && ast.Equal(inner, cur) {
		return true
	}
	if inner, ok := stripDoubleNegation(cur); ok && ast.Equal(inner, ref) {
		return true
	}
	return false
}

func stripDoubleNegation(e ast.Expression) (ast.Expression, bool) {
	outer, ok := e.(ast.Not)
	if !ok {
		return nil, false
	}
	inner, ok := outer.Inner.(ast.Not)
	if !ok {
		return nil, false
	}
	return inner.Inner, true
}

// detectDeM implements De Morgan's laws symmetrically in both directions —
// ¬(A∨B) ⇔ ¬A∧¬B and ¬(A∧B) ⇔ ¬A∨¬B — rather than only the one-way form;
// see DESIGN.md for why this departs from the source.
func detectDeM(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST
	if cand, ok := expandDeMorgan(ref); ok && ast.Equal(cand, cur) {
		return true
	}
	if cand, ok := expandDeMorgan(cur); ok && ast.Equal(cand, ref) {
		return true
	}
	return false
}

func expandDeMorgan(e ast.Expression) (ast.Expression, bool) {
	notNode, ok := e.(ast.Not)
	if !ok {
		return nil, false
	}
	switch inner := notNode.Inner.(type) {
	case ast.Or:
		return ast.NewAnd(ast.NewNot(inner.Left), ast.NewNot(inner.Right)), true
	case ast.And:
		return ast.NewOr(ast.NewNot(inner.Left), ast.NewNot(inner.Right)), true
	default:
		return nil, false
	}
}

// detectContra implements Contraposition: A→B ⇔ ¬B→¬A.
func detectContra(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST
	if cand, ok := contrapose(ref); ok && ast.Equal(cand, cur) {
		return true
	}
	if cand, ok := contrapose(cur); ok && ast.Equal(cand, ref) {
		return true
	}
	return false
}

func contrapose(e ast.Expression) (ast.Expression, bool) {
	imp, ok := e.(ast.Implies)
	if !ok {
		return nil, false
	}
	return ast.NewImplies(ast.NewNot(imp.Right), ast.NewNot(imp.Left)), true
}

// detectSimp implements Material Implication: A→B ⇔ ¬A∨B.
func detectSimp(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST
	if cand, ok := materialImplication(ref); ok && ast.Equal(cand, cur) {
		return true
	}
	if cand, ok := materialImplication(cur); ok && ast.Equal(cand, ref) {
		return true
	}
	return false
}

func materialImplication(e ast.Expression) (ast.Expression, bool) {
	imp, ok := e.(ast.Implies)
	if !ok {
		return nil, false
	}
	return ast.NewOr(ast.NewNot(imp.Left), imp.Right), true
}

// detectBE implements Biconditional Exchange: A↔B ⇔ (A→B)∧(B→A).
func detectBE(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST
	if cand, ok := biconditionalExchange(ref); ok && ast.Equal(cand, cur) {
		return true
	}
	if cand, ok := biconditionalExchange(cur); ok && ast.Equal(cand, ref) {
		return true
	}
	return false
}

func biconditionalExchange(e ast.Expression) (ast.Expression, bool) {
	iff, ok := e.(ast.Iff)
	if !ok {
		return nil, false
	}
	return ast.NewAnd(ast.NewImplies(iff.Left, iff.Right), ast.NewImplies(iff.Right, iff.Left)), true
}

// detectT implements Tautology (idempotence): A∧A ⇔ A and A∨A ⇔ A.
func detectT(current proof.Line, refs []proof.Line) bool {
	ref, ok := single(refs)
	if !ok {
		return false
	}
	cur := current.AST
	if cand, ok := collapseIdempotent(ref); ok && ast.Equal(cand, cur) {
		return true
	}
	if cand, ok := collapseIdempotent(cur); ok && ast.Equal(cand, ref) {
		return true
	}
	return false
}

func collapseIdempotent(e ast.Expression) (ast.Expression, bool) {
	if andNode, ok := e.(ast.And); ok && ast.Equal(andNode.Left, andNode.Right) {
		return andNode.Left, true
	}
	if orNode, ok := e.(ast.Or); ok && ast.Equal(orNode.Left, orNode.Right) {
		return orNode.Left, true
	}
	return nil, false
}
