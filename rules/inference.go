package rules

import (
	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/proof"
)

// detectMP implements Modus Ponens: from A→B and A, infer B. The two
// citations may appear in either order.
func detectMP(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 2 {
		return false
	}
	cur := current.AST
	for i := 0; i < 2; i++ {
		imp, ok := refs[i].AST.(ast.Implies)
		if !ok {
			continue
		}
		other := refs[1-i].AST
		if ast.Equal(imp.Left, other) && ast.Equal(imp.Right, cur) {
			return true
		}
	}
	return false
}

// detectMT implements Modus Tollens: from A→B and ¬B, infer ¬A.
func detectMT(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 2 {
		return false
	}
	cur := current.AST
	for i := 0; i < 2; i++ {
		imp, ok := refs[i].AST.(ast.Implies)
		if !ok {
			continue
		}
		notB, ok := refs[1-i].AST.(ast.Not)
		if !ok || !ast.Equal(notB.Inner, imp.Right) {
			continue
		}
		if ast.Equal(ast.NewNot(imp.Left), cur) {
			return true
		}
	}
	return false
}

// detectMPT implements the Modus Ponendo Tollens / Disjunctive Syllogism
// shape: from A∨B and ¬A (or ¬B), infer the other disjunct. This is also the
// shape DS matches — the dispatcher registers both codes against this one
// function.
func detectMPT(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 2 {
		return false
	}
	cur := current.AST
	for i := 0; i < 2; i++ {
		orNode, ok := refs[i].AST.(ast.Or)
		if !ok {
			continue
		}
		notX, ok := refs[1-i].AST.(ast.Not)
		if !ok {
			continue
		}
		if ast.Equal(notX.Inner, orNode.Left) && ast.Equal(cur, orNode.Right) {
			return true
		}
		if ast.Equal(notX.Inner, orNode.Right) && ast.Equal(cur, orNode.Left) {
			return true
		}
	}
	return false
}

// detectHS implements Hypothetical Syllogism: from A→B and B→C, infer A→C.
func detectHS(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 2 {
		return false
	}
	cur := current.AST
	for i := 0; i < 2; i++ {
		imp1, ok := refs[i].AST.(ast.Implies)
		if !ok {
			continue
		}
		imp2, ok := refs[1-i].AST.(ast.Implies)
		if !ok {
			continue
		}
		if ast.Equal(imp1.Right, imp2.Left) && ast.Equal(ast.NewImplies(imp1.Left, imp2.Right), cur) {
			return true
		}
	}
	return false
}

// detectCD implements Constructive Dilemma: from A∨B, A→C and B→D, infer
// C∨D. Any of the three citations may be the disjunction.
func detectCD(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 3 {
		return false
	}
	cur := current.AST
	for i := 0; i < 3; i++ {
		orNode, ok := refs[i].AST.(ast.Or)
		if !ok {
			continue
		}
		j, k := otherTwo(i)
		imp1, ok1 := refs[j].AST.(ast.Implies)
		imp2, ok2 := refs[k].AST.(ast.Implies)
		if !ok1 || !ok2 {
			continue
		}
		matchedStraight := ast.Equal(imp1.Left, orNode.Left) && ast.Equal(imp2.Left, orNode.Right)
		matchedCrossed := ast.Equal(imp1.Left, orNode.Right) && ast.Equal(imp2.Left, orNode.Left)
		if matchedStraight || matchedCrossed {
			if ast.Equal(ast.NewOr(imp1.Right, imp2.Right), cur) {
				return true
			}
		}
	}
	return false
}

func otherTwo(i int) (int, int) {
	switch i {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// detectDD implements Destructive Dilemma: from (A→C)∧(B→D) and ¬C∨¬D,
// infer ¬A∨¬B.
func detectDD(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 2 {
		return false
	}
	cur := current.AST
	for i := 0; i < 2; i++ {
		andNode, ok := refs[i].AST.(ast.And)
		if !ok {
			continue
		}
		imp1, ok1 := andNode.Left.(ast.Implies)
		imp2, ok2 := andNode.Right.(ast.Implies)
		if !ok1 || !ok2 {
			continue
		}
		orNode, ok3 := refs[1-i].AST.(ast.Or)
		if !ok3 {
			continue
		}
		notC, okc := orNode.Left.(ast.Not)
		notD, okd := orNode.Right.(ast.Not)
		if !okc || !okd {
			continue
		}
		straight := ast.Equal(notC.Inner, imp1.Right) && ast.Equal(notD.Inner, imp2.Right)
		crossed := ast.Equal(notC.Inner, imp2.Right) && ast.Equal(notD.Inner, imp1.Right)
		if straight || crossed {
			want := ast.NewOr(ast.NewNot(imp1.Left), ast.NewNot(imp2.Left))
			if ast.Equal(want, cur) {
				return true
			}
		}
	}
	return false
}

// detectAndI implements Conjunction Introduction: from A and B (either
// citation order), infer A∧B.
func detectAndI(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 2 {
		return false
	}
	andNode, ok := current.AST.(ast.And)
	if !ok {
		return false
	}
	a, b := refs[0].AST, refs[1].AST
	return (ast.Equal(a, andNode.Left) && ast.Equal(b, andNode.Right)) ||
		(ast.Equal(a, andNode.Right) && ast.Equal(b, andNode.Left))
}

// detectAndE implements Conjunction Elimination (Simplification): from A∧B,
// infer A or infer B.
func detectAndE(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 1 {
		return false
	}
	andNode, ok := refs[0].AST.(ast.And)
	if !ok {
		return false
	}
	cur := current.AST
	return ast.Equal(cur, andNode.Left) || ast.Equal(cur, andNode.Right)
}

// detectOrI implements Disjunction Introduction (Addition): from A, infer
// A∨B for any B appearing in current.
func detectOrI(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 1 {
		return false
	}
	orNode, ok := current.AST.(ast.Or)
	if !ok {
		return false
	}
	ref := refs[0].AST
	return ast.Equal(ref, orNode.Left) || ast.Equal(ref, orNode.Right)
}

// detectOrE implements Disjunction Elimination: given A∨B, a subproof
// assuming A that reaches C, and a subproof assuming B that reaches the same
// C, infer C. Citations are ordered
// [disjunction, assumeA, concludeA, assumeB, concludeB].
func detectOrE(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 5 {
		return false
	}
	orNode, ok := refs[0].AST.(ast.Or)
	if !ok {
		return false
	}
	assumeA, concludeA, assumeB, concludeB := refs[1], refs[2], refs[3], refs[4]
	if assumeA.AutoType != proof.Assume || assumeB.AutoType != proof.Assume {
		return false
	}
	matched := (ast.Equal(assumeA.AST, orNode.Left) && ast.Equal(assumeB.AST, orNode.Right)) ||
		(ast.Equal(assumeA.AST, orNode.Right) && ast.Equal(assumeB.AST, orNode.Left))
	if !matched {
		return false
	}
	cur := current.AST
	return ast.Equal(concludeA.AST, cur) && ast.Equal(concludeB.AST, cur)
}

// detectAbs implements Absorption: from A→B, infer A→(A∧B).
func detectAbs(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 1 {
		return false
	}
	imp, ok := refs[0].AST.(ast.Implies)
	if !ok {
		return false
	}
	want := ast.NewImplies(imp.Left, ast.NewAnd(imp.Left, imp.Right))
	return ast.Equal(want, current.AST)
}

// detectNotI implements Negation Introduction: among the cited lines (each
// either itself an implication, or a conjunction of two implications sharing
// the same antecedent), find A→X and A→¬X; infer ¬A.
func detectNotI(current proof.Line, refs []proof.Line) bool {
	notA, ok := current.AST.(ast.Not)
	if !ok {
		return false
	}
	var imps []ast.Implies
	for _, r := range refs {
		imps = append(imps, collectImplications(r.AST)...)
	}
	for i := range imps {
		for j := range imps {
			if i == j {
				continue
			}
			if !ast.Equal(imps[i].Left, imps[j].Left) {
				continue
			}
			notX, ok := imps[j].Right.(ast.Not)
			if ok && ast.Equal(notX.Inner, imps[i].Right) && ast.Equal(imps[i].Left, notA.Inner) {
				return true
			}
		}
	}
	return false
}

func collectImplications(e ast.Expression) []ast.Implies {
	if andNode, ok := e.(ast.And); ok {
		var out []ast.Implies
		if imp, ok := andNode.Left.(ast.Implies); ok {
			out = append(out, imp)
		}
		if imp, ok := andNode.Right.(ast.Implies); ok {
			out = append(out, imp)
		}
		return out
	}
	if imp, ok := e.(ast.Implies); ok {
		return []ast.Implies{imp}
	}
	return nil
}

// detectCPA implements Conditional Proof Assertion: current is A→B, and the
// citations include an Assume line equal to A together with a line equal
// to B. Whether B lies within that assumption's scope is not checked.
func detectCPA(current proof.Line, refs []proof.Line) bool {
	imp, ok := current.AST.(ast.Implies)
	if !ok {
		return false
	}
	foundA, foundB := false, false
	for _, r := range refs {
		if r.AutoType == proof.Assume && ast.Equal(r.AST, imp.Left) {
			foundA = true
		}
		if ast.Equal(r.AST, imp.Right) {
			foundB = true
		}
	}
	return foundA && foundB
}

// detectRAA implements Reductio ad Absurdum: an Assume line equal to A,
// together with a cited contradiction X∧¬X, justifies ¬A. Whether the
// contradiction depends on that assumption is not checked.
func detectRAA(current proof.Line, refs []proof.Line) bool {
	if len(refs) != 2 {
		return false
	}
	notA, ok := current.AST.(ast.Not)
	if !ok {
		return false
	}
	for i := 0; i < 2; i++ {
		assumeRef := refs[i]
		if assumeRef.AutoType != proof.Assume || !ast.Equal(assumeRef.AST, notA.Inner) {
			continue
		}
		andNode, ok := refs[1-i].AST.(ast.And)
		if !ok {
			continue
		}
		if notR, ok := andNode.Right.(ast.Not); ok && ast.Equal(notR.Inner, andNode.Left) {
			return true
		}
		if notL, ok := andNode.Left.(ast.Not); ok && ast.Equal(notL.Inner, andNode.Right) {
			return true
		}
	}
	return false
}
