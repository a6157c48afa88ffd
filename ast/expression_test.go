package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	// (P ∧ ¬(Q → (R ↔ S))) → T  under P:T Q:F R:T S:F T:T  ==  true
	p, q, r, s, tt := NewVar("P"), NewVar("Q"), NewVar("R"), NewVar("S"), NewVar("T")
	expr := NewImplies(
		NewAnd(p, NewNot(NewImplies(q, NewIff(r, s)))),
		tt,
	)
	a := Assignment{"P": true, "Q": false, "R": true, "S": false, "T": true}
	require.True(t, Evaluate(expr, a))
}

func TestEvaluateMissingVarDefaultsFalse(t *testing.T) {
	require.False(t, Evaluate(NewVar("Q"), Assignment{"P": true}))
}

func TestEqualCommutative(t *testing.T) {
	a, b := NewVar("A"), NewVar("B")
	require.True(t, Equal(NewAnd(a, b), NewAnd(b, a)))
	require.True(t, Equal(NewOr(a, b), NewOr(b, a)))
	require.True(t, Equal(NewIff(a, b), NewIff(b, a)))
}

func TestEqualOrderedOperators(t *testing.T) {
	a, b := NewVar("A"), NewVar("B")
	require.False(t, Equal(NewImplies(a, b), NewImplies(b, a)))
	require.False(t, Equal(NewXor(a, b), NewXor(b, a)))
	require.True(t, Equal(NewImplies(a, b), NewImplies(a, b)))
}

func TestPrintRoundTripSpacing(t *testing.T) {
	got := FormatSpacing("(P∧ (Q∨ R))")
	require.Equal(t, "P ∧ (Q ∨ R)", got)
}

func TestSubExpressionsDedupAndOrder(t *testing.T) {
	a, b := NewVar("A"), NewVar("B")
	notA := NewNot(a)
	expr := NewAnd(notA, NewOr(notA, b))

	subs := SubExpressions(expr)
	require.Len(t, subs, 3) // ¬A, (¬A ∨ B), (¬A ∧ (¬A ∨ B)) — ¬A counted once
	require.True(t, Equal(subs[0], notA))
}

func TestDepth(t *testing.T) {
	a, b := NewVar("A"), NewVar("B")
	require.Equal(t, 0, Depth(a))
	require.Equal(t, 1, Depth(NewNot(a)))
	require.Equal(t, 2, Depth(NewAnd(NewNot(a), b)))
}

func TestStructuralDiffOnMismatch(t *testing.T) {
	// Every two-operand node embeds the unexported binary struct, which makes
	// that embedded field unexported in And and Implies; cmp needs explicit
	// permission on those outer node types to read it.
	opt := cmp.AllowUnexported(And{}, Implies{})

	a, b := NewVar("A"), NewVar("B")
	want := NewImplies(a, NewAnd(a, b))
	got := NewImplies(a, NewAnd(a, b))
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Errorf("identical builds should have no structural diff (-want +got):\n%s", diff)
	}

	mismatched := NewImplies(a, NewAnd(b, a))
	if diff := cmp.Diff(want, mismatched, opt); diff == "" {
		t.Errorf("expected a structural diff between A∧B and B∧A under plain field comparison")
	}
}
