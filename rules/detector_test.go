package rules

import (
	"testing"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/stretchr/testify/require"
)

func TestDetectMP(t *testing.T) {
	p, q := ast.NewVar("P"), ast.NewVar("Q")
	lines := []proof.Line{
		{LineNumber: 1, AST: p, AutoType: proof.Premise},
		{LineNumber: 2, AST: ast.NewImplies(p, q), AutoType: proof.Premise},
		{LineNumber: 3, AST: q, CitedRefs: []int{1, 2}},
	}
	code, ok := Detect(lines[2], lines)
	require.True(t, ok)
	require.Equal(t, "MP", code)
}

func TestDetectMT(t *testing.T) {
	p, q := ast.NewVar("P"), ast.NewVar("Q")
	lines := []proof.Line{
		{LineNumber: 1, AST: ast.NewImplies(p, q), AutoType: proof.Premise},
		{LineNumber: 2, AST: ast.NewNot(q), AutoType: proof.Premise},
		{LineNumber: 3, AST: ast.NewNot(p), CitedRefs: []int{1, 2}},
	}
	code, ok := Detect(lines[2], lines)
	require.True(t, ok)
	require.Equal(t, "MT", code)
}

func TestDetectDN(t *testing.T) {
	p := ast.NewVar("P")
	lines := []proof.Line{
		{LineNumber: 1, AST: p, AutoType: proof.Premise},
		{LineNumber: 2, AST: ast.NewNot(ast.NewNot(p)), CitedRefs: []int{1}},
	}
	code, ok := Detect(lines[1], lines)
	require.True(t, ok)
	require.Equal(t, "DN", code)
}

func TestDetectDeMBothDirections(t *testing.T) {
	p, q := ast.NewVar("P"), ast.NewVar("Q")

	orForm := ast.NewNot(ast.NewOr(p, q))
	andForm := ast.NewAnd(ast.NewNot(p), ast.NewNot(q))
	lines := []proof.Line{
		{LineNumber: 1, AST: orForm, AutoType: proof.Premise},
		{LineNumber: 2, AST: andForm, CitedRefs: []int{1}},
	}
	code, ok := Detect(lines[1], lines)
	require.True(t, ok)
	require.Equal(t, "DeM", code)

	andNotForm := ast.NewNot(ast.NewAnd(p, q))
	orNotForm := ast.NewOr(ast.NewNot(p), ast.NewNot(q))
	lines2 := []proof.Line{
		{LineNumber: 1, AST: andNotForm, AutoType: proof.Premise},
		{LineNumber: 2, AST: orNotForm, CitedRefs: []int{1}},
	}
	code2, ok2 := Detect(lines2[1], lines2)
	require.True(t, ok2)
	require.Equal(t, "DeM", code2)
}

func TestDetectAndIAndE(t *testing.T) {
	p, q := ast.NewVar("P"), ast.NewVar("Q")
	lines := []proof.Line{
		{LineNumber: 1, AST: p, AutoType: proof.Premise},
		{LineNumber: 2, AST: q, AutoType: proof.Premise},
		{LineNumber: 3, AST: ast.NewAnd(p, q), CitedRefs: []int{1, 2}},
		{LineNumber: 4, AST: p, CitedRefs: []int{3}},
	}
	code, ok := Detect(lines[2], lines)
	require.True(t, ok)
	require.Equal(t, "∧I", code)

	code2, ok2 := Detect(lines[3], lines)
	require.True(t, ok2)
	require.Equal(t, "∧E", code2)
}

func TestDetectOrE(t *testing.T) {
	p, q, r := ast.NewVar("P"), ast.NewVar("Q"), ast.NewVar("R")
	lines := []proof.Line{
		{LineNumber: 1, AST: ast.NewOr(p, q), AutoType: proof.Premise},
		{LineNumber: 2, AST: p, AutoType: proof.Assume},
		{LineNumber: 3, AST: r, CitedRefs: []int{2}},
		{LineNumber: 4, AST: q, AutoType: proof.Assume},
		{LineNumber: 5, AST: r, CitedRefs: []int{4}},
		{LineNumber: 6, AST: r, CitedRefs: []int{1, 2, 3, 4, 5}},
	}
	code, ok := Detect(lines[5], lines)
	require.True(t, ok)
	require.Equal(t, "∨E", code)
}

func TestDetectRAA(t *testing.T) {
	p, q := ast.NewVar("P"), ast.NewVar("Q")
	lines := []proof.Line{
		{LineNumber: 1, AST: p, AutoType: proof.Assume},
		{LineNumber: 2, AST: ast.NewAnd(q, ast.NewNot(q)), CitedRefs: []int{1}},
		{LineNumber: 3, AST: ast.NewNot(p), CitedRefs: []int{1, 2}},
	}
	code, ok := Detect(lines[2], lines)
	require.True(t, ok)
	require.Equal(t, "RAA", code)
}

func TestNormalizeRuleName(t *testing.T) {
	code, ok := NormalizeRuleName("Modus Ponens")
	require.True(t, ok)
	require.Equal(t, "MP", code)

	code, ok = NormalizeRuleName("  mp ")
	require.True(t, ok)
	require.Equal(t, "MP", code)

	_, ok = NormalizeRuleName("not a rule")
	require.False(t, ok)
}

func TestSuggestRule(t *testing.T) {
	suggestion, ok := SuggestRule("Moduss Ponns")
	require.True(t, ok)
	require.Equal(t, "MP", suggestion)
}

func TestDetectMissingRefFails(t *testing.T) {
	p := ast.NewVar("P")
	lines := []proof.Line{
		{LineNumber: 1, AST: ast.NewNot(ast.NewNot(p)), CitedRefs: []int{99}},
	}
	_, ok := Detect(lines[0], lines)
	require.False(t, ok)
}
