package truthtable

import (
	"testing"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/parser"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, formula string) ast.Expression {
	t.Helper()
	e, err := parser.Parse(formula)
	require.NoError(t, err)
	return e
}

func TestCombinationsMSBOrder(t *testing.T) {
	combos := Combinations([]string{"P", "Q", "R"})
	require.Len(t, combos, 8)
	require.Equal(t, ast.Assignment{"P": false, "Q": false, "R": false}, combos[0])
	require.Equal(t, ast.Assignment{"P": false, "Q": false, "R": true}, combos[1])
	require.Equal(t, ast.Assignment{"P": true, "Q": true, "R": true}, combos[7])
}

func TestClassificationTautologyContradiction(t *testing.T) {
	p := ast.NewVar("P")
	taut := ast.NewOr(p, ast.NewNot(p))
	contra := ast.NewAnd(p, ast.NewNot(p))

	lines := []proof.Line{
		{LineNumber: 1, AST: taut, AutoType: proof.None},
		{LineNumber: 2, AST: contra, AutoType: proof.None},
	}
	result := Analyse(lines, Options{})
	require.Equal(t, Tautology, result.PerLine[0].Classification)
	require.Equal(t, Contradiction, result.PerLine[1].Classification)
}

func TestValidityNoPremisesRequiresTautologyConclusion(t *testing.T) {
	p := ast.NewVar("P")
	lines := []proof.Line{
		{LineNumber: 1, AST: ast.NewOr(p, ast.NewNot(p)), AutoType: proof.None},
	}
	result := Analyse(lines, Options{})
	require.True(t, result.Valid)
	require.Empty(t, result.CounterExamples)

	lines2 := []proof.Line{
		{LineNumber: 1, AST: p, AutoType: proof.None},
	}
	result2 := Analyse(lines2, Options{})
	require.False(t, result2.Valid)
	require.NotEmpty(t, result2.CounterExamples)
}

func TestValiditySoundWithPremises(t *testing.T) {
	p, q := ast.NewVar("P"), ast.NewVar("Q")
	lines := []proof.Line{
		{LineNumber: 1, AST: p, AutoType: proof.Premise},
		{LineNumber: 2, AST: ast.NewImplies(p, q), AutoType: proof.Premise},
		{LineNumber: 3, AST: q, AutoType: proof.None},
	}
	result := Analyse(lines, Options{})
	require.True(t, result.Valid)
	require.Empty(t, result.CounterExamples)
}

func TestValidityCounterExample(t *testing.T) {
	p, q := ast.NewVar("P"), ast.NewVar("Q")
	lines := []proof.Line{
		{LineNumber: 1, AST: ast.NewOr(p, q), AutoType: proof.Premise},
		{LineNumber: 2, AST: p, AutoType: proof.None},
	}
	result := Analyse(lines, Options{})
	require.False(t, result.Valid)
	require.NotEmpty(t, result.CounterExamples)
	for _, ce := range result.CounterExamples {
		require.True(t, ce["Q"] && !ce["P"])
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	formula := mustParse(t, "(P ∧ Q) → (Q ∨ R)")
	lines := []proof.Line{{LineNumber: 1, AST: formula, AutoType: proof.None}}
	seq := Analyse(lines, Options{Parallel: false})
	par := Analyse(lines, Options{Parallel: true})
	require.Equal(t, seq.PerLine[0].Results, par.PerLine[0].Results)
}
