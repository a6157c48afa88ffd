package fingerprint

import (
	"testing"

	"github.com/jafaripur/avicenna-logic-system/parser"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/truthtable"
	"github.com/stretchr/testify/require"
)

func buildResult(t *testing.T) truthtable.Result {
	t.Helper()
	expr, err := parser.Parse("(P ∧ Q) → (Q ∨ R)")
	require.NoError(t, err)
	lines := []proof.Line{{LineNumber: 1, AST: expr, AutoType: proof.None}}
	return truthtable.Analyse(lines, truthtable.Options{})
}

func TestOfIsDeterministic(t *testing.T) {
	r1 := buildResult(t)
	r2 := buildResult(t)

	h1, err := Of(r1)
	require.NoError(t, err)
	h2, err := Of(r2)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
	require.Len(t, h1, 64)
}

func TestOfDiffersOnDifferentInput(t *testing.T) {
	r1 := buildResult(t)

	expr, err := parser.Parse("P ∨ ¬P")
	require.NoError(t, err)
	lines := []proof.Line{{LineNumber: 1, AST: expr, AutoType: proof.None}}
	r2 := truthtable.Analyse(lines, truthtable.Options{})

	h1, err := Of(r1)
	require.NoError(t, err)
	h2, err := Of(r2)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
