package sequent

import (
	"testing"

	"github.com/jafaripur/avicenna-logic-system/logicerr"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/stretchr/testify/require"
)

func TestParseE2(t *testing.T) {
	// two premises and one conclusion.
	result, err := Parse("P ∧ (Q ∨ R), P → ¬R ⊢ Q ∨ E")
	require.NoError(t, err)
	require.Len(t, result.Premises, 2)
	require.Equal(t, 1, result.Premises[0].LineNumber)
	require.Equal(t, 2, result.Premises[1].LineNumber)
	require.Equal(t, proof.Premise, result.Premises[0].AutoType)
	require.Equal(t, 3, result.Conclusion.LineNumber)
	require.Equal(t, proof.None, result.Conclusion.AutoType)
}

func TestParseE3(t *testing.T) {
	// no turnstile present.
	_, err := Parse("P ∧ (Q ∨ R), P → ¬R")
	require.Error(t, err)
	lerr, ok := err.(*logicerr.Error)
	require.True(t, ok)
	require.Equal(t, logicerr.InvalidConclusion, lerr.Kind)
}

func TestParseTherefore(t *testing.T) {
	result, err := Parse("P ∴ P ∨ Q")
	require.NoError(t, err)
	require.Len(t, result.Premises, 1)
}

func TestParseDoubleTurnstileFails(t *testing.T) {
	_, err := Parse("P ⊢ Q ⊢ R")
	require.Error(t, err)
	lerr, ok := err.(*logicerr.Error)
	require.True(t, ok)
	require.Equal(t, logicerr.InvalidConclusion, lerr.Kind)
}

func TestParseNoPremises(t *testing.T) {
	result, err := Parse("⊢ P ∨ ¬P")
	require.NoError(t, err)
	require.Empty(t, result.Premises)
	require.Equal(t, 1, result.Conclusion.LineNumber)
}
