package lemmon

import (
	"testing"

	"github.com/jafaripur/avicenna-logic-system/logicerr"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/rules"
	"github.com/jafaripur/avicenna-logic-system/truthtable"
	"github.com/stretchr/testify/require"
)

// canonicalProof is the textbook ten-line ∨-elimination proof of
// p∧(q∨r) ⊢ (p∧q)∨(p∧r), in this package's surface syntax.
const canonicalProof = `
[1] (1) P∧(Q∨R) [Premise]
[1] (2) P [1 ∧E]
[1] (3) Q∨R [1 ∧E]
[4] (4) Q [Assume]
[1,4] (5) P∧Q [2,4 ∧I]
[1,4] (6) (P∧Q)∨(P∧R) [5 ∨I]
[7] (7) R [Assume]
[1,7] (8) P∧R [2,7 ∧I]
[1,7] (9) (P∧Q)∨(P∧R) [8 ∨I]
[1] (10) (P∧Q)∨(P∧R) [3,4,6,7,9 ∨E]
`

func TestParseE4(t *testing.T) {
	lines, err := Parse(canonicalProof)
	require.NoError(t, err)
	require.Len(t, lines, 10)

	require.Equal(t, proof.Premise, lines[0].AutoType)
	require.Equal(t, proof.Assume, lines[3].AutoType)
	require.Equal(t, proof.Assume, lines[6].AutoType)

	for _, l := range lines {
		if l.IsSelfJustifying() {
			continue
		}
		normalised, ok := rules.NormalizeRuleName(l.UserRule)
		require.True(t, ok, "line %d: rule %q should normalise", l.LineNumber, l.UserRule)
		require.Equal(t, normalised, l.DetectedRule, "line %d", l.LineNumber)
	}
}

func TestParseE5Malformed(t *testing.T) {
	_, err := Parse("[1] P [Premise]") // missing the (n) group
	require.Error(t, err)
	lerr, ok := err.(*logicerr.Error)
	require.True(t, ok)
	require.Equal(t, logicerr.LemmonParseError, lerr.Kind)

	_, err = Parse("[1] (1) P") // missing the trailing [...]
	require.Error(t, err)
	lerr, ok = err.(*logicerr.Error)
	require.True(t, ok)
	require.Equal(t, logicerr.LemmonParseError, lerr.Kind)
}

func TestAnalyseE6(t *testing.T) {
	lines, err := Parse(canonicalProof)
	require.NoError(t, err)

	result := truthtable.Analyse(lines, truthtable.Options{})
	require.Equal(t, []string{"P", "Q", "R"}, result.Variables)
	require.Len(t, result.Combinations, 8)
	require.True(t, result.Valid)
	for i, pl := range result.PerLine {
		require.Equal(t, truthtable.Contingent, pl.Classification, "line %d", i+1)
	}
}

func TestBlankLinesIgnored(t *testing.T) {
	lines, err := Parse("\n[1] (1) P [Premise]\n\n")
	require.NoError(t, err)
	require.Len(t, lines, 1)
}
