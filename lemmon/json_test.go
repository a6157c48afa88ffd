package lemmon

import (
	"testing"

	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/stretchr/testify/require"
)

func TestParseJSONBasic(t *testing.T) {
	raw := []byte(`{
		"schemaVersion": "1.0.0",
		"lines": [
			{"assumptions": [1], "line": 1, "formula": "P", "rule": "Premise"},
			{"assumptions": [1], "line": 2, "formula": "P ∨ Q", "citedRefs": [1], "rule": "∨I"}
		]
	}`)
	lines, err := ParseJSON(raw)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, proof.Premise, lines[0].AutoType)
	require.Equal(t, "∨I", lines[1].DetectedRule)
}

func TestParseJSONRejectsMissingFormula(t *testing.T) {
	raw := []byte(`{"lines": [{"line": 1}]}`)
	_, err := ParseJSON(raw)
	require.Error(t, err)
}

func TestParseJSONRejectsBadSchemaVersion(t *testing.T) {
	raw := []byte(`{"schemaVersion": "not-a-version", "lines": [{"line": 1, "formula": "P"}]}`)
	_, err := ParseJSON(raw)
	require.Error(t, err)
}
