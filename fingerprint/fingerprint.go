// Package fingerprint computes a stable content hash of a truth-table
// result: canonical CBOR encoding followed by sha256. Two results built from
// the same input produce the same digest regardless of map iteration order
// or call count; nothing is cached or persisted.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/truthtable"
)

// canonicalResult is the CBOR-shaped projection of a truthtable.Result:
// formula nodes are rendered to their printed string rather than encoded as
// the Expression interface, since cbor cannot marshal a sealed interface's
// concrete variants without a registered type switch.
type canonicalResult struct {
	Variables       []string
	Combinations    []map[string]bool
	PerLine         []canonicalLineResult
	PerSubexpr      []canonicalLineResult
	Valid           bool
	CounterExamples []map[string]bool
}

type canonicalLineResult struct {
	Expression     string
	Results        []bool
	Classification string
}

// Of returns the hex-encoded sha256 digest of result's canonical CBOR
// encoding. Two results that are equal in every observable field — including
// map/slice ordering, since CanonicalEncOptions sorts map keys — produce an
// identical digest.
func Of(result truthtable.Result) (string, error) {
	data, err := marshalCanonical(result)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func marshalCanonical(result truthtable.Result) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("fingerprint: building canonical CBOR encoder: %w", err)
	}

	cr := canonicalResult{
		Variables:       result.Variables,
		Combinations:    toMaps(result.Combinations),
		PerLine:         toCanonicalLineResults(result.PerLine),
		PerSubexpr:      toCanonicalLineResults(result.PerSubexpr),
		Valid:           result.Valid,
		CounterExamples: toMaps(result.CounterExamples),
	}

	data, err := encMode.Marshal(cr)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: CBOR encoding failed: %w", err)
	}
	return data, nil
}

func toMaps(assignments []ast.Assignment) []map[string]bool {
	out := make([]map[string]bool, len(assignments))
	for i, a := range assignments {
		out[i] = map[string]bool(a)
	}
	return out
}

func toCanonicalLineResults(results []truthtable.LineResult) []canonicalLineResult {
	out := make([]canonicalLineResult, len(results))
	for i, r := range results {
		out[i] = canonicalLineResult{
			Expression:     r.Expression.String(),
			Results:        r.Results,
			Classification: r.Classification.String(),
		}
	}
	return out
}
