// Package rules implements the natural-deduction rule detector: a fixed,
// explicitly-ordered dispatcher of detector functions over AST pairs/triples,
// plus rule-name normalisation and fuzzy suggestion.
//
// detectorsInOrder is a name-keyed table tried in a fixed priority order,
// rather than dispatch by dynamically-built method name — the idiomatic Go
// shape for "look up behaviour by name" when the set of names is closed and
// known at compile time.
package rules

import (
	"github.com/jafaripur/avicenna-logic-system/proof"
)

// detectorFunc is the shared signature every detector implements: given the
// current line and its already-resolved citations (in citation order), it
// reports whether the line is a valid application of that rule.
type detectorFunc func(current proof.Line, refs []proof.Line) bool

// entry pairs a detector with the short rule code it reports on success.
type entry struct {
	code string
	fn   detectorFunc
}

// detectorsInOrder is the fixed priority list: the first detector to return
// true wins. Replacement rules (single-citation equivalences) are tried
// first, then inference rules.
var detectorsInOrder = []entry{
	{"Dist", detectDist},
	{"Comm", detectComm},
	{"Assoc", detectAssoc},
	{"Exp", detectExp},
	{"DN", detectDN},
	{"DeM", detectDeM},
	{"Contra", detectContra},
	{"Simp", detectSimp},
	{"BE", detectBE},
	{"T", detectT},

	{"CPA", detectCPA},
	{"RAA", detectRAA},
	{"¬I", detectNotI},
	{"MP", detectMP},
	{"MT", detectMT},
	{"MPT", detectMPT},
	{"HS", detectHS},
	{"DS", detectMPT}, // disjunctive syllogism shares MPT's shape; either name may match
	{"CD", detectCD},
	{"DD", detectDD},
	{"∧I", detectAndI},
	{"∧E", detectAndE},
	{"∨I", detectOrI},
	{"∨E", detectOrE},
	{"Abs", detectAbs},
}

// Detect runs the prioritised detector list over current, given the full
// line set it may cite from. It looks up current's cited references by
// line number first; a missing reference fails every detector (returns ""
// , false) without panicking.
func Detect(current proof.Line, allLines []proof.Line) (string, bool) {
	refs, ok := resolveRefs(current, allLines)
	if !ok {
		return "", false
	}
	for _, d := range detectorsInOrder {
		if d.fn(current, refs) {
			return d.code, true
		}
	}
	return "", false
}

func resolveRefs(current proof.Line, allLines []proof.Line) ([]proof.Line, bool) {
	byNumber := make(map[int]proof.Line, len(allLines))
	for _, l := range allLines {
		byNumber[l.LineNumber] = l
	}
	refs := make([]proof.Line, 0, len(current.CitedRefs))
	for _, n := range current.CitedRefs {
		l, found := byNumber[n]
		if !found {
			return nil, false
		}
		refs = append(refs, l)
	}
	return refs, true
}

// CheckUserRuleIsValid reports whether a line's user-cited rule is valid: the
// line is self-justifying (Premise/Assume), or its normalised user rule name
// equals the detected name.
func CheckUserRuleIsValid(line proof.Line) bool {
	if line.IsSelfJustifying() {
		return true
	}
	normalised, ok := NormalizeRuleName(line.UserRule)
	if !ok {
		return false
	}
	return normalised == line.DetectedRule
}
