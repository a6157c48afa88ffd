package rules

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// canonicalCodes is the full set of rule codes a detector can report,
// derived from detectorsInOrder but deduplicated (DS shares a detector with
// MPT, yet is its own citable name).
var canonicalCodes = []string{
	"Dist", "Comm", "Assoc", "Exp", "DN", "DeM", "Contra", "Simp", "BE", "T",
	"CPA", "RAA", "¬I", "MP", "MT", "MPT", "HS", "DS", "CD", "DD",
	"∧I", "∧E", "∨I", "∨E", "Abs",
}

// aliases maps the long-form and common alternate spellings a proof author
// might type onto the short codes Detect reports.
var aliases = map[string]string{
	"DISTRIBUTION":              "Dist",
	"DISTRIBUTIVE":              "Dist",
	"COMMUTATION":               "Comm",
	"COMMUTATIVE":               "Comm",
	"COMMUTATIVITY":             "Comm",
	"ASSOCIATION":               "Assoc",
	"ASSOCIATIVE":               "Assoc",
	"ASSOCIATIVITY":             "Assoc",
	"EXPORTATION":               "Exp",
	"DOUBLENEGATION":            "DN",
	"DOUBLENEGATIVE":            "DN",
	"DEMORGAN":                  "DeM",
	"DEM":                       "DeM",
	"DEMORGANS":                 "DeM",
	"DEMORGANSLAW":              "DeM",
	"CONTRAPOSITION":            "Contra",
	"CONTRAPOSITIVE":            "Contra",
	"SIMPLIFICATION":            "Simp",
	"MATERIALIMPLICATION":       "Simp",
	"BICONDITIONALEXCHANGE":     "BE",
	"BICONDITIONAL":             "BE",
	"TAUTOLOGY":                 "T",
	"IDEMPOTENCE":               "T",
	"IDEMPOTENCY":               "T",
	"CONDITIONALPROOF":          "CPA",
	"CONDITIONALPROOFASSERTION": "CPA",
	"REDUCTIOADABSURDUM":        "RAA",
	"INDIRECTPROOF":             "RAA",
	"NEGATIONINTRODUCTION":      "¬I",
	"MODUSPONENS":               "MP",
	"MODUSTOLLENS":              "MT",
	"MODUSPONENDOTOLLENS":       "MPT",
	"HYPOTHETICALSYLLOGISM":     "HS",
	"DISJUNCTIVESYLLOGISM":      "DS",
	"CONSTRUCTIVEDILEMMA":       "CD",
	"DESTRUCTIVEDILEMMA":        "DD",
	"CONJUNCTIONINTRODUCTION":   "∧I",
	"CONJUNCTION":               "∧I",
	"CI":                        "∧I",
	"CONJUNCTIONELIMINATION":    "∧E",
	"SIMPLIFICATIONAND":         "∧E",
	"DISJUNCTIONINTRODUCTION":   "∨I",
	"ADDITION":                  "∨I",
	"DISJUNCTIONELIMINATION":    "∨E",
	"ABSORPTION":                "Abs",
}

// normaliseKey strips spaces, hyphens, underscores, periods and case so "Modus Ponens",
// "modus-ponens" and "MODUS_PONENS" all hash to the same lookup key.
func normaliseKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		switch r {
		case ' ', '-', '_', '.':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeRuleName resolves a user-typed rule name to its canonical code:
// an exact (case/space/punctuation-insensitive) match against a canonical
// code short-circuits the alias table; otherwise the alias table is
// consulted. ok is false if name matches neither.
func NormalizeRuleName(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	key := normaliseKey(name)
	for _, code := range canonicalCodes {
		if normaliseKey(code) == key {
			return code, true
		}
	}
	if code, ok := aliases[key]; ok {
		return code, true
	}
	return "", false
}

// SuggestRule implements "did you mean" behaviour: when a user's rule name
// fails to normalise, rank the canonical codes by fuzzy closeness to the raw
// input and return the closest match plus whether the match is close enough
// to suggest at all.
func SuggestRule(name string) (string, bool) {
	if name == "" || len(canonicalCodes) == 0 {
		return "", false
	}
	ranks := fuzzy.RankFindFold(name, canonicalCodes)
	if len(ranks) == 0 {
		return "", false
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target, true
}
