// Package lemmon parses the textual Lemmon deduction syntax
// ("[<refs>] (<n>) <formula> [<details>]") into proof.Line values, running
// the rule detector over every derived line before returning.
package lemmon

import (
	"strconv"
	"strings"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/logicerr"
	"github.com/jafaripur/avicenna-logic-system/parser"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/rules"
)

// Parse reads a multi-line Lemmon proof, one step per line, and returns the
// resulting proof lines with detected_rule populated by running rule
// detection on each non-self-justifying line. Blank lines are ignored; any
// non-blank line that does not match the grammar raises LemmonParseError.
func Parse(text string) ([]proof.Line, error) {
	var lines []proof.Line
	for i, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, err := parseLine(raw, i+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	for i, l := range lines {
		if l.IsSelfJustifying() {
			continue
		}
		if code, ok := rules.Detect(l, lines); ok {
			lines[i].DetectedRule = code
		}
	}
	return lines, nil
}

// CanonicalVarName upper-cases a variable name — a normalisation that
// ast.NewVar deliberately leaves to its callers (see ast package doc on
// NewVar): the formula parser itself preserves case, and this is where a
// Lemmon proof's variables are folded to a single canonical spelling before
// comparison.
func CanonicalVarName(name string) string {
	return strings.ToUpper(name)
}

func parseLine(raw string, sourceLine int) (proof.Line, error) {
	trimmed := strings.TrimSpace(raw)

	open := strings.IndexByte(trimmed, '[')
	closeIdx := strings.IndexByte(trimmed, ']')
	lparen := strings.IndexByte(trimmed, '(')
	rparen := strings.IndexByte(trimmed, ')')
	lastOpen := strings.LastIndexByte(trimmed, '[')
	lastClose := strings.LastIndexByte(trimmed, ']')

	if open != 0 || closeIdx < open || lparen < closeIdx || rparen < lparen ||
		lastOpen <= rparen || lastClose <= lastOpen || !strings.HasSuffix(trimmed, "]") {
		return proof.Line{}, malformed(raw, sourceLine)
	}

	refsPart := trimmed[open+1 : closeIdx]
	nPart := trimmed[lparen+1 : rparen]
	formulaPart := strings.TrimSpace(trimmed[rparen+1 : lastOpen])
	detailsPart := trimmed[lastOpen+1 : lastClose]

	if formulaPart == "" {
		return proof.Line{}, malformed(raw, sourceLine)
	}

	n, err := strconv.Atoi(strings.TrimSpace(nPart))
	if err != nil {
		return proof.Line{}, malformed(raw, sourceLine)
	}

	assumptions, ok := parseIntList(refsPart)
	if !ok {
		return proof.Line{}, malformed(raw, sourceLine)
	}

	expr, perr := parser.Parse(formulaPart)
	if perr != nil {
		return proof.Line{}, perr
	}
	expr = canonicalizeVars(expr)

	citedRefs, ruleText := parseDetails(detailsPart)

	line := proof.Line{
		LineNumber:  n,
		Assumptions: assumptions,
		Formula:     formulaPart,
		AST:         expr,
		CitedRefs:   citedRefs,
		UserRule:    ruleText,
	}

	selfDependency := len(assumptions) == 1 && assumptions[0] == n
	if selfDependency && ruleText != "" && len(citedRefs) == 0 {
		if strings.EqualFold(ruleText, "Premise") {
			line.AutoType = proof.Premise
		} else {
			line.AutoType = proof.Assume
		}
		line.CitedRefs = []int{n}
	}

	return line, nil
}

// parseDetails splits the trailing "[<details>]" body into its
// comma-separated leading line numbers and its trailing rule token.
func parseDetails(details string) ([]int, string) {
	fields := strings.Fields(strings.ReplaceAll(details, ",", " "))
	var nums []int
	i := 0
	for i < len(fields) {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			break
		}
		nums = append(nums, n)
		i++
	}
	ruleText := strings.TrimSpace(strings.Join(fields[i:], " "))
	return nums, ruleText
}

func parseIntList(s string) ([]int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func canonicalizeVars(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case ast.Var:
		return ast.NewVar(CanonicalVarName(n.Name))
	case ast.Not:
		return ast.NewNot(canonicalizeVars(n.Inner))
	case ast.And:
		return ast.NewAnd(canonicalizeVars(n.Left), canonicalizeVars(n.Right))
	case ast.Or:
		return ast.NewOr(canonicalizeVars(n.Left), canonicalizeVars(n.Right))
	case ast.Xor:
		return ast.NewXor(canonicalizeVars(n.Left), canonicalizeVars(n.Right))
	case ast.Implies:
		return ast.NewImplies(canonicalizeVars(n.Left), canonicalizeVars(n.Right))
	case ast.Iff:
		return ast.NewIff(canonicalizeVars(n.Left), canonicalizeVars(n.Right))
	default:
		return e
	}
}

func malformed(raw string, sourceLine int) error {
	return logicerr.New(logicerr.LemmonParseError,
		"line does not match the Lemmon grammar \"[<refs>] (<n>) <formula> [<details>]\"",
		logicerr.Position{Line: sourceLine, Column: 1}, raw)
}
