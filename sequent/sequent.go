// Package sequent implements the argument splitter: it turns a one-line
// sequent "P1, P2, … ⊢ C" into premise and conclusion proof lines.
package sequent

import (
	"strings"

	"github.com/jafaripur/avicenna-logic-system/logicerr"
	"github.com/jafaripur/avicenna-logic-system/parser"
	"github.com/jafaripur/avicenna-logic-system/proof"
)

// Result is the parse_sequent surface operation's return shape.
type Result struct {
	Premises   []proof.Line
	Conclusion proof.Line
}

// turnstiles are the two accepted spellings of the sequent separator: the
// logical turnstile and the "therefore" symbol.
var turnstiles = []string{"⊢", "∴"}

// Parse splits text on exactly one turnstile, comma-splits the premise side,
// and parses every premise and the conclusion formula. It raises
// InvalidConclusion when text contains zero or more than one turnstile, and
// surfaces whatever the underlying formula parser raises for a malformed
// premise or conclusion formula.
func Parse(text string) (Result, error) {
	splitOn, count := "", 0
	for _, t := range turnstiles {
		if n := strings.Count(text, t); n > 0 {
			splitOn = t
			count += n
		}
	}
	if count != 1 {
		return Result{}, logicerr.New(logicerr.InvalidConclusion,
			"a sequent must contain exactly one ⊢ (or ∴)", logicerr.Position{}, text)
	}

	parts := strings.SplitN(text, splitOn, 2)
	premiseSide, conclusionSide := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if conclusionSide == "" {
		return Result{}, logicerr.New(logicerr.InvalidConclusion,
			"a sequent's conclusion must not be empty", logicerr.Position{}, text)
	}

	var premiseFormulas []string
	if premiseSide != "" {
		for _, p := range strings.Split(premiseSide, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			premiseFormulas = append(premiseFormulas, p)
		}
	}

	premises := make([]proof.Line, len(premiseFormulas))
	for i, formula := range premiseFormulas {
		expr, err := parser.Parse(formula)
		if err != nil {
			return Result{}, err
		}
		premises[i] = proof.Line{
			LineNumber: i + 1,
			Formula:    formula,
			AST:        expr,
			AutoType:   proof.Premise,
			CitedRefs:  []int{i + 1},
		}
	}

	conclusionExpr, err := parser.Parse(conclusionSide)
	if err != nil {
		return Result{}, err
	}
	conclusion := proof.Line{
		LineNumber: len(premises) + 1,
		Formula:    conclusionSide,
		AST:        conclusionExpr,
		AutoType:   proof.None,
	}

	return Result{Premises: premises, Conclusion: conclusion}, nil
}
