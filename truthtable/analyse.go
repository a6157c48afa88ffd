// Package truthtable implements the truth-table analyser: variable
// collection, assignment enumeration, per-line and per-sub-expression
// evaluation and classification, and argument-validity checking with
// counter-example capture.
package truthtable

import (
	"sort"
	"sync"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/proof"
)

// Classification is one of the three reductions of a formula's full
// truth-vector.
type Classification int

const (
	Contingent Classification = iota
	Tautology
	Contradiction
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "Tautology"
	case Contradiction:
		return "Contradiction"
	default:
		return "Contingent"
	}
}

// LineResult is the per-proof-line or per-sub-expression evaluation record.
type LineResult struct {
	Expression     ast.Expression
	Results        []bool
	Classification Classification
}

// Result is the full output of a truth-table analysis run.
type Result struct {
	Variables       []string
	Combinations    []ast.Assignment
	PerLine         []LineResult
	PerSubexpr      []LineResult
	Valid           bool
	CounterExamples []ast.Assignment
}

// Options configures Analyse. The zero value is the documented default:
// sequential evaluation, sub-expressions ordered by ascending AST depth.
type Options struct {
	// Parallel evaluates the per-line and per-sub-expression vectors
	// concurrently, one goroutine per expression; result
	// vectors stay aligned with the assignment enumeration order either
	// way. Off by default.
	Parallel bool
}

// CollectVariables gathers the distinct variable names across proofs in
// first-encountered order, deduplicated.
func CollectVariables(lines []proof.Line) []string {
	var order []string
	seen := make(map[string]bool)
	for _, l := range lines {
		for _, name := range ast.Variables(l.AST) {
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
		}
	}
	return order
}

// Combinations enumerates the 2^n assignments for variables, MSB-first: for
// assignment index i and 0-based position k, the value is
// ((i >> (n-1-k)) & 1) != 0.
func Combinations(variables []string) []ast.Assignment {
	n := len(variables)
	total := 1 << n
	out := make([]ast.Assignment, total)
	for i := 0; i < total; i++ {
		a := make(ast.Assignment, n)
		for k, name := range variables {
			a[name] = ((i >> (n - 1 - k)) & 1) != 0
		}
		out[i] = a
	}
	return out
}

// Analyse runs the full variable-collection, enumeration, evaluation and
// validity-checking pipeline over lines.
func Analyse(lines []proof.Line, opts Options) Result {
	variables := CollectVariables(lines)
	combos := Combinations(variables)

	exprs := make([]ast.Expression, len(lines))
	for i, l := range lines {
		exprs[i] = l.AST
	}

	perLine := evaluateAll(exprs, combos, opts.Parallel)

	subexprs := ast.CollectSubExpressions(exprs)
	sort.SliceStable(subexprs, func(i, j int) bool {
		return ast.Depth(subexprs[i]) < ast.Depth(subexprs[j])
	})
	perSub := evaluateAll(subexprs, combos, opts.Parallel)

	valid, counterExamples := checkValidity(lines, perLine, combos)

	return Result{
		Variables:       variables,
		Combinations:    combos,
		PerLine:         perLine,
		PerSubexpr:      perSub,
		Valid:           valid,
		CounterExamples: counterExamples,
	}
}

func evaluateAll(exprs []ast.Expression, combos []ast.Assignment, parallel bool) []LineResult {
	out := make([]LineResult, len(exprs))

	eval := func(idx int) {
		e := exprs[idx]
		results := make([]bool, len(combos))
		for i, a := range combos {
			results[i] = ast.Evaluate(e, a)
		}
		out[idx] = LineResult{
			Expression:     e,
			Results:        results,
			Classification: classify(results),
		}
	}

	if !parallel {
		for i := range exprs {
			eval(i)
		}
		return out
	}

	var wg sync.WaitGroup
	for i := range exprs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			eval(i)
		}(i)
	}
	wg.Wait()
	return out
}

func classify(results []bool) Classification {
	allTrue, allFalse := true, true
	for _, r := range results {
		if r {
			allFalse = false
		} else {
			allTrue = false
		}
	}
	switch {
	case allTrue:
		return Tautology
	case allFalse:
		return Contradiction
	default:
		return Contingent
	}
}

// checkValidity treats the lines with AutoType = Premise as premises and the
// last line of the input as the conclusion, regardless of its type. For
// every assignment where all premises are true and the conclusion is false,
// the assignment is a counter-example.
func checkValidity(lines []proof.Line, perLine []LineResult, combos []ast.Assignment) (bool, []ast.Assignment) {
	if len(lines) == 0 {
		return true, nil
	}

	var premiseIdx []int
	for i, l := range lines {
		if l.AutoType == proof.Premise {
			premiseIdx = append(premiseIdx, i)
		}
	}
	conclusionIdx := len(lines) - 1

	var counterExamples []ast.Assignment
	for ci := range combos {
		allPremisesTrue := true
		for _, pi := range premiseIdx {
			if !perLine[pi].Results[ci] {
				allPremisesTrue = false
				break
			}
		}
		if allPremisesTrue && !perLine[conclusionIdx].Results[ci] {
			counterExamples = append(counterExamples, combos[ci])
		}
	}

	return len(counterExamples) == 0, counterExamples
}
