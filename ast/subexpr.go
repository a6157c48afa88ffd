package ast

// SubExpressions is a post-order traversal that collects every compound
// node (Not and every binary), dropping duplicates by structural identity
// (Equal, not pointer identity) and keeping first-encountered order. Atomic
// Var nodes are never included.
func SubExpressions(e Expression) []Expression {
	var out []Expression
	var walk func(Expression)
	walk = func(n Expression) {
		for _, c := range Children(n) {
			walk(c)
		}
		if IsAtomic(n) {
			return
		}
		for _, existing := range out {
			if Equal(existing, n) {
				return
			}
		}
		out = append(out, n)
	}
	walk(e)
	return out
}

// CollectSubExpressions runs SubExpressions over every expression in exprs
// and de-duplicates across all of them, preserving first-encountered order
// — the cross-proof collection step used by truthtable.Analyse before the
// caller sorts the result by ascending depth.
func CollectSubExpressions(exprs []Expression) []Expression {
	var out []Expression
	for _, e := range exprs {
		for _, sub := range SubExpressions(e) {
			found := false
			for _, existing := range out {
				if Equal(existing, sub) {
					found = true
					break
				}
			}
			if !found {
				out = append(out, sub)
			}
		}
	}
	return out
}
