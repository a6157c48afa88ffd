package proof

// VerifyAssumptionScoping is an opt-in stricter assumption-discharge check:
// it does not gate detected_rule, but a caller that wants the stronger
// guarantee can run it separately over a parsed proof.
//
// A line's assumptions must equal the union of its cited references'
// assumptions, minus any assumption line discharged by this very step — a
// CPA line discharges the Assume line it opens a conditional proof from, an
// RAA line discharges the Assume line whose subproof reached a
// contradiction, and an ∨E line discharges both of the Assume lines opening
// its two disjunct subproofs.
func VerifyAssumptionScoping(line Line, allLines []Line) bool {
	if line.IsSelfJustifying() {
		return true
	}

	byNumber := make(map[int]Line, len(allLines))
	for _, l := range allLines {
		byNumber[l.LineNumber] = l
	}

	union := make(map[int]bool)
	for _, refNum := range line.CitedRefs {
		ref, ok := byNumber[refNum]
		if !ok {
			return false
		}
		for _, a := range ref.Assumptions {
			union[a] = true
		}
	}

	switch {
	case line.DetectedRule == "CPA" || line.DetectedRule == "RAA":
		for _, refNum := range line.CitedRefs {
			ref := byNumber[refNum]
			if ref.AutoType == Assume {
				delete(union, ref.LineNumber)
			}
		}
	case line.DetectedRule == "∨E" && len(line.CitedRefs) == 5:
		// citations are [disjunction, assumeA, concludeA, assumeB, concludeB]:
		// both subproof-opening Assume lines are discharged here.
		delete(union, byNumber[line.CitedRefs[1]].LineNumber)
		delete(union, byNumber[line.CitedRefs[3]].LineNumber)
	}

	if len(union) != len(line.Assumptions) {
		return false
	}
	for _, a := range line.Assumptions {
		if !union[a] {
			return false
		}
	}
	return true
}
