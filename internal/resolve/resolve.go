// Package resolve implements the set-of-support style saturation loop:
// resolve every clause against its predicate-indexed candidates, collect
// resolvents, and either report a contradiction (the empty clause) or grow
// the knowledge base and repeat, up to a cutoff.
package resolve

import "github.com/kailashmaurya/folresolution/internal/clause"

// KillLimit bounds the working knowledge base's size; exceeding it aborts
// the search and reports non-entailment.
const KillLimit = 8000

// Saturate runs resolution to closure (or to the cutoff) against kb, which
// is mutated in place by adding resolvents as they are derived. It returns
// true the moment the empty clause is derived, and false if the search
// either saturates without deriving it or exceeds killLimit.
func Saturate(kb *clause.KnowledgeBase, killLimit int) bool {
	for {
		if kb.Len() > killLimit {
			return false
		}

		// pairSeen dedups unordered (c1, c2) pairs within this single pass
		// only — it is intentionally rebuilt every iteration, so that each
		// unordered candidate pair is resolved at most once per pass without
		// needing any cross-pass discard bookkeeping.
		pairSeen := make(map[string]struct{})
		newStatements := make(map[string]clause.Clause)

		for _, c1 := range kb.All() {
			for _, c2 := range kb.Candidates(c1) {
				if c1.Equal(c2) {
					continue
				}
				pairKey := unorderedKey(c1.Key(), c2.Key())
				if _, seen := pairSeen[pairKey]; seen {
					continue
				}
				pairSeen[pairKey] = struct{}{}

				res := clause.Resolve(c1, c2)
				if res.Contradiction {
					return true
				}
				for _, r := range res.Resolvents {
					newStatements[r.Key()] = r
				}
			}
		}

		allKnown := true
		for _, stmt := range newStatements {
			if !kb.Has(stmt) {
				allKnown = false
				break
			}
		}
		if allKnown {
			return false
		}
		for _, stmt := range newStatements {
			kb.Add(stmt)
		}
	}
}

// unorderedKey combines two clause keys into a single map key that is the
// same regardless of argument order, so (c1, c2) and (c2, c1) dedup
// together within a pass.
func unorderedKey(a, b string) string {
	if a < b {
		return a + "\x00" + b
	}
	return b + "\x00" + a
}
