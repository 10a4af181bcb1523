package clause

import "github.com/kailashmaurya/folresolution/internal/unify"

// Resolution is the outcome of resolving two clauses: either a (possibly
// empty) set of resolvents, or a signal that the empty clause was derived.
type Resolution struct {
	Resolvents    []Clause
	Contradiction bool
}

// Resolve applies the binary resolution rule to c1 and c2: for every pair
// of literals with matching predicate name and opposite polarity, attempt to
// unify their arguments; each success yields one resolvent, the union of
// the two clauses' remaining literals under the unifying substitution. If
// any such resolvent is empty, resolution has found a contradiction and the
// caller should stop searching immediately.
func Resolve(c1, c2 Clause) Resolution {
	var resolvents []Clause
	for i, p1 := range c1.Literals {
		for j, p2 := range c2.Literals {
			if !p1.CanResolveWith(p2) {
				continue
			}
			sub, ok := unify.Terms(p1.Args, p2.Args)
			if !ok {
				continue
			}
			rest1 := c1.Without(i)
			rest2 := c2.Without(j)
			if len(rest1) == 0 && len(rest2) == 0 {
				return Resolution{Contradiction: true}
			}
			merged := make([]Literal, 0, len(rest1)+len(rest2))
			merged = append(merged, SubstituteAll(rest1, sub)...)
			merged = append(merged, SubstituteAll(rest2, sub)...)
			resolvents = append(resolvents, New(merged))
		}
	}
	return Resolution{Resolvents: resolvents}
}
