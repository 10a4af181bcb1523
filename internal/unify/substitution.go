// Package unify implements Robinson unification over flat predicate
// argument lists, splitting "the map" (Substitution) from "how it is
// threaded through a unification step" the way relational solvers
// typically do — but unlike a triangular (chasing) substitution used for
// general relational search, the map produced here is applied to a
// literal in a single flat pass: bindings are never chased through
// other bindings at apply time.
package unify

import "github.com/kailashmaurya/folresolution/internal/term"

// Substitution maps a variable name to the term it is bound to.
type Substitution map[string]term.Term

// New returns an empty substitution, the identity element for unification.
func New() Substitution {
	return Substitution{}
}

// Lookup returns the term v is bound to, if any.
func (s Substitution) Lookup(v string) (term.Term, bool) {
	t, ok := s[v]
	return t, ok
}

// Bind records that variable v maps to t, returning the same substitution
// for call chaining.
func (s Substitution) Bind(v string, t term.Term) Substitution {
	s[v] = t
	return s
}

// Apply rewrites args by replacing every argument that is a bound variable
// with its image in s. This is a single simultaneous rewrite, not a
// fixed-point chase: if s maps x->y and y->A, applying s to [x] yields [y],
// not [A]. Unification can produce such chains: unifying [x,x] with
// [y,A] binds x->y and then y->A.
func Apply(s Substitution, args []term.Term) []term.Term {
	if len(s) == 0 {
		return args
	}
	out := make([]term.Term, len(args))
	for i, a := range args {
		if a.IsVariable() {
			if bound, ok := s[a.Name]; ok {
				out[i] = bound
				continue
			}
		}
		out[i] = a
	}
	return out
}
