package clause

import (
	"sort"
	"strings"

	"github.com/kailashmaurya/folresolution/internal/unify"
)

// Clause is an unordered disjunction of literals. Two clauses are equal iff
// their literal sets coincide; the canonical string (literals sorted and
// joined) is used both for equality-independent hashing and as the map key
// the resolver's history dedup and predicate index use.
type Clause struct {
	Literals []Literal
	key      string // memoized canonical form, computed once at construction
}

// New builds a Clause from a literal slice, deduplicating equal literals
// (a clause is a set) and computing its canonical key.
func New(lits []Literal) Clause {
	deduped := make([]Literal, 0, len(lits))
	for _, l := range lits {
		dup := false
		for _, existing := range deduped {
			if existing.Equal(l) {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, l)
		}
	}
	c := Clause{Literals: deduped}
	c.key = canonicalKey(deduped)
	return c
}

// canonicalKey renders a literal set into a stable string: each literal
// formatted independently, then sorted, so that insertion order never
// affects the clause's identity.
func canonicalKey(lits []Literal) string {
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// Key returns the clause's canonical string form, used as a map key by the
// knowledge base index and by the resolver's per-pass history.
func (c Clause) Key() string { return c.key }

// String renders the clause as its literals joined by "|".
func (c Clause) String() string {
	if len(c.Literals) == 0 {
		return "{}" // the empty clause, i.e. a contradiction
	}
	return c.key
}

// Equal reports whether c and other denote the same set of literals.
func (c Clause) Equal(other Clause) bool {
	return c.key == other.key
}

// Empty reports whether c is the empty clause (contradiction).
func (c Clause) Empty() bool { return len(c.Literals) == 0 }

// PredicateNames returns the distinct predicate names appearing in c,
// deduplicated, in no particular order — used to look the clause up in, or
// insert it into, the knowledge base's by-name index.
func (c Clause) PredicateNames() []string {
	seen := make(map[string]struct{}, len(c.Literals))
	names := make([]string, 0, len(c.Literals))
	for _, l := range c.Literals {
		if _, ok := seen[l.Name]; !ok {
			seen[l.Name] = struct{}{}
			names = append(names, l.Name)
		}
	}
	return names
}

// Without returns a new literal slice with the literal at index i removed.
func (c Clause) Without(i int) []Literal {
	out := make([]Literal, 0, len(c.Literals)-1)
	for j, l := range c.Literals {
		if j != i {
			out = append(out, l)
		}
	}
	return out
}

// SubstituteAll applies sub to every literal of lits, returning a new slice.
func SubstituteAll(lits []Literal, sub unify.Substitution) []Literal {
	out := make([]Literal, len(lits))
	for i, l := range lits {
		out[i] = l.Substitute(sub)
	}
	return out
}

// Factor collapses literals of equal polarity and name whose arguments
// unify, applying the resulting substitution across the whole clause. It
// is a recognized utility that the main resolution loop does not invoke on
// its own; callers who want factoring must call it explicitly, and
// internal/resolve never does.
func Factor(c Clause) Clause {
	lits := append([]Literal(nil), c.Literals...)
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			if lits[i].Negated != lits[j].Negated || lits[i].Name != lits[j].Name {
				continue
			}
			sub, ok := unify.Terms(lits[i].Args, lits[j].Args)
			if !ok {
				continue
			}
			lits = SubstituteAll(lits, sub)
		}
	}
	return New(lits)
}
