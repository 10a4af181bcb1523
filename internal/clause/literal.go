// Package clause implements the resolution-ready data model: predicate
// literals, clauses (disjunctions of literals), and a knowledge base with a
// by-predicate-name index, following the same indexed-relation pattern used
// elsewhere for ground facts (name -> bucket of matching rows), adapted
// here to index whole clauses by the predicate names they mention.
package clause

import (
	"strings"

	"github.com/kailashmaurya/folresolution/internal/term"
	"github.com/kailashmaurya/folresolution/internal/unify"
)

// Literal is a single predicate occurrence: a name, a polarity, and an
// ordered argument list. Two literals are equal iff name, negation, and
// arguments coincide.
type Literal struct {
	Name    string
	Negated bool
	Args    []term.Term
}

// NewLiteral builds a literal from its parts.
func NewLiteral(name string, negated bool, args []term.Term) Literal {
	return Literal{Name: name, Negated: negated, Args: args}
}

// Negate returns the logical complement of l.
func (l Literal) Negate() Literal {
	return Literal{Name: l.Name, Negated: !l.Negated, Args: l.Args}
}

// Equal reports whether l and other are the same literal.
func (l Literal) Equal(other Literal) bool {
	if l.Name != other.Name || l.Negated != other.Negated || len(l.Args) != len(other.Args) {
		return false
	}
	for i := range l.Args {
		if !l.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Substitute applies sub to l's arguments, returning a new literal. No
// display string is stored; String renders from the current fields, so
// negation flag and string always stay consistent.
func (l Literal) Substitute(sub unify.Substitution) Literal {
	return Literal{Name: l.Name, Negated: l.Negated, Args: unify.Apply(sub, l.Args)}
}

// String renders l in the surface syntax, e.g. "~Mother(x,John)".
func (l Literal) String() string {
	var b strings.Builder
	if l.Negated {
		b.WriteByte('~')
	}
	b.WriteString(l.Name)
	b.WriteByte('(')
	for i, a := range l.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.Name)
	}
	b.WriteByte(')')
	return b.String()
}

// CanResolveWith reports whether l and other share a predicate name with
// opposite polarity — the precondition for attempting unification during
// resolution.
func (l Literal) CanResolveWith(other Literal) bool {
	return l.Name == other.Name && l.Negated != other.Negated
}

