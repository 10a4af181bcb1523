// Package standardize renames the variables of each freshly produced
// clause to a globally unique name, so that no two clauses in a knowledge
// base ever share a variable. The naming scheme — aa, ab, ..., az,
// ba, ... — is drawn from a monotonic bijective base-26 counter.
package standardize

import (
	"github.com/kailashmaurya/folresolution/internal/clause"
	"github.com/kailashmaurya/folresolution/internal/term"
	"github.com/kailashmaurya/folresolution/internal/unify"
)

const lowerAlpha = "abcdefghijklmnopqrstuvwxyz"

// Generator produces fresh standardized variable names. It is an explicit,
// instantiable counter rather than process-wide global state, so that a
// test (or a second knowledge base load) can start from a clean counter
// instead of inheriting state from whatever ran before it.
type Generator struct {
	count int
}

// NewGenerator returns a counter starting at zero (the next name is "aa").
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns the next fresh variable term and advances the counter.
func (g *Generator) Next() term.Term {
	name := giveConstant(g.count)
	g.count++
	return term.New(name)
}

// giveConstant implements a bijective base-26 counter over lowercase
// letters: 0 -> "aa", 1 -> "ab", ..., 25 -> "az", 26 -> "ba", ...
func giveConstant(count int) string {
	start := count + 26
	var buf []byte
	for start >= 26 {
		val := start % 26
		buf = append([]byte{lowerAlpha[val]}, buf...)
		start /= 26
	}
	buf = append([]byte{lowerAlpha[start-1]}, buf...)
	return string(buf)
}

// Clause renames every variable occurrence in c to a fresh name drawn from
// gen, using one substitution shared across all of c's literals so that
// repeated occurrences of the same source variable map to the same fresh
// variable within the clause.
func Clause(gen *Generator, c clause.Clause) clause.Clause {
	sub := unify.New()
	for _, lit := range c.Literals {
		for _, arg := range lit.Args {
			if !arg.IsVariable() {
				continue
			}
			if _, already := sub.Lookup(arg.Name); already {
				continue
			}
			sub.Bind(arg.Name, gen.Next())
		}
	}
	return clause.New(clause.SubstituteAll(c.Literals, sub))
}
