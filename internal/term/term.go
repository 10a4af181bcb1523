// Package term defines the atomic term vocabulary the prover reasons over:
// variables and constants. Arguments to predicates are always one of these
// two kinds — the input grammar has no function symbols, so a term never
// nests another term inside it.
package term

import "unicode"

// Kind tags a Term as either a logic variable or a ground constant.
type Kind int

const (
	// Variable is a lowercase-initial token, e.g. "x", "child".
	Variable Kind = iota
	// Constant is an uppercase-initial token, e.g. "A", "John".
	Constant
)

// Term is an atomic argument to a predicate literal.
type Term struct {
	Kind Kind
	Name string
}

// New classifies a raw token into a Variable or Constant Term using the
// syntactic rule from the grammar: a token is a variable iff its first rune
// is lowercase.
func New(token string) Term {
	if token != "" && unicode.IsLower(rune(token[0])) {
		return Term{Kind: Variable, Name: token}
	}
	return Term{Kind: Constant, Name: token}
}

// IsVariable reports whether t is a logic variable.
func (t Term) IsVariable() bool { return t.Kind == Variable }

// String returns the term's surface token.
func (t Term) String() string { return t.Name }

// Equal reports whether two terms denote the same symbol of the same kind.
func (t Term) Equal(other Term) bool {
	return t.Kind == other.Kind && t.Name == other.Name
}
