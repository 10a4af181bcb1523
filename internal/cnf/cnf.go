// Package cnf rewrites a parsed expression tree into conjunctive normal
// form: a conjunction of disjunctions of literals, via the three classic
// rewrites (implication elimination, De Morgan negation propagation, and
// distribution of ∨ over ∧). Distribution runs to a true fixpoint rather
// than a single pass, since one traversal can leave new ∨-over-∧ patterns
// behind at a different depth in the tree.
package cnf

import (
	"github.com/pkg/errors"

	"github.com/kailashmaurya/folresolution/internal/clause"
	"github.com/kailashmaurya/folresolution/internal/syntax"
)

// RemoveImplications rewrites every "=>" node in place into an
// equivalent "|" node: A=>B ≡ ¬A∨B.
func RemoveImplications(n *syntax.Node) {
	if n == nil || n.IsLeaf() {
		return
	}
	if n.Op == syntax.OpImplies {
		n.Op = syntax.OpOr
		n.Left.Negated = !n.Left.Negated
	}
	RemoveImplications(n.Left)
	RemoveImplications(n.Right)
}

// PropagateNegation pushes a Negated marker on an internal node down to its
// children (De Morgan), flipping & and |, until all remaining negation
// markers sit on leaves.
func PropagateNegation(n *syntax.Node) {
	if n == nil || n.IsLeaf() {
		return
	}
	if n.Negated {
		n.Left.Negated = !n.Left.Negated
		n.Right.Negated = !n.Right.Negated
		if n.Op == syntax.OpAnd {
			n.Op = syntax.OpOr
		} else {
			n.Op = syntax.OpAnd
		}
		n.Negated = false
	}
	PropagateNegation(n.Left)
	PropagateNegation(n.Right)
}

// DistributeOrOverAnd rewrites the tree so no "|" node has a "&" child,
//.4 step 3. A single traversal can create new |-over-&
// patterns (both higher, via the copies it makes, and lower, by exposing
// structure that was previously nested inside an operand); this runs the
// traversal repeatedly until a full pass makes no further change.
func DistributeOrOverAnd(root *syntax.Node) *syntax.Node {
	for distributePass(root) {
	}
	return root
}

func distributePass(n *syntax.Node) bool {
	if n == nil || n.IsLeaf() {
		return false
	}
	changed := false
	if n.Op == syntax.OpOr {
		leftAnd := !n.Left.IsLeaf() && n.Left.Op == syntax.OpAnd
		rightAnd := !n.Right.IsLeaf() && n.Right.Op == syntax.OpAnd
		switch {
		case leftAnd && rightAnd:
			a, b := n.Left.Left, n.Left.Right
			c, d := n.Right.Left, n.Right.Right
			n.Op = syntax.OpAnd
			n.Left = syntax.Binary(syntax.OpAnd,
				syntax.Binary(syntax.OpOr, a, c),
				syntax.Binary(syntax.OpOr, a.Clone(), d))
			n.Right = syntax.Binary(syntax.OpAnd,
				syntax.Binary(syntax.OpOr, b, c.Clone()),
				syntax.Binary(syntax.OpOr, b.Clone(), d.Clone()))
			changed = true
		case leftAnd:
			a, b := n.Left.Left, n.Left.Right
			c := n.Right
			n.Op = syntax.OpAnd
			n.Left = syntax.Binary(syntax.OpOr, a, c)
			n.Right = syntax.Binary(syntax.OpOr, b, c.Clone())
			changed = true
		case rightAnd:
			a := n.Left
			b, c := n.Right.Left, n.Right.Right
			n.Op = syntax.OpAnd
			n.Left = syntax.Binary(syntax.OpOr, a, b)
			n.Right = syntax.Binary(syntax.OpOr, a.Clone(), c)
			changed = true
		}
	}
	if distributePass(n.Left) {
		changed = true
	}
	if distributePass(n.Right) {
		changed = true
	}
	return changed
}

// ToClauses reads a CNF tree into its conjuncts, each split into a set of
// literals, by walking the tree directly rather than round-tripping
// through a flattened string form: only the final clause set needs to be
// equivalent CNF, not any particular string representation along the way.
func ToClauses(root *syntax.Node) ([]clause.Clause, error) {
	conjuncts := flattenAnd(root)
	clauses := make([]clause.Clause, 0, len(conjuncts))
	for _, conj := range conjuncts {
		lits, err := flattenOr(conj)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause.New(lits))
	}
	return clauses, nil
}

func flattenAnd(n *syntax.Node) []*syntax.Node {
	if !n.IsLeaf() && n.Op == syntax.OpAnd {
		return append(flattenAnd(n.Left), flattenAnd(n.Right)...)
	}
	return []*syntax.Node{n}
}

func flattenOr(n *syntax.Node) ([]clause.Literal, error) {
	if n.IsLeaf() {
		lit := n.Literal
		return []clause.Literal{clause.NewLiteral(lit.Name, n.Negated != lit.Negated, lit.Args)}, nil
	}
	switch n.Op {
	case syntax.OpOr:
		left, err := flattenOr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := flattenOr(n.Right)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	case syntax.OpAnd:
		return nil, errors.New("cnf: conjunction found inside a clause after distribution")
	default:
		return nil, errors.Errorf("cnf: unexpected operator %q inside a clause", string(rune(n.Op)))
	}
}

// Normalize parses a single infix FOL sentence and reduces it to a set of
// CNF clauses, running all three rewrites in order.
func Normalize(sentence string) ([]clause.Clause, error) {
	tree, err := syntax.Parse(sentence)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing sentence %q", sentence)
	}
	RemoveImplications(tree)
	PropagateNegation(tree)
	DistributeOrOverAnd(tree)
	clauses, err := ToClauses(tree)
	if err != nil {
		return nil, errors.Wrapf(err, "flattening CNF for sentence %q", sentence)
	}
	return clauses, nil
}
