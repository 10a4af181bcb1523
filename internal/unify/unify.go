package unify

import "github.com/kailashmaurya/folresolution/internal/term"

// Every function here returns a boolean ok alongside the Substitution;
// unify reports failure with that boolean rather than a distinguished zero
// value, since an empty Substitution is itself a valid success result.

// Terms attempts to unify two equal-length argument lists, threading a
// single accumulator substitution left to right across the pair. It
// returns the resulting substitution and true on success, or (nil, false)
// on failure.
func Terms(a, b []term.Term) (Substitution, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	sub := New()
	for i := range a {
		var ok bool
		sub, ok = unifyOne(a[i], b[i], sub)
		if !ok {
			return nil, false
		}
	}
	return sub, true
}

// unifyOne unifies a single pair of terms under the accumulated
// substitution sub, handling the variable-vs-variable, variable-vs-constant,
// and constant-vs-constant cases.
func unifyOne(x, y term.Term, sub Substitution) (Substitution, bool) {
	if x.Equal(y) {
		return sub, true
	}
	if x.IsVariable() {
		return unifyVar(x, y, sub)
	}
	if y.IsVariable() {
		return unifyVar(y, x, sub)
	}
	return nil, false
}

// unifyVar binds logic variable v to term t under sub, resolving through
// any existing binding of v or t first. No occurs check is performed: the
// grammar admits only atomic arguments, so no term constructible by a unify
// call can contain v, and therefore no infinite term can arise.
func unifyVar(v, t term.Term, sub Substitution) (Substitution, bool) {
	if bound, ok := sub.Lookup(v.Name); ok {
		return unifyOne(bound, t, sub)
	}
	if t.IsVariable() {
		if bound, ok := sub.Lookup(t.Name); ok {
			return unifyOne(v, bound, sub)
		}
	}
	return sub.Bind(v.Name, t), true
}
