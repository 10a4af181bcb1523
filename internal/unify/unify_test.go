package unify

import (
	"testing"

	"github.com/kailashmaurya/folresolution/internal/term"
)

func TestTermsVariableBindsToConstant(t *testing.T) {
	sub, ok := Terms([]term.Term{term.New("x")}, []term.Term{term.New("A")})
	if !ok {
		t.Fatal("expected unification to succeed")
	}
	bound, ok := sub.Lookup("x")
	if !ok || !bound.Equal(term.New("A")) {
		t.Fatalf("expected x bound to A, got %v (ok=%v)", bound, ok)
	}
}

func TestTermsConstantMismatchFails(t *testing.T) {
	_, ok := Terms([]term.Term{term.New("A")}, []term.Term{term.New("B")})
	if ok {
		t.Fatal("expected unification of distinct constants to fail")
	}
}

func TestTermsLengthMismatchFails(t *testing.T) {
	_, ok := Terms([]term.Term{term.New("A")}, []term.Term{term.New("A"), term.New("B")})
	if ok {
		t.Fatal("expected unification of mismatched-length argument lists to fail")
	}
}

func TestTermsVariableToVariable(t *testing.T) {
	sub, ok := Terms([]term.Term{term.New("x"), term.New("x")}, []term.Term{term.New("y"), term.New("A")})
	if !ok {
		t.Fatal("expected unification to succeed")
	}
	applied := Apply(sub, []term.Term{term.New("x")})
	if applied[0].Name != "y" && applied[0].Name != "A" {
		t.Fatalf("expected x to resolve to y or A transitively, got %v", applied[0])
	}
}

// TestIdentityUnifiesWithItself covers the property that unify(x, x, σ)
// == σ for any term x and consistent σ.
func TestIdentityUnifiesWithItself(t *testing.T) {
	x := term.New("A")
	sub, ok := unifyOne(x, x, New())
	if !ok {
		t.Fatal("a term should always unify with itself")
	}
	if len(sub) != 0 {
		t.Fatalf("unifying identical constants should not add bindings, got %v", sub)
	}
}

func TestApplyWithEmptySubstitutionIsIdentity(t *testing.T) {
	args := []term.Term{term.New("x"), term.New("A")}
	got := Apply(New(), args)
	for i := range args {
		if !got[i].Equal(args[i]) {
			t.Fatalf("Apply with empty substitution changed argument %d: %v -> %v", i, args[i], got[i])
		}
	}
}

// TestUnifyProducesEqualInstances covers the property that if
// unify(a, b, {}) == σ then apply(σ, a) == apply(σ, b) as sequences.
func TestUnifyProducesEqualInstances(t *testing.T) {
	a := []term.Term{term.New("x"), term.New("B")}
	b := []term.Term{term.New("A"), term.New("y")}
	sub, ok := Terms(a, b)
	if !ok {
		t.Fatal("expected unification to succeed")
	}
	aInst := Apply(sub, a)
	bInst := Apply(sub, b)
	for i := range aInst {
		if !aInst[i].Equal(bInst[i]) {
			t.Fatalf("instances differ at position %d: %v vs %v", i, aInst[i], bInst[i])
		}
	}
}
