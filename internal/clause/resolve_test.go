package clause

import "testing"

func TestResolveProducesContradiction(t *testing.T) {
	c1 := New([]Literal{lit("P", false, "A")})
	c2 := New([]Literal{lit("P", true, "A")})
	res := Resolve(c1, c2)
	if !res.Contradiction {
		t.Fatal("resolving P(A) with ~P(A) should yield the empty clause")
	}
}

func TestResolveProducesResolvent(t *testing.T) {
	// ~P(x)|Q(x)  and  P(A)  resolve to Q(A).
	c1 := New([]Literal{lit("P", true, "x"), lit("Q", false, "x")})
	c2 := New([]Literal{lit("P", false, "A")})
	res := Resolve(c1, c2)
	if res.Contradiction {
		t.Fatal("did not expect a contradiction")
	}
	if len(res.Resolvents) != 1 {
		t.Fatalf("expected exactly one resolvent, got %d", len(res.Resolvents))
	}
	got := res.Resolvents[0]
	want := New([]Literal{lit("Q", false, "A")})
	if !got.Equal(want) {
		t.Fatalf("expected resolvent %q, got %q", want.Key(), got.Key())
	}
}

func TestResolveNoMatchingPredicateYieldsNoResolvents(t *testing.T) {
	c1 := New([]Literal{lit("P", false, "A")})
	c2 := New([]Literal{lit("Q", false, "A")})
	res := Resolve(c1, c2)
	if res.Contradiction || len(res.Resolvents) != 0 {
		t.Fatalf("expected no resolvents between unrelated predicates, got %+v", res)
	}
}
