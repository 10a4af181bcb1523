package resolve

import (
	"testing"

	"github.com/kailashmaurya/folresolution/internal/clause"
	"github.com/kailashmaurya/folresolution/internal/kb"
)

func TestSaturateDetectsImmediateContradiction(t *testing.T) {
	base, err := kb.Load([]string{"P(A)", "~P(A)"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Saturate(base, KillLimit) {
		t.Fatal("expected a direct contradiction to be detected")
	}
}

func TestSaturateModusPonensDerivesContradiction(t *testing.T) {
	base, err := kb.Load([]string{"P(A)", "P(x)=>Q(x)", "~Q(A)"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Saturate(base, KillLimit) {
		t.Fatal("expected modus ponens to derive the empty clause")
	}
}

func TestSaturateReturnsFalseWhenNotEntailed(t *testing.T) {
	base, err := kb.Load([]string{"P(A)", "Q(B)"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Saturate(base, KillLimit) {
		t.Fatal("expected no contradiction: P(A) and Q(B) share no predicate")
	}
}

// TestSaturateRespectsKillLimit covers the cutoff scenario: once the
// working knowledge base holds more than killLimit clauses, Saturate
// reports non-entailment instead of resolving further.
func TestSaturateRespectsKillLimit(t *testing.T) {
	// The chain below contains no contradiction, and its four clauses
	// already exceed the (tiny, test-only) limit of 1, so Saturate stops at
	// the size check before resolving anything.
	base, err := kb.Load([]string{
		"P0(x)=>P1(x)",
		"P1(x)=>P2(x)",
		"P2(x)=>P3(x)",
		"P0(A)",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Saturate(base, 1) {
		t.Fatal("expected a 1-clause kill limit to cut the search off before any contradiction")
	}
}

func TestUnorderedKeyIsSymmetric(t *testing.T) {
	if unorderedKey("a", "b") != unorderedKey("b", "a") {
		t.Fatal("expected unorderedKey to be symmetric")
	}
}

func TestSaturateHandlesEmptyKnowledgeBase(t *testing.T) {
	base := clause.NewKB()
	if Saturate(base, KillLimit) {
		t.Fatal("an empty knowledge base contains no contradiction")
	}
}
