package standardize

import (
	"testing"

	"github.com/kailashmaurya/folresolution/internal/clause"
	"github.com/kailashmaurya/folresolution/internal/term"
)

func lit(name string, negated bool, args ...string) clause.Literal {
	ts := make([]term.Term, len(args))
	for i, a := range args {
		ts[i] = term.New(a)
	}
	return clause.NewLiteral(name, negated, ts)
}

// TestGiveConstantSequence spot-checks the bijective base-26 sequence:
// 0->"aa", 1->"ab", 25->"az", 26->"ba".
func TestGiveConstantSequence(t *testing.T) {
	cases := map[int]string{
		0:  "aa",
		1:  "ab",
		25: "az",
		26: "ba",
		27: "bb",
	}
	for count, want := range cases {
		got := giveConstant(count)
		if got != want {
			t.Errorf("giveConstant(%d) = %q, want %q", count, got, want)
		}
	}
}

func TestGeneratorNextAdvancesMonotonically(t *testing.T) {
	gen := NewGenerator()
	first := gen.Next()
	second := gen.Next()
	if first.Name != "aa" || second.Name != "ab" {
		t.Fatalf("expected aa then ab, got %q then %q", first.Name, second.Name)
	}
}

func TestClauseRenamesEveryVariableOccurrenceConsistently(t *testing.T) {
	gen := NewGenerator()
	c := clause.New([]clause.Literal{
		lit("P", false, "x"),
		lit("Q", true, "x", "A"),
	})
	renamed := Clause(gen, c)

	var seen string
	for _, l := range renamed.Literals {
		for _, arg := range l.Args {
			if !arg.IsVariable() {
				continue
			}
			if seen == "" {
				seen = arg.Name
			} else if arg.Name != seen {
				t.Fatalf("expected the same source variable to map to one fresh name throughout the clause, got %q and %q", seen, arg.Name)
			}
		}
	}
	if seen == "" {
		t.Fatal("expected at least one variable to survive renaming")
	}
}

// TestClauseDoesNotRenameConstants covers the rule that standardization
// only touches variables, never constants.
func TestClauseDoesNotRenameConstants(t *testing.T) {
	gen := NewGenerator()
	c := clause.New([]clause.Literal{lit("P", false, "A")})
	renamed := Clause(gen, c)
	if renamed.Literals[0].Args[0].Name != "A" {
		t.Fatalf("expected constant A to be left alone, got %q", renamed.Literals[0].Args[0].Name)
	}
}

// TestDistinctClausesGetDisjointVariables covers the
// variable-uniqueness-across-clauses invariant: running two clauses
// through the same generator must never produce overlapping fresh
// variable names.
func TestDistinctClausesGetDisjointVariables(t *testing.T) {
	gen := NewGenerator()
	c1 := clause.New([]clause.Literal{lit("P", false, "x")})
	c2 := clause.New([]clause.Literal{lit("Q", false, "x")})

	r1 := Clause(gen, c1)
	r2 := Clause(gen, c2)

	if r1.Literals[0].Args[0].Name == r2.Literals[0].Args[0].Name {
		t.Fatalf("expected disjoint fresh variable names across clauses, both got %q", r1.Literals[0].Args[0].Name)
	}
}
