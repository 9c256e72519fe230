package sat

import (
	"sort"
	"testing"
)

func sortedLits(lits []Literal) []Literal {
	out := append([]Literal(nil), lits...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func litSliceEqual(a, b []Literal) bool {
	a, b = sortedLits(a), sortedLits(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// countUnassigned returns how many literals of lits have an unassigned
// variable.
func countUnassigned(s *Solver, lits []Literal) int {
	n := 0
	for _, l := range lits {
		if s.assigns.IsUnassigned(l) {
			n++
		}
	}
	return n
}

func TestResolveDropsPivot(t *testing.T) {
	// (x0 ∨ x1) resolved with (¬x0 ∨ x2) on variable 0 yields (x1 ∨ x2).
	a := []Literal{PositiveLiteral(0), PositiveLiteral(1)}
	b := []Literal{NegativeLiteral(0), PositiveLiteral(2)}

	s := NewDefaultSolver(3)
	got := s.resolve(a, b, 0)
	want := []Literal{PositiveLiteral(1), PositiveLiteral(2)}
	if !litSliceEqual(got, want) {
		t.Fatalf("resolve() = %v, want %v", got, want)
	}
	for _, l := range got {
		if l.Var() == 0 {
			t.Fatalf("resolve() kept pivot variable: %v", got)
		}
	}
}

func TestResolveDeduplicates(t *testing.T) {
	a := []Literal{PositiveLiteral(0), PositiveLiteral(1)}
	b := []Literal{NegativeLiteral(0), PositiveLiteral(1)}

	s := NewDefaultSolver(2)
	got := s.resolve(a, b, 0)
	want := []Literal{PositiveLiteral(1)}
	if !litSliceEqual(got, want) {
		t.Fatalf("resolve() = %v, want %v", got, want)
	}
}

func TestAnalyzeAlreadyAtFirstUIP(t *testing.T) {
	// x0 (decision, level 1) propagates x1 via (¬x0 ∨ x1). x2 (decision,
	// level 2) directly falsifies (¬x1 ∨ ¬x2): only one literal of that
	// clause (¬x2) sits at the conflict level, so analyze must learn the
	// conflict clause unchanged, with no resolution steps at all.
	s := NewDefaultSolver(4)

	antX1 := s.clauses.Append([]Literal{NegativeLiteral(0), PositiveLiteral(1)}, false)
	confl := s.clauses.Append([]Literal{NegativeLiteral(1), NegativeLiteral(2)}, false)

	s.assigns.Assign(PositiveLiteral(0), 1, noAntecedent) // decision at level 1
	s.assigns.Assign(PositiveLiteral(1), 1, antX1)         // propagated at level 1
	s.assigns.Assign(PositiveLiteral(2), 2, noAntecedent) // decision at level 2, falsifies confl

	bjLevel := s.analyze(confl, 2)

	if bjLevel != 1 {
		t.Fatalf("analyze() backjump level = %d, want 1", bjLevel)
	}

	// The backjump resets the level of every unassigned variable to 0, so
	// the single pre-backjump-level literal shows up as the clause's only
	// unassigned literal: the learnt clause is unit after the backjump.
	learnt := s.clauses.Get(s.clauses.Len() - 1)
	if countUnassigned(s, learnt.Literals()) != 1 {
		t.Fatalf("learnt clause %v does not have exactly one literal unassigned by the backjump", learnt)
	}

	want := []Literal{NegativeLiteral(1), NegativeLiteral(2)}
	if !litSliceEqual(learnt.Literals(), want) {
		t.Fatalf("learnt clause = %v, want %v", learnt.Literals(), want)
	}
	if s.assigns.Value(2) != Unknown {
		t.Fatalf("variable 2 should have been unassigned by the backjump")
	}
	if s.assigns.Value(0) != True || s.assigns.Value(1) != True {
		t.Fatalf("variables at or below the backjump level must survive")
	}
}

func TestAnalyzeResolvesOutPropagatedLiteral(t *testing.T) {
	// x0 (decision, level 1); x1 (decision, level 2) propagates x2 via
	// (¬x1 ∨ x2); the conflict clause (¬x0 ∨ ¬x1 ∨ ¬x2) has two level-2
	// literals (¬x1, ¬x2), so analyze must resolve away the propagated one
	// (¬x2, pivot x2) against its antecedent before reaching the first UIP.
	s := NewDefaultSolver(4)

	antX2 := s.clauses.Append([]Literal{NegativeLiteral(1), PositiveLiteral(2)}, false)
	confl := s.clauses.Append([]Literal{NegativeLiteral(0), NegativeLiteral(1), NegativeLiteral(2)}, false)

	s.assigns.Assign(PositiveLiteral(0), 1, noAntecedent) // decision, level 1
	s.assigns.Assign(PositiveLiteral(1), 2, noAntecedent) // decision, level 2
	s.assigns.Assign(PositiveLiteral(2), 2, antX2)         // propagated, level 2

	bjLevel := s.analyze(confl, 2)

	if bjLevel != 1 {
		t.Fatalf("analyze() backjump level = %d, want 1", bjLevel)
	}

	learnt := s.clauses.Get(s.clauses.Len() - 1)
	want := []Literal{NegativeLiteral(0), NegativeLiteral(1)}
	if !litSliceEqual(learnt.Literals(), want) {
		t.Fatalf("learnt clause = %v, want %v", learnt.Literals(), want)
	}
	if countUnassigned(s, learnt.Literals()) != 1 {
		t.Fatalf("learnt clause %v is not a valid first-UIP clause", learnt)
	}
	if s.assigns.Value(1) != Unknown || s.assigns.Value(2) != Unknown {
		t.Fatalf("variables above the backjump level must be unassigned")
	}
	if s.assigns.Value(0) != True {
		t.Fatalf("variable at or below the backjump level must survive")
	}
}
