package sat

import "testing"

func TestClauseDBAppendStableIndices(t *testing.T) {
	var db ClauseDB

	i0 := db.Append([]Literal{PositiveLiteral(0), NegativeLiteral(1)}, false)
	i1 := db.Append([]Literal{PositiveLiteral(2)}, true)

	if i0 != 0 || i1 != 1 {
		t.Fatalf("Append indices = (%d, %d), want (0, 1)", i0, i1)
	}
	if db.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", db.Len())
	}
	if db.NumLearnt() != 1 {
		t.Fatalf("NumLearnt() = %d, want 1", db.NumLearnt())
	}

	c0 := db.Get(i0)
	if c0.Learnt() {
		t.Errorf("clause 0 should not be learnt")
	}
	if c0.Len() != 2 {
		t.Errorf("clause 0 has %d literals, want 2", c0.Len())
	}

	// Appending further clauses must not invalidate earlier indices.
	db.Append([]Literal{PositiveLiteral(3)}, true)
	if db.Get(i0) != c0 {
		t.Errorf("clause 0's handle changed after further appends")
	}
}

func TestClauseDBAppendCopiesInput(t *testing.T) {
	var db ClauseDB
	lits := []Literal{PositiveLiteral(0)}
	idx := db.Append(lits, false)

	lits[0] = NegativeLiteral(5)

	if got := db.Get(idx).Literals()[0]; got != PositiveLiteral(0) {
		t.Errorf("clause was aliased to caller's backing array: got %v", got)
	}
}
