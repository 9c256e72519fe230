package sat

import "testing"

func TestLiteralEncoding(t *testing.T) {
	for v := 0; v < 5; v++ {
		pos := PositiveLiteral(v)
		neg := NegativeLiteral(v)

		if got := pos.Var(); got != v {
			t.Errorf("PositiveLiteral(%d).Var() = %d, want %d", v, got, v)
		}
		if got := neg.Var(); got != v {
			t.Errorf("NegativeLiteral(%d).Var() = %d, want %d", v, got, v)
		}
		if !pos.IsPositive() {
			t.Errorf("PositiveLiteral(%d).IsPositive() = false, want true", v)
		}
		if neg.IsPositive() {
			t.Errorf("NegativeLiteral(%d).IsPositive() = true, want false", v)
		}
		if pos.Opposite() != neg {
			t.Errorf("PositiveLiteral(%d).Opposite() != NegativeLiteral(%d)", v, v)
		}
		if neg.Opposite() != pos {
			t.Errorf("NegativeLiteral(%d).Opposite() != PositiveLiteral(%d)", v, v)
		}
		if pos == neg {
			t.Errorf("PositiveLiteral(%d) == NegativeLiteral(%d)", v, v)
		}
	}
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		lit  Literal
		want string
	}{
		{PositiveLiteral(0), "1"},
		{NegativeLiteral(0), "-1"},
		{PositiveLiteral(4), "5"},
		{NegativeLiteral(4), "-5"},
	}
	for _, tc := range tests {
		if got := tc.lit.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.lit, got, tc.want)
		}
	}
}
