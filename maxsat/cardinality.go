package maxsat

// sequentialCounter returns a complete Sinz sequential-counter CNF encoding
// of "at most k of the given (1-based, positive) variables are true", plus
// the number of fresh auxiliary variables it introduced. firstAux is the
// first variable ID the encoding is free to use for its internal registers;
// callers must not reuse [firstAux, firstAux+numAux) for anything else.
//
// This encoding emits every closing clause, including the final
// "¬b_n ∨ ¬s_{n-1,k}" clause that actually forbids the (k+1)-th true
// variable - omitting it silently upgrades the constraint to "at most k+1".
func sequentialCounter(vars []int, k int, firstAux int) (clauses [][]int, numAux int) {
	n := len(vars)
	if k >= n {
		return nil, 0 // constraint is vacuous
	}
	if k == 0 {
		clauses = make([][]int, n)
		for i, v := range vars {
			clauses[i] = []int{-v}
		}
		return clauses, 0
	}

	// s[i][j], for i in [0, n-2] and j in [0, k-1], represents register
	// s_{i+1,j+1} in the standard 1-based presentation of the encoding: "at
	// least j+1 of vars[0..i] are true". Registers are fresh variables
	// numbered sequentially from firstAux in row-major (i, then j) order.
	s := make([][]int, n-1)
	next := firstAux
	for i := range s {
		s[i] = make([]int, k)
		for j := range s[i] {
			s[i][j] = next
			next++
		}
	}
	numAux = next - firstAux

	add := func(c ...int) { clauses = append(clauses, append([]int(nil), c...)) }

	// Row 0: only vars[0] has been seen.
	add(-vars[0], s[0][0])
	for j := 1; j < k; j++ {
		add(-s[0][j])
	}

	// Rows 1..n-2: fold in vars[i] given the running counts from row i-1.
	for i := 1; i < n-1; i++ {
		add(-vars[i], s[i][0])
		add(-s[i-1][0], s[i][0])
		for j := 1; j < k; j++ {
			add(-vars[i], -s[i-1][j-1], s[i][j])
			add(-s[i-1][j], s[i][j])
		}
		add(-vars[i], -s[i-1][k-1]) // forbid a (k+1)-th true variable mid-sequence
	}

	// Closing clause: the last variable cannot be the one that pushes the
	// count past k either.
	add(-vars[n-1], -s[n-2][k-1])

	return clauses, numAux
}
