// Package dpll implements the Davis-Putnam-Logemann-Loveland algorithm: a
// recursive backtracking search over CNF formulas with unit propagation and
// pure-literal elimination. It shares the suite's DIMACS front-end with the
// CDCL solver in package sat, but is a standalone, simpler engine - no
// clause learning, no decision levels, no implication graph. This package's
// algorithm is a degenerate case of the CDCL search, which can be found in
// package sat.
package dpll

// Literal is a signed, nonzero variable reference: v for the positive
// occurrence of variable v, -v for its negation. Variables are numbered
// 1..NumVars, matching the DIMACS convention, rather than the 0-based,
// polarity-packed encoding package sat uses internally - DPLL's recursive
// conditioning works directly against the int clauses the source algorithm
// describes.
type Literal = int

// Clause is a disjunction of literals.
type Clause = []Literal

// abs returns the absolute value of n.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// conditionClause conditions a single clause on literal lit: if the clause
// already contains lit, it is satisfied and dropped entirely (ok == false).
// Otherwise any occurrence of -lit is removed, since it can no longer
// contribute to the clause's truth.
func conditionClause(c Clause, lit Literal) (_ Clause, ok bool) {
	out := make(Clause, 0, len(c))
	for _, l := range c {
		switch l {
		case lit:
			return nil, false // clause satisfied, drop it
		case -lit:
			// falsified literal, drop it from the clause
		default:
			out = append(out, l)
		}
	}
	return out, true
}

// condition returns a new formula equivalent to cnf conditioned on lit being
// true: clauses containing lit are removed, and -lit is removed from the
// remaining clauses. It never mutates cnf, avoiding the fragile
// erase-while-iterating pattern of an in-place conditioner.
func condition(cnf []Clause, lit Literal) []Clause {
	out := make([]Clause, 0, len(cnf))
	for _, c := range cnf {
		if nc, ok := conditionClause(c, lit); ok {
			out = append(out, nc)
		}
	}
	return out
}

// unitPropagate repeatedly finds a unit clause, assigns its single literal,
// and conditions the formula on it, until no unit clause remains. It returns
// the conditioned formula and the literals assigned along the way.
func unitPropagate(cnf []Clause) ([]Clause, []Literal) {
	var assigned []Literal
	for {
		unit := Literal(0)
		for _, c := range cnf {
			if len(c) == 1 {
				unit = c[0]
				break
			}
		}
		if unit == 0 {
			return cnf, assigned
		}
		cnf = condition(cnf, unit)
		assigned = append(assigned, unit)
	}
}

// eliminatePureLiterals assigns every variable that occurs with only one
// polarity across the formula, then conditions it away. numVars is the
// total number of variables in the original problem (1..numVars); only
// variables still appearing in cnf are counted.
func eliminatePureLiterals(cnf []Clause, numVars int) ([]Clause, []Literal) {
	posCount := make([]int, numVars+1)
	negCount := make([]int, numVars+1)
	for _, c := range cnf {
		for _, l := range c {
			if l > 0 {
				posCount[l]++
			} else {
				negCount[-l]++
			}
		}
	}

	var assigned []Literal
	for v := 1; v <= numVars; v++ {
		switch {
		case posCount[v] > 0 && negCount[v] == 0:
			cnf = condition(cnf, v)
			assigned = append(assigned, v)
		case negCount[v] > 0 && posCount[v] == 0:
			cnf = condition(cnf, -v)
			assigned = append(assigned, -v)
		}
	}
	return cnf, assigned
}

// maxOccurrenceVar returns the literal occurring most often in cnf.
// Occurrences are counted per polarity, not summed per variable, and the
// literal with the highest single count wins; ties go to the lowest
// variable, and to the positive polarity within a variable.
func maxOccurrenceVar(cnf []Clause, numVars int) Literal {
	posCount := make([]int, numVars+1)
	negCount := make([]int, numVars+1)
	for _, c := range cnf {
		for _, l := range c {
			if l > 0 {
				posCount[l]++
			} else {
				negCount[-l]++
			}
		}
	}

	bestVar, bestCount := 1, -1
	bestPositive := true
	for v := 1; v <= numVars; v++ {
		if posCount[v] > bestCount {
			bestCount, bestVar, bestPositive = posCount[v], v, true
		}
		if negCount[v] > bestCount {
			bestCount, bestVar, bestPositive = negCount[v], v, false
		}
	}
	if bestPositive {
		return bestVar
	}
	return -bestVar
}

// search saturates unit propagation and pure-literal elimination, then
// branches on the most frequent remaining variable, trying its majority
// polarity first.
func search(cnf []Clause, numVars int) (sat bool, model []Literal) {
	cnf, unitAssigned := unitPropagate(cnf)
	if len(cnf) == 0 {
		return true, unitAssigned
	}
	for _, c := range cnf {
		if len(c) == 0 {
			return false, nil
		}
	}

	cnf, pureAssigned := eliminatePureLiterals(cnf, numVars)
	if len(cnf) == 0 {
		return true, append(unitAssigned, pureAssigned...)
	}
	for _, c := range cnf {
		if len(c) == 0 {
			return false, nil
		}
	}

	branch := maxOccurrenceVar(cnf, numVars)
	if sat, model := search(condition(cnf, branch), numVars); sat {
		return true, append(append([]Literal{branch}, model...), append(unitAssigned, pureAssigned...)...)
	}
	if sat, model := search(condition(cnf, -branch), numVars); sat {
		return true, append(append([]Literal{-branch}, model...), append(unitAssigned, pureAssigned...)...)
	}
	return false, nil
}

// Solve decides the satisfiability of the CNF formula given by clauses over
// variables 1..numVars, returning the first satisfying model found (as a
// dense, ascending-by-variable slice of signed literals) or ok == false if
// the formula is unsatisfiable. Variables that never appear in any clause
// are free and are assigned true.
func Solve(numVars int, clauses []Clause) (model []Literal, ok bool) {
	sat, partial := search(append([]Clause(nil), clauses...), numVars)
	if !sat {
		return nil, false
	}

	value := make([]bool, numVars+1)
	set := make([]bool, numVars+1)
	for _, l := range partial {
		v := abs(l)
		value[v] = l > 0
		set[v] = true
	}

	model = make([]Literal, numVars)
	for v := 1; v <= numVars; v++ {
		if !set[v] {
			value[v] = true // free variable: any assignment satisfies the formula
		}
		if value[v] {
			model[v-1] = v
		} else {
			model[v-1] = -v
		}
	}
	return model, true
}
