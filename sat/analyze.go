package sat

// resolve merges clauses a and b and removes both polarities of pivot's
// variable, collapsing duplicate literals. It returns a fresh slice; neither
// input is mutated. The scratch set used to detect duplicates is cleared
// before use, so nested or repeated calls against the same Solver never see
// stale entries from an earlier resolution step.
func (s *Solver) resolve(a, b []Literal, pivot int) []Literal {
	s.seenLit.Clear()
	merged := make([]Literal, 0, len(a)+len(b))
	add := func(lits []Literal) {
		for _, l := range lits {
			if l.Var() == pivot {
				continue
			}
			if s.seenLit.Contains(int(l)) {
				continue
			}
			s.seenLit.Add(int(l))
			merged = append(merged, l)
		}
	}
	add(a)
	add(b)
	return merged
}

// countAtLevel returns how many literals of lits have their variable
// assigned at decision level dl.
func (s *Solver) countAtLevel(lits []Literal, dl int) int {
	n := 0
	for _, l := range lits {
		if s.assigns.Level(l.Var()) == dl {
			n++
		}
	}
	return n
}

// analyze derives a first-UIP learnt clause from the falsified clause confl
// observed at decision level dl by iterated resolution, then backjumps.
//
// It repeatedly resolves the clause under derivation with the antecedent of
// some literal that is both assigned at the current level and was reached by
// propagation (not decision), until exactly one literal of the current level
// remains: that literal is the first UIP. The resulting clause is appended
// to the database, its literals' frequency counters are bumped, and every
// variable assigned above the computed backjump level is unassigned.
//
// analyze returns the new decision level to resume the search at.
func (s *Solver) analyze(confl int, dl int) int {
	clause := append([]Literal(nil), s.clauses.Get(confl).literals...)

	for s.countAtLevel(clause, dl) != 1 {
		pivot := -1
		for _, l := range clause {
			v := l.Var()
			if s.assigns.Level(v) == dl && !s.assigns.IsDecision(v) {
				pivot = v
				break
			}
		}
		// A UIP always exists at or before this point, so pivot is found.
		antecedent := s.assigns.Antecedent(pivot)
		clause = s.resolve(clause, s.clauses.Get(antecedent).literals, pivot)
	}

	s.clauses.Append(clause, true)
	for _, l := range clause {
		s.assigns.BumpFrequency(l)
	}

	bjLevel := 0
	for _, l := range clause {
		if lvl := s.assigns.Level(l.Var()); lvl != dl && lvl > bjLevel {
			bjLevel = lvl
		}
	}

	s.assigns.UnassignAbove(bjLevel)
	return bjLevel
}
