package sat

// noConflict is returned by propagate when the whole database has been
// scanned without finding a falsified clause.
const noConflict = -1

// propagate saturates all forced assignments at decision level dl by
// repeatedly scanning the clause database from the start. It deliberately
// does not use a watched-literal scheme: every clause is re-examined after
// each new unit assignment, since a newly assigned variable may turn any
// clause into a unit or falsified one, not only the clauses that mention it
// via a watch list. This is quadratic in the size of the database, but
// matches the straightforward scan-to-fixpoint propagator the algorithm is
// specified against.
//
// It returns the index of the first clause observed falsified, or
// noConflict if a full pass completes with no falsified clause.
func (s *Solver) propagate(dl int) int {
	for i := 0; i < s.clauses.Len(); i++ {
		c := s.clauses.Get(i)

		satisfied := false
		unassignedCount := 0
		var lastUnassigned Literal

		for _, l := range c.literals {
			switch {
			case s.assigns.IsSatisfied(l):
				satisfied = true
			case s.assigns.IsUnassigned(l):
				unassignedCount++
				lastUnassigned = l
			}
		}
		if satisfied {
			continue
		}

		switch unassignedCount {
		case 0:
			return i // falsified: every literal is assigned and none satisfies C
		case 1:
			s.assigns.Assign(lastUnassigned, dl, i)
			s.TotalPropagated++
			i = -1 // restart the scan: the new assignment may cascade
		}
	}
	return noConflict
}
