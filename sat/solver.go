package sat

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Status is the verdict returned by a solve attempt.
type Status int

const (
	StatusUnknown Status = iota
	StatusSAT
	StatusUNSAT
)

func (st Status) String() string {
	switch st {
	case StatusSAT:
		return "SAT"
	case StatusUNSAT:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Options configures a Solver. The zero value is usable and equal to
// DefaultOptions: a nil Rand is replaced by an entropy-seeded generator and
// a zero MaxConflicts means unbounded.
type Options struct {
	// Rand, if non-nil, is the source used by the branching heuristic's
	// randomized decisions. Supplying an explicit, seeded generator makes a
	// solve deterministic for tests. If nil, a generator seeded from the OS
	// entropy source is created.
	Rand *rand.Rand

	// MaxConflicts bounds the number of conflicts the driver will tolerate
	// before giving up and returning StatusUnknown. Zero or negative means
	// unbounded. This is an implementation-level escape hatch, not part of
	// the core algorithm.
	MaxConflicts int64
}

// DefaultOptions is used by NewDefaultSolver.
var DefaultOptions = Options{
	MaxConflicts: 0,
}

func seededRand() *rand.Rand {
	var seedBytes [8]byte
	if _, err := crand.Read(seedBytes[:]); err != nil {
		// crypto/rand failing is effectively unheard of on real hardware;
		// fall back to a fixed seed rather than leaving the generator nil.
		return rand.New(rand.NewSource(1))
	}
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return rand.New(rand.NewSource(seed))
}

// Solver is a CDCL SAT solver. It operates on variables numbered 0..N-1;
// callers typically use PositiveLiteral/NegativeLiteral to build clauses and
// a front-end (see the parsers package) to translate 1-based DIMACS literals.
type Solver struct {
	assigns *AssignmentStore
	clauses ClauseDB
	branch  *heuristic
	seenLit *ResetSet // literal-indexed scratch set reused by analyze's resolution step

	maxConflicts int64

	// Model holds the satisfying assignment after a StatusSAT solve. It is
	// nil otherwise.
	Model []bool

	// Statistics, purely diagnostic; never consulted by the algorithm.
	TotalDecisions  int64
	TotalConflicts  int64
	TotalPropagated int64
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver(numVars int) *Solver {
	return NewSolver(numVars, DefaultOptions)
}

// NewSolver returns a Solver over numVars variables (numbered 0..numVars-1).
func NewSolver(numVars int, opts Options) *Solver {
	rng := opts.Rand
	if rng == nil {
		rng = seededRand()
	}
	return &Solver{
		assigns:      NewAssignmentStore(numVars),
		branch:       newHeuristic(rng),
		seenLit:      NewResetSet(2 * numVars),
		maxConflicts: opts.MaxConflicts,
	}
}

// NumVariables returns the number of variables the solver was created with.
func (s *Solver) NumVariables() int {
	return s.assigns.NumVars()
}

// NumClauses returns the number of clauses (original and learnt) currently
// in the database.
func (s *Solver) NumClauses() int {
	return s.clauses.Len()
}

// NumLearnt returns the number of clauses derived by conflict analysis.
func (s *Solver) NumLearnt() int {
	return s.clauses.NumLearnt()
}

// AddClause appends a clause to the database and bumps its literals'
// frequency counters, as required by the Branching Heuristic contract: the
// counters must reflect every signed occurrence added to the database,
// input or learnt.
func (s *Solver) AddClause(literals []Literal) {
	s.clauses.Append(literals, false)
	for _, l := range literals {
		s.assigns.BumpFrequency(l)
	}
}

// Solve runs the search loop: propagate at
// level 0; then repeatedly decide, assign, and propagate, resolving
// conflicts by analysis and backjump, until every variable is assigned
// (StatusSAT), a conflict surfaces at level 0 (StatusUNSAT), or the
// configured conflict budget is exhausted (StatusUnknown).
func (s *Solver) Solve() Status {
	// Start from the level-0 assignment so Solve can be called again after
	// AddClause; clear any model left by an earlier call.
	s.Model = nil
	s.assigns.UnassignAbove(0)

	if s.propagate(0) != noConflict {
		return StatusUNSAT
	}

	dl := 0
	for s.assigns.NumAssigned() < s.assigns.NumVars() {
		lit := s.branch.pickBranch(s.assigns)
		dl++
		s.TotalDecisions++
		s.assigns.Assign(lit, dl, noAntecedent)

		for {
			conflict := s.propagate(dl)
			if conflict == noConflict {
				break
			}
			s.TotalConflicts++
			if dl == 0 {
				return StatusUNSAT
			}
			if s.maxConflicts > 0 && s.TotalConflicts >= s.maxConflicts {
				return StatusUnknown
			}
			dl = s.analyze(conflict, dl)
		}
	}

	s.saveModel()
	return StatusSAT
}

func (s *Solver) saveModel() {
	model := make([]bool, s.assigns.NumVars())
	for v := range model {
		model[v] = s.assigns.Value(v) == True
	}
	s.Model = model
}
