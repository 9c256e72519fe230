package sat

import "strings"

// Clause is an ordered sequence of literals. Input clauses are stored exactly
// as given: the database does not reject empty clauses, remove duplicate
// literals, or check for a variable appearing with both polarities. Learnt
// clauses come from resolution, which collapses duplicate literals.
type Clause struct {
	literals []Literal
	learnt   bool
}

func (c *Clause) Literals() []Literal { return c.literals }
func (c *Clause) Len() int            { return len(c.literals) }
func (c *Clause) Learnt() bool        { return c.learnt }

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, l := range c.literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ClauseDB is an append-only ordered sequence of clauses. Original clauses
// occupy the low indices; learnt clauses are appended as they are derived.
// Indices are stable for the lifetime of the database: nothing is ever
// removed, so an antecedent clause index recorded at propagation time stays
// valid for the remainder of the solve.
type ClauseDB struct {
	clauses []*Clause
}

// Append adds a new clause to the database and returns its index. The
// literals slice is copied; the caller's backing array may be reused.
func (db *ClauseDB) Append(literals []Literal, learnt bool) int {
	c := &Clause{
		literals: append([]Literal(nil), literals...),
		learnt:   learnt,
	}
	db.clauses = append(db.clauses, c)
	return len(db.clauses) - 1
}

// Get returns the clause at the given index.
func (db *ClauseDB) Get(index int) *Clause {
	return db.clauses[index]
}

// Len returns the number of clauses currently in the database.
func (db *ClauseDB) Len() int {
	return len(db.clauses)
}

// NumLearnt returns how many of the database's clauses were derived by
// conflict analysis rather than supplied in the original problem. This is
// diagnostic only: propagation and analysis never distinguish learnt
// clauses from original ones.
func (db *ClauseDB) NumLearnt() int {
	n := 0
	for _, c := range db.clauses {
		if c.learnt {
			n++
		}
	}
	return n
}
