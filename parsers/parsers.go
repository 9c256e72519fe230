// Package parsers wires the suite's three solvers to DIMACS-family input
// files. Plain CNF is delegated entirely to github.com/rhartert/dimacs;
// the WCNF-flavored format package maxsat consumes has no such well-known
// Go parser available in the dependency corpus, so it is read line by line
// with a bufio.Scanner.
package parsers

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/prateekkumarweb/SAT-MaxSAT-Solvers/dpll"
	"github.com/prateekkumarweb/SAT-MaxSAT-Solvers/maxsat"
	"github.com/prateekkumarweb/SAT-MaxSAT-Solvers/sat"
)

// reader opens filename, or standard input when filename is empty, and
// wraps it in a gzip reader if requested. The returned name is suitable for
// error messages: filename itself, or "<stdin>" when reading from stdin.
func reader(filename string, gzipped bool) (rc io.ReadCloser, name string, err error) {
	if filename == "" {
		rc, name = io.NopCloser(os.Stdin), "<stdin>"
	} else {
		file, err := os.Open(filename)
		if err != nil {
			return nil, filename, err
		}
		rc, name = file, filename
	}
	if gzipped {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return nil, name, err
		}
		rc = gz
	}
	return rc, name, nil
}

// cnfBuilder collects a parsed CNF instance in DIMACS's own 1-based signed
// literal convention, deferring translation to whichever solver consumes it.
type cnfBuilder struct {
	numVars int
	clauses [][]int
}

func (b *cnfBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("parsers: not a CNF problem: %q", problem)
	}
	b.numVars = nVars
	b.clauses = make([][]int, 0, nClauses)
	return nil
}

func (b *cnfBuilder) Clause(tmpClause []int) error {
	for _, l := range tmpClause {
		if l == 0 || l > b.numVars || -l > b.numVars {
			return fmt.Errorf("parsers: literal %d out of range for %d variables", l, b.numVars)
		}
	}
	b.clauses = append(b.clauses, append([]int(nil), tmpClause...))
	return nil
}

func (b *cnfBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func readCNF(filename string, gzipped bool) (*cnfBuilder, error) {
	r, name, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("parsers: opening %q: %w", name, err)
	}
	defer r.Close()

	b := &cnfBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("parsers: parsing %q: %w", name, err)
	}
	return b, nil
}

// LoadCDCL parses a DIMACS CNF file into a ready-to-solve CDCL sat.Solver.
// An empty filename reads from standard input instead.
func LoadCDCL(filename string, gzipped bool, opts sat.Options) (*sat.Solver, error) {
	b, err := readCNF(filename, gzipped)
	if err != nil {
		return nil, err
	}

	solver := sat.NewSolver(b.numVars, opts)
	lits := make([]sat.Literal, 0, 8)
	for _, c := range b.clauses {
		lits = lits[:0]
		for _, l := range c {
			if l < 0 {
				lits = append(lits, sat.NegativeLiteral(-l-1))
			} else {
				lits = append(lits, sat.PositiveLiteral(l-1))
			}
		}
		solver.AddClause(append([]sat.Literal(nil), lits...))
	}
	return solver, nil
}

// LoadDPLL parses a DIMACS CNF file into the variable count and clause list
// dpll.Solve expects. DPLL works directly against DIMACS's own 1-based
// signed-literal convention, so no literal translation is needed. An empty
// filename reads from standard input instead.
func LoadDPLL(filename string, gzipped bool) (numVars int, clauses []dpll.Clause, err error) {
	b, err := readCNF(filename, gzipped)
	if err != nil {
		return 0, nil, err
	}
	clauses = make([]dpll.Clause, len(b.clauses))
	for i, c := range b.clauses {
		clauses[i] = append(dpll.Clause(nil), c...)
	}
	return b.numVars, clauses, nil
}

// LoadMaxSAT parses a partial-WCNF-flavored file: a header line
//
//	p wcnf <numVars> <numClauses> <top>
//
// followed by clause lines each prefixed with an integer weight. A clause
// whose weight equals top is hard; any other weight marks a soft clause
// (the suite only distinguishes hard from soft, so the magnitude of a soft
// weight besides top is not otherwise used). An empty filename reads from
// standard input instead.
func LoadMaxSAT(filename string, gzipped bool) (maxsat.Instance, error) {
	r, name, err := reader(filename, gzipped)
	if err != nil {
		return maxsat.Instance{}, fmt.Errorf("parsers: opening %q: %w", name, err)
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var inst maxsat.Instance
	top := 0
	headerSeen := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if !headerSeen {
			parts := strings.Fields(line)
			if len(parts) != 5 || parts[0] != "p" || parts[1] != "wcnf" {
				return maxsat.Instance{}, fmt.Errorf("parsers: malformed wcnf header: %q", line)
			}
			numVars, err := strconv.Atoi(parts[2])
			if err != nil {
				return maxsat.Instance{}, fmt.Errorf("parsers: malformed wcnf header: %w", err)
			}
			top, err = strconv.Atoi(parts[4])
			if err != nil {
				return maxsat.Instance{}, fmt.Errorf("parsers: malformed wcnf header: %w", err)
			}
			inst.NumVars = numVars
			headerSeen = true
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			return maxsat.Instance{}, fmt.Errorf("parsers: malformed clause line: %q", line)
		}
		weight, err := strconv.Atoi(parts[0])
		if err != nil {
			return maxsat.Instance{}, fmt.Errorf("parsers: malformed clause weight: %w", err)
		}

		clause := make([]int, 0, len(parts)-2)
		for _, tok := range parts[1:] {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return maxsat.Instance{}, fmt.Errorf("parsers: malformed literal %q: %w", tok, err)
			}
			if lit == 0 {
				break
			}
			clause = append(clause, lit)
		}

		if weight == top {
			inst.Hard = append(inst.Hard, clause)
		} else {
			inst.Soft = append(inst.Soft, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return maxsat.Instance{}, fmt.Errorf("parsers: reading %q: %w", name, err)
	}
	if !headerSeen {
		return maxsat.Instance{}, fmt.Errorf("parsers: missing wcnf header")
	}
	return inst, nil
}

// ReadModels returns the list of models contained in a DIMACS-model-style
// file: one satisfying assignment per line, each a space-separated,
// zero-terminated list of signed literals. Used by tests to compare a
// solver's output against known-good fixtures.
func ReadModels(filename string) ([][]bool, error) {
	r, name, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("parsers: opening %q: %w", name, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("parsers: parsing %q: %w", name, err)
	}
	return b.models, nil
}

// modelBuilder adapts dimacs.ReadBuilder to collect model lines, each
// presented to Clause as a zero-terminated signed-literal slice just like a
// CNF clause would be.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(_ string, _ int, _ int) error {
	return fmt.Errorf("parsers: model files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
