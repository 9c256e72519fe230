// Package maxsat implements a partial MaxSAT driver: a thin linear-search
// wrapper that repeatedly asks an embedded CDCL engine "can all hard
// clauses, plus all but k soft clauses, be satisfied?" for increasing k,
// stopping at the first k that succeeds.
//
// Unlike package sat's solver, this package implements no search of its
// own - every hard decision about propagation, branching, and conflict
// analysis is delegated to github.com/go-air/gini. The only algorithm that
// belongs to this package is the sequential cardinality encoding that turns
// "at most k relaxation variables are true" into CNF.
package maxsat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"
)

// Instance is a partial MaxSAT problem: Hard clauses must all be satisfied;
// as many of Soft as possible should be. Both use the same DIMACS-style,
// 1-based signed literal convention as package parsers. Variables are
// numbered 1..NumVars; the encoding below introduces fresh variables above
// NumVars as needed.
type Instance struct {
	NumVars int
	Hard    [][]int
	Soft    [][]int
}

// Result is the outcome of a Solve call.
type Result struct {
	// Satisfiable is false only when the hard clauses alone are
	// unsatisfiable; a partial MaxSAT instance with satisfiable hard
	// clauses always has a solution (relax every soft clause).
	Satisfiable bool

	// Cost is the number of soft clauses left unsatisfied in Model.
	Cost int

	// Model is a dense, ascending-by-variable slice of signed literals over
	// 1..NumVars, valid when Satisfiable is true.
	Model []int
}

// Solve finds a model minimizing the number of violated soft clauses, by
// linear search over the cost bound k = 0, 1, 2, ...: each iteration adds a
// fresh relaxation variable b_i to every soft clause s_i (yielding s_i ∨
// b_i), asserts "at most k of the b_i are true" via a sequential counter,
// and asks a freshly constructed engine instance to solve the result. The
// search has no warm start between iterations and no incremental tightening
// - each k is a from-scratch solve, matching the "thin driver" framing of
// the design this package implements.
func Solve(inst Instance) (Result, error) {
	log := logrus.WithField("component", "maxsat")

	if len(inst.Soft) == 0 {
		sat, model := solveHard(inst.NumVars, inst.Hard, nil)
		return Result{Satisfiable: sat, Model: model}, nil
	}

	for k := 0; k <= len(inst.Soft); k++ {
		relaxed, cardinality, numAux := buildIteration(inst, k)
		log.WithFields(logrus.Fields{
			"k":           k,
			"softClauses": len(inst.Soft),
			"auxVars":     numAux,
		}).Debug("attempting cost bound")

		g := gini.New()
		addClauses(g, relaxed)
		addClauses(g, cardinality)

		switch g.Solve() {
		case 1: // satisfiable
			model := extractModel(g, inst.NumVars)
			log.WithField("cost", k).Info("found model")
			return Result{Satisfiable: true, Cost: k, Model: model}, nil
		case -1: // unsatisfiable
			continue
		default:
			return Result{}, fmt.Errorf("maxsat: engine returned an inconclusive result at k=%d", k)
		}
	}

	// len(inst.Soft) relaxation variables can always all be set true, which
	// trivially satisfies every relaxed soft clause - so failure here means
	// the hard clauses alone are unsatisfiable.
	sat, _ := solveHard(inst.NumVars, inst.Hard, nil)
	if sat {
		return Result{}, fmt.Errorf("maxsat: hard clauses satisfiable but no cost bound succeeded")
	}
	return Result{Satisfiable: false}, nil
}

// buildIteration returns the hard clauses together with every soft clause
// s_i rewritten as s_i ∨ b_i (b_i a fresh relaxation variable numbered
// NumVars+i+1), plus the sequential-counter CNF constraining at most k of
// the b_i to be true.
func buildIteration(inst Instance, k int) (relaxed, cardinality [][]int, numAux int) {
	relaxed = make([][]int, 0, len(inst.Hard)+len(inst.Soft))
	relaxed = append(relaxed, inst.Hard...)

	relaxVars := make([]int, len(inst.Soft))
	for i, soft := range inst.Soft {
		b := inst.NumVars + i + 1
		relaxVars[i] = b
		relaxed = append(relaxed, append(append([]int(nil), soft...), b))
	}

	firstAux := inst.NumVars + len(inst.Soft) + 1
	cardinality, numAux = sequentialCounter(relaxVars, k, firstAux)
	return relaxed, cardinality, numAux
}

// addClauses teaches g every clause in cs, each literal translated from the
// DIMACS-style signed int convention via z.Dimacs2Lit.
func addClauses(g *gini.Gini, cs [][]int) {
	for _, c := range cs {
		for _, lit := range c {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}
}

// extractModel reads the truth value of variables 1..numVars out of a
// solved engine, discarding any relaxation or cardinality auxiliary
// variables above that range.
func extractModel(g *gini.Gini, numVars int) []int {
	model := make([]int, numVars)
	for v := 1; v <= numVars; v++ {
		lit := z.Dimacs2Lit(v)
		if g.Value(lit) {
			model[v-1] = v
		} else {
			model[v-1] = -v
		}
	}
	return model
}

// solveHard checks the hard clauses alone, with no relaxation variables.
// Used both for instances with no soft clauses and to distinguish a
// genuinely unsatisfiable instance from a search that exhausted every cost
// bound without success (which should not happen).
func solveHard(numVars int, hard [][]int, _ []int) (bool, []int) {
	g := gini.New()
	addClauses(g, hard)
	if g.Solve() != 1 {
		return false, nil
	}
	return true, extractModel(g, numVars)
}
