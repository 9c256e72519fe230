package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/prateekkumarweb/SAT-MaxSAT-Solvers/parsers"
	"github.com/prateekkumarweb/SAT-MaxSAT-Solvers/sat"
)

var (
	cdclGzip         bool
	cdclSeed         int64
	cdclMaxConflicts int64
)

var cdclCmd = &cobra.Command{
	Use:   "cdcl [file]",
	Short: "Solve a DIMACS CNF instance with the CDCL solver",
	Long:  "Solve a DIMACS CNF instance with the CDCL solver, reading from the given file or, if omitted, from standard input.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCDCL,
}

func init() {
	cdclCmd.Flags().BoolVar(&cdclGzip, "gzip", false, "decompress the input file as gzip")
	cdclCmd.Flags().Int64Var(&cdclSeed, "seed", 0,
		"seed the branching heuristic's random source (0 uses OS entropy)")
	cdclCmd.Flags().Int64Var(&cdclMaxConflicts, "max-conflicts", 0,
		"give up and report unknown after this many conflicts (0 = unbounded)")
}

func runCDCL(cmd *cobra.Command, args []string) error {
	opts := sat.DefaultOptions
	opts.MaxConflicts = cdclMaxConflicts
	if cdclSeed != 0 {
		opts.Rand = seededFromFlag(cdclSeed)
	}

	solver, err := parsers.LoadCDCL(fileArg(args), cdclGzip, opts)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"variables": solver.NumVariables(),
		"clauses":   solver.NumClauses(),
	}).Debug("instance loaded")

	status := solver.Solve()

	logrus.WithFields(logrus.Fields{
		"status":     status,
		"decisions":  solver.TotalDecisions,
		"conflicts":  solver.TotalConflicts,
		"propagated": solver.TotalPropagated,
	}).Debug("search finished")

	if status == sat.StatusUnknown {
		fmt.Fprint(cmd.OutOrStdout(), "UNKNOWN")
		return nil
	}
	return printVerdict(cmd, status == sat.StatusSAT, solver.Model)
}

func printVerdict(cmd *cobra.Command, satisfiable bool, model []bool) error {
	out := cmd.OutOrStdout()
	if !satisfiable {
		fmt.Fprint(out, "UNSAT")
		return nil
	}
	fmt.Fprintln(out, "SAT")
	for i, v := range model {
		sign := "-"
		if v {
			sign = "+"
		}
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprintf(out, "%s%d", sign, i+1)
	}
	return nil
}
