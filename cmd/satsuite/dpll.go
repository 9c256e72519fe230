package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/prateekkumarweb/SAT-MaxSAT-Solvers/dpll"
	"github.com/prateekkumarweb/SAT-MaxSAT-Solvers/parsers"
)

var dpllGzip bool

var dpllCmd = &cobra.Command{
	Use:   "dpll [file]",
	Short: "Solve a DIMACS CNF instance with the DPLL solver",
	Long:  "Solve a DIMACS CNF instance with the DPLL solver, reading from the given file or, if omitted, from standard input.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDPLL,
}

func init() {
	dpllCmd.Flags().BoolVar(&dpllGzip, "gzip", false, "decompress the input file as gzip")
}

func runDPLL(cmd *cobra.Command, args []string) error {
	numVars, clauses, err := parsers.LoadDPLL(fileArg(args), dpllGzip)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"variables": numVars,
		"clauses":   len(clauses),
	}).Debug("instance loaded")

	model, ok := dpll.Solve(numVars, clauses)

	boolModel := make([]bool, numVars)
	for i, l := range model {
		boolModel[i] = l > 0
	}
	return printVerdict(cmd, ok, boolModel)
}
