package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/prateekkumarweb/SAT-MaxSAT-Solvers/maxsat"
	"github.com/prateekkumarweb/SAT-MaxSAT-Solvers/parsers"
)

var maxsatGzip bool

var maxsatCmd = &cobra.Command{
	Use:   "maxsat [file]",
	Short: "Solve a partial MaxSAT instance (WCNF-flavored) with the embedded CDCL engine",
	Long:  "Solve a partial MaxSAT instance (WCNF-flavored) with the embedded CDCL engine, reading from the given file or, if omitted, from standard input.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMaxSAT,
}

func init() {
	maxsatCmd.Flags().BoolVar(&maxsatGzip, "gzip", false, "decompress the input file as gzip")
}

func runMaxSAT(cmd *cobra.Command, args []string) error {
	inst, err := parsers.LoadMaxSAT(fileArg(args), maxsatGzip)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"variables": inst.NumVars,
		"hard":      len(inst.Hard),
		"soft":      len(inst.Soft),
	}).Debug("instance loaded")

	result, err := maxsat.Solve(inst)
	if err != nil {
		return err
	}

	if !result.Satisfiable {
		fmt.Fprint(cmd.OutOrStdout(), "UNSAT")
		return nil
	}

	logrus.WithField("cost", result.Cost).Debug("search finished")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "SAT")
	for i, l := range result.Model {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		if l > 0 {
			fmt.Fprintf(out, "+%d", l)
		} else {
			fmt.Fprintf(out, "%d", l)
		}
	}
	return nil
}
