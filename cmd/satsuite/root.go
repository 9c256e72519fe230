package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "satsuite",
	Short: "A suite of DIMACS CNF SAT solvers",
	Long: `satsuite bundles three solvers over DIMACS CNF input:

  cdcl    conflict-driven clause learning, the suite's primary engine
  dpll    a simpler recursive backtracking solver
  maxsat  a partial MaxSAT driver built on top of an embedded CDCL engine

Each subcommand reads a single instance file (or standard input) and writes
SAT/UNSAT plus the model to standard output.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(cmd.ErrOrStderr())
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"emit decision/conflict/propagation diagnostics to stderr")
	rootCmd.AddCommand(cdclCmd)
	rootCmd.AddCommand(dpllCmd)
	rootCmd.AddCommand(maxsatCmd)
}
