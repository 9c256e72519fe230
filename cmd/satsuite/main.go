// Command satsuite exposes the suite's three solvers - cdcl, dpll, and
// maxsat - behind a single cobra-based CLI.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("satsuite failed")
		os.Exit(1)
	}
}
