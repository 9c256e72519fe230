package main

import "math/rand"

// seededFromFlag returns a deterministic random source for a user-supplied
// --seed flag, letting a run be reproduced exactly.
func seededFromFlag(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// fileArg returns the subcommand's sole positional argument, or "" when
// none was given - the parsers package reads standard input in that case.
func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
