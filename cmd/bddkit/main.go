// Command bddkit plays the meaning-of-life guessing game from the command line and
// keeps every guess in SQLite.
//
//	bddkit ask 42
//	bddkit guesses list [--json]
//	bddkit guesses show 3
//	bddkit guesses delete 3
//
// Settings come from --config (YAML), then BDDKIT_* variables, then --db.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bddkit:", err)
		os.Exit(1)
	}
}
