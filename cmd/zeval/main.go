// Command zeval is a small debug harness for the evaluator: it seeds an
// in-memory store with a handful of demo objects and runs a function call
// or test case against it. It is not the production ingestion entry point
// (that owns the dump reader and JSON decoder); it exists to exercise
// internal/eval against fixtures built directly in Go.
package main

import (
	"fmt"
	"os"

	"github.com/wikirun/zcore/cmd/zeval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
