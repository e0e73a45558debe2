package cmd

import (
	"github.com/spf13/cobra"
)

// Execute builds the root command and runs it against os.Args.
func Execute() error {
	root := &cobra.Command{
		Use:   "zeval",
		Short: "Run function calls and test cases against a demo object store",
		Long: "zeval is a debug harness for the evaluator core: it seeds an in-memory " +
			"store with a handful of demo objects (the minimal builtins and a couple " +
			"of sample functions) and runs a function call or test case against it.",
	}

	root.AddCommand(newCallCmd())
	root.AddCommand(newTestCmd())

	return root.Execute()
}
