package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikirun/zcore/internal/eval"
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/znode"
)

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the packaged demo test case (Z20001) against demoFunctionAnd",
		RunE: func(c *cobra.Command, args []string) error {
			mem := newDemoStore()

			testCaseValue, ok := mem.Get(demoTestCase)
			if !ok {
				return fmt.Errorf("demo test case %s not found in store", demoTestCase)
			}
			testCase, err := znode.ParsePersistentObject(testCaseValue)
			if err != nil {
				return fmt.Errorf("%s", zerr.Display(err))
			}

			implValue, ok := mem.Get(demoImplAnd)
			if !ok {
				return fmt.Errorf("demo implementation %s not found in store", demoImplAnd)
			}
			implementation, err := znode.ParsePersistentObject(implValue)
			if err != nil {
				return fmt.Errorf("%s", zerr.Display(err))
			}

			ev := eval.New(mem)
			actual, err := ev.RunTestCase(testCase, implementation)
			out := c.OutOrStdout()
			if err != nil {
				fmt.Fprintf(out, "FAIL: %s\n", zerr.Display(err))
				fmt.Fprintf(out, "actual: %s\n", term.DebugString(actual))
				return nil
			}

			fmt.Fprintf(out, "PASS: %s\n", term.DebugString(actual))
			return nil
		},
	}
}
