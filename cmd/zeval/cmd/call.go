package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wikirun/zcore/internal/eval"
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/trace"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
)

func newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <function-id> [key=bool ...]",
		Short: "Run a function call against the demo store",
		Long: "Builds a Z7 function call targeting <function-id> with the given\n" +
			"boolean argument bindings (key=true or key=false) and evaluates it\n" +
			"against the demo store (see demoFunctionAnd, Z902, Z913, Z944).",
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			functionID, err := zid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("function id %q: %w", args[0], err)
			}

			callMap := map[zid.ID]term.Term{
				zconfig.Z1K1: term.Str("Z7"),
				zconfig.Z7K1: term.Str(functionID.String()),
			}
			for _, kv := range args[1:] {
				key, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("expected key=bool, got %q", kv)
				}
				keyID, err := zid.Parse(key)
				if err != nil {
					return fmt.Errorf("argument key %q: %w", key, err)
				}
				b, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("argument value %q: %w", value, err)
				}
				callMap[keyID] = boolTerm(b)
			}

			ev := eval.New(newDemoStore())
			result, err := ev.RunFunctionCall(term.Map(callMap), trace.Persistent(functionID), eval.Options{})
			if err != nil {
				return fmt.Errorf("%s", zerr.Display(err))
			}

			fmt.Fprintln(c.OutOrStdout(), term.DebugString(result))
			return nil
		},
	}
}
