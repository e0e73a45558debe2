// Package eval implements the evaluator dispatch chain of spec §4.5:
// RunFunctionCall -> SelectImplementation -> RunImplementation ->
// (RunComposition | RunBuiltin) -> walkAndCall, re-entering
// RunFunctionCall on every Z7-tagged subterm it discovers. Grounded
// directly on the original implementation's Runner in runner.rs.
package eval

import "github.com/wikirun/zcore/internal/zid"

// Options carries the evaluator's one piece of caller-supplied state: a
// per-function override of which implementation to run, used by the
// test-case harness to pin the implementation under test (spec §8).
type Options struct {
	// ForceImpl maps a function id to the implementation id that must
	// be used in its place, bypassing SelectImplementation's normal
	// preference order.
	ForceImpl map[zid.ID]zid.ID
}
