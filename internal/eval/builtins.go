package eval

import (
	"fmt"

	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/trace"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
)

// RunBuiltin dispatches a Z14K4 builtin payload to its primitive
// implementation (spec §4.6). Z966/Z989 are rerouted to persistent
// composition implementations rather than implemented natively, keeping
// the primitive set to exactly the three builtins the store cannot express
// any other way: Z902 (if), Z913 (is-empty typed list), Z944 (boolean
// equality).
func (e *Evaluator) RunBuiltin(
	builtin term.Term,
	callTerm term.Term,
	callProv trace.Provenance,
	opts Options,
) (term.Term, error) {
	implIDTerm, err := builtin.MapGet(zconfig.Z6K1)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "getting the implementation id to run")
	}
	implID, err := implIDTerm.AsString()
	if err != nil {
		return term.Term{}, zerr.Trace(zerr.Wrap(err), "getting the implementation id to run")
	}

	if rerouteID, ok := zconfig.BuiltinReroute[implID]; ok {
		rerouteObj, err := e.GetPersistentObject(rerouteID)
		if err != nil {
			return term.Term{}, zerr.Trace(err, "getting the implementation to run")
		}
		rerouteProv := trace.Persistent(rerouteID)
		return e.RunImplementation(rerouteObj.Value, rerouteProv, callTerm, callProv, opts)
	}

	otherProv := callProv.ToOther(nil)

	switch implID {
	case zconfig.BuiltinIf:
		return e.runBuiltinIf(callTerm, otherProv, opts)
	case zconfig.BuiltinIsEmptyTypedList:
		return e.runBuiltinIsEmptyTypedList(callTerm, otherProv, opts)
	case zconfig.BuiltinBoolEqual:
		return e.runBuiltinBoolEqual(callTerm, otherProv, opts)
	default:
		return term.Term{}, zerr.Unimplemented(fmt.Sprintf("built-in %s", implID))
	}
}

func (e *Evaluator) runBuiltinIf(callTerm term.Term, prov trace.Provenance, opts Options) (term.Term, error) {
	condTerm, err := callTerm.MapGet(zconfig.Z802K1)
	if err != nil {
		return term.Term{}, zerr.Wrap(err)
	}
	cond, err := e.walkAndCall(condTerm, prov, opts)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "parsing condition")
	}
	condBool, err := parseBoolean(cond)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "parsing condition")
	}

	branchKey := zconfig.Z802K3
	if condBool {
		branchKey = zconfig.Z802K2
	}
	branchTerm, err := callTerm.MapGet(branchKey)
	if err != nil {
		return term.Term{}, zerr.Wrap(err)
	}

	result, err := e.walkAndCall(branchTerm, prov, opts)
	if err != nil {
		return term.Term{}, zerr.Trace(err, fmt.Sprintf("evaluating result for %v", condBool))
	}
	return result, nil
}

// runBuiltinIsEmptyTypedList reports a typed list as empty when its
// underlying array has length <= 1: the first element always carries the
// list's element type, so no payload elements remain at length 1 (spec
// §3's typed-list convention).
func (e *Evaluator) runBuiltinIsEmptyTypedList(callTerm term.Term, prov trace.Provenance, opts Options) (term.Term, error) {
	listTerm, err := callTerm.MapGet(zconfig.Z813K1)
	if err != nil {
		return term.Term{}, zerr.Wrap(err)
	}
	list, err := e.walkAndCall(listTerm, prov, opts)
	if err != nil {
		return term.Term{}, err
	}
	arr, err := list.AsArray()
	if err != nil {
		return term.Term{}, zerr.Wrap(err)
	}
	return e.GetBoolean(len(arr) <= 1)
}

func (e *Evaluator) runBuiltinBoolEqual(callTerm term.Term, prov trace.Provenance, opts Options) (term.Term, error) {
	b1Term, err := callTerm.MapGet(zconfig.Z844K1)
	if err != nil {
		return term.Term{}, zerr.Wrap(err)
	}
	b1v, err := e.walkAndCall(b1Term, prov, opts)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "parsing first boolean")
	}
	b1, err := parseBoolean(b1v)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "parsing first boolean")
	}

	b2Term, err := callTerm.MapGet(zconfig.Z844K2)
	if err != nil {
		return term.Term{}, zerr.Wrap(err)
	}
	b2v, err := e.walkAndCall(b2Term, prov, opts)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "parsing second boolean")
	}
	b2, err := parseBoolean(b2v)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "parsing second boolean")
	}

	return e.GetBoolean(b1 == b2)
}
