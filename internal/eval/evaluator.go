package eval

import (
	"fmt"

	"github.com/wikirun/zcore/internal/compose"
	"github.com/wikirun/zcore/internal/store"
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/trace"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
	"github.com/wikirun/zcore/internal/znode"
)

// Evaluator runs function calls against a fixed object store. It holds no
// mutable state of its own, so a single Evaluator may be shared across
// concurrent evaluations (spec §5).
type Evaluator struct {
	store store.Store
}

// New builds an Evaluator over st.
func New(st store.Store) *Evaluator {
	return &Evaluator{store: st}
}

// GetPersistentObject loads and parses the Z2 wrapper stored under id.
func (e *Evaluator) GetPersistentObject(id zid.ID) (znode.PersistentObject, error) {
	root, ok := e.store.Get(id)
	if !ok {
		return znode.PersistentObject{}, zerr.MissingKey(id)
	}
	obj, err := znode.ParsePersistentObject(root)
	if err != nil {
		return znode.PersistentObject{}, zerr.Trace(err, fmt.Sprintf("for object %s", id))
	}
	return obj, nil
}

// GetBoolean returns the canonical Z41/Z42 value term for b.
func (e *Evaluator) GetBoolean(b bool) (term.Term, error) {
	id := zconfig.Z42
	if b {
		id = zconfig.Z41
	}
	obj, err := e.GetPersistentObject(id)
	if err != nil {
		return term.Term{}, err
	}
	return obj.Value, nil
}

// parseBoolean reads a Z40 boolean term's Z40K1 tag.
func parseBoolean(t term.Term) (bool, error) {
	tagTerm, err := t.MapGet(zconfig.Z40K1)
	if err != nil {
		return false, zerr.Wrap(err)
	}
	tag, err := tagTerm.AsString()
	if err != nil {
		return false, zerr.InsideMap(zerr.Wrap(err), zconfig.Z40K1)
	}
	switch tag {
	case zconfig.TrueTag:
		return true, nil
	case zconfig.FalseTag:
		return false, nil
	default:
		return false, zerr.Unimplemented(fmt.Sprintf("boolean tag %q", tag))
	}
}

// SelectImplementation picks the implementation to run for functionObj,
// honoring opts.ForceImpl, and otherwise walking the function's
// implementation list for the first entry that carries a composition or
// builtin (spec §4.5: code implementations are not yet supported, matching
// the original's own TODO).
func (e *Evaluator) SelectImplementation(functionObj znode.PersistentObject, opts Options) (znode.PersistentObject, error) {
	if implID, ok := opts.ForceImpl[functionObj.ID]; ok {
		implObj, err := e.GetPersistentObject(implID)
		if err != nil {
			return znode.PersistentObject{}, zerr.Trace(err, "loading specifically specified implementation")
		}
		return implObj, nil
	}

	fn, err := znode.ParseFunction(functionObj.Value)
	if err != nil {
		return znode.PersistentObject{}, zerr.Trace(err, "getting implementations")
	}

	implList, err := znode.ParseTypedList(fn.Implementations, znode.ParseUntyped)
	if err != nil {
		return znode.PersistentObject{}, zerr.Trace(err, "getting implementations")
	}

	for i := 0; i < implList.Len(); i++ {
		entry, err := implList.Get(i)
		if err != nil {
			return znode.PersistentObject{}, zerr.Trace(err, "parsing implementation list")
		}
		refText, err := entry.Term.AsString()
		if err != nil {
			return znode.PersistentObject{}, zerr.Trace(zerr.Wrap(err), "parsing implementation list")
		}
		implID, err := zid.Parse(refText)
		if err != nil {
			return znode.PersistentObject{}, zerr.Trace(zerr.ParseIdentifier(err), "processing an implementation reference")
		}

		implObj, err := e.GetPersistentObject(implID)
		if err != nil {
			return znode.PersistentObject{}, zerr.Trace(err, "trying to get a referenced implementation")
		}
		implView, err := znode.ParseImplementation(implObj.Value)
		if err != nil {
			return znode.PersistentObject{}, zerr.Trace(err, "processing an implementation")
		}

		if implView.HasComposition || implView.HasBuiltin {
			return implObj, nil
		}
	}

	return znode.PersistentObject{}, zerr.Unimplemented(
		fmt.Sprintf("code and builtins (and fail if none found) (for %s)", functionObj.ID))
}

// RunFunctionCall resolves callTerm's target function, selects an
// implementation for it, and runs that implementation (spec §4.5).
func (e *Evaluator) RunFunctionCall(callTerm term.Term, prov trace.Provenance, opts Options) (term.Term, error) {
	fc, err := znode.ParseFunctionCall(callTerm)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "trying to get the function to call")
	}

	functionObj, err := e.GetPersistentObject(fc.Function)
	if err != nil {
		return term.Term{}, zerr.Trace(err, "trying to get the function to call")
	}

	implObj, err := e.SelectImplementation(functionObj, opts)
	if err != nil {
		return term.Term{}, err
	}
	implProv := trace.Persistent(implObj.ID)

	result, err := e.RunImplementation(implObj.Value, implProv, callTerm, prov, opts)
	if err != nil {
		return term.Term{}, zerr.Trace(err, fmt.Sprintf("calling implementation %s", implProv))
	}
	return result, nil
}

// RunImplementation dispatches to RunComposition or RunBuiltin depending on
// which payload impl carries (spec §4.5). Code implementations are not
// supported, matching the original's own TODO.
func (e *Evaluator) RunImplementation(
	implValue term.Term,
	implProv trace.Provenance,
	callTerm term.Term,
	callProv trace.Provenance,
	opts Options,
) (term.Term, error) {
	impl, err := znode.ParseImplementation(implValue)
	if err != nil {
		return term.Term{}, err
	}

	if impl.HasComposition {
		return e.RunComposition(impl.Composition, implProv.ToOther([]zid.ID{zconfig.Z14K2}), callTerm, callProv, opts)
	}
	if impl.HasBuiltin {
		return e.RunBuiltin(impl.Builtin, callTerm, callProv, opts)
	}

	return term.Term{}, zerr.Unimplemented("code implementation")
}

// RunComposition substitutes callTerm's arguments into composition's
// placeholders and evaluates the resulting closed body top-down (spec §4.4,
// §4.5).
func (e *Evaluator) RunComposition(
	composition term.Term,
	compProv trace.Provenance,
	callTerm term.Term,
	callProv trace.Provenance,
	opts Options,
) (term.Term, error) {
	fc, err := znode.ParseFunctionCall(callTerm)
	if err != nil {
		return term.Term{}, err
	}

	substituted, err := compose.Substitute(composition, fc.Args)
	if err != nil {
		return term.Term{}, err
	}

	result, err := e.walkAndCall(substituted, compProv, opts)
	if err != nil {
		return term.Term{}, zerr.Trace(err, fmt.Sprintf("calling the composition from %s", callProv))
	}
	return result, nil
}

// walkAndCall descends t top-down, re-entering RunFunctionCall wherever a
// Z7-tagged map is found and otherwise rebuilding t unchanged (spec §4.5).
func (e *Evaluator) walkAndCall(t term.Term, prov trace.Provenance, opts Options) (term.Term, error) {
	switch t.Kind() {
	case term.KindMap:
		m, err := t.AsMap()
		if err != nil {
			return term.Term{}, zerr.Wrap(err)
		}
		if tagTerm, ok := m[zconfig.Z1K1]; ok {
			if tag, err := tagTerm.AsString(); err == nil && tag == zconfig.TypeTagFunctionCall {
				return e.RunFunctionCall(t, prov, opts)
			}
		}

		entries, err := t.Entries()
		if err != nil {
			return term.Term{}, zerr.Wrap(err)
		}
		newMap := make(map[zid.ID]term.Term, len(entries))
		for _, entry := range entries {
			v, err := e.walkAndCall(entry.Value, prov, opts)
			if err != nil {
				return term.Term{}, zerr.InsideMap(err, entry.Key)
			}
			newMap[entry.Key] = v
		}
		return term.Map(newMap), nil

	case term.KindArray:
		arr, err := t.AsArray()
		if err != nil {
			return term.Term{}, zerr.Wrap(err)
		}
		newArr := make([]term.Term, len(arr))
		for i, item := range arr {
			v, err := e.walkAndCall(item, prov, opts)
			if err != nil {
				return term.Term{}, zerr.InsideArray(err, i)
			}
			newArr[i] = v
		}
		return term.Arr(newArr...), nil

	default: // KindString
		return t, nil
	}
}
