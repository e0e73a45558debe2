package eval_test

import (
	"github.com/wikirun/zcore/internal/store"
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zid"
)

func z(text string) zid.ID { return zid.MustParse(text) }

func persistentObject(id zid.ID, value term.Term) term.Term {
	return term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z2"),
		zconfig.Z2K1: term.Str(id.String()),
		zconfig.Z2K2: value,
	})
}

func boolTerm(b bool) term.Term {
	tag := zconfig.FalseTag
	if b {
		tag = zconfig.TrueTag
	}
	return term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z40"),
		zconfig.Z40K1: term.Str(tag),
	})
}

// newStoreWithBooleans seeds a Memory store with the canonical Z41/Z42
// persistent objects every boolean-returning builtin relies on.
func newStoreWithBooleans() *store.Memory {
	mem := store.NewMemory()
	_ = mem.Add(zconfig.Z41, persistentObject(zconfig.Z41, boolTerm(true)))
	_ = mem.Add(zconfig.Z42, persistentObject(zconfig.Z42, boolTerm(false)))
	return mem
}

func function(implID zid.ID) term.Term {
	return term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z8"),
		zconfig.Z8K1: term.Arr(term.Str("Z17")),
		zconfig.Z8K2: term.Str("Z1"),
		zconfig.Z8K3: term.Arr(term.Str("Z20")),
		zconfig.Z8K4: term.Arr(term.Str("Z881"), term.Str(implID.String())),
		zconfig.Z8K5: term.Str(""),
	})
}

// registerBuiltinFunction wires up a persistent function object at
// functionID backed by a single builtin implementation at implID.
func registerBuiltinFunction(mem *store.Memory, functionID, implID zid.ID, builtinName string) {
	_ = mem.Add(functionID, persistentObject(functionID, function(implID)))

	builtin := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z61"),
		zconfig.Z6K1: term.Str(builtinName),
	})
	implementation := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z14"),
		zconfig.Z14K1: term.Str(functionID.String()),
		zconfig.Z14K4: builtin,
	})
	_ = mem.Add(implID, persistentObject(implID, implementation))
}

// registerCompositionFunction wires up a persistent function object at
// functionID backed by a single composition implementation at implID.
func registerCompositionFunction(mem *store.Memory, functionID, implID zid.ID, composition term.Term) {
	_ = mem.Add(functionID, persistentObject(functionID, function(implID)))

	implementation := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z14"),
		zconfig.Z14K1: term.Str(functionID.String()),
		zconfig.Z14K2: composition,
	})
	_ = mem.Add(implID, persistentObject(implID, implementation))
}

func placeholder(argKey string) term.Term {
	return term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z18"),
		zconfig.Z18K1: term.Str(argKey),
	})
}
