package cmd

import (
	"github.com/wikirun/zcore/internal/store"
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zid"
)

// demoFunctionAnd is a persistent function id not in the well-known table:
// a sample composition demonstrating substitution and nested builtin
// dispatch ("and(a, b) = if a then b else false").
var demoFunctionAnd = zid.MustParse("Z10001")
var demoImplAnd = zid.MustParse("Z10001001")

// demoValidator wraps Z944 (boolean equality) behind call argument keys
// matching its own number, so the test-case harness's generic
// "function number + K1" convention for splicing in the actual result
// works against it (Z944's own call argument keys, Z844K1/K2, differ
// from its own number by the historical -100 offset shared by the three
// minimal builtins, so a test-case validator cannot target Z944 itself).
var demoValidator = zid.MustParse("Z950")
var demoValidatorImpl = zid.MustParse("Z950001")

var demoTestCase = zid.MustParse("Z20001")

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

func placeholder(argKey string) term.Term {
	return term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z18"),
		zconfig.Z18K1: term.Str(argKey),
	})
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

func registerBuiltin(mem *store.Memory, functionID, implID zid.ID, builtinName string) {
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

func registerComposition(mem *store.Memory, functionID, implID zid.ID, composition term.Term) {
	_ = mem.Add(functionID, persistentObject(functionID, function(implID)))

	implementation := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z14"),
		zconfig.Z14K1: term.Str(functionID.String()),
		zconfig.Z14K2: composition,
	})
	_ = mem.Add(implID, persistentObject(implID, implementation))
}

// newDemoStore builds the store every zeval subcommand runs against: the
// three minimal builtins from spec §4.6 plus demoFunctionAnd, a
// composition showing substitution feeding into a nested builtin call.
func newDemoStore() *store.Memory {
	mem := store.NewMemory()

	_ = mem.Add(zconfig.Z41, persistentObject(zconfig.Z41, boolTerm(true)))
	_ = mem.Add(zconfig.Z42, persistentObject(zconfig.Z42, boolTerm(false)))

	registerBuiltin(mem, zid.MustParse(zconfig.BuiltinIf), zid.MustParse("Z902001"), zconfig.BuiltinIf)
	registerBuiltin(mem, zid.MustParse(zconfig.BuiltinIsEmptyTypedList), zid.MustParse("Z913001"), zconfig.BuiltinIsEmptyTypedList)
	registerBuiltin(mem, zid.MustParse(zconfig.BuiltinBoolEqual), zid.MustParse("Z944001"), zconfig.BuiltinBoolEqual)

	and := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str(zconfig.BuiltinIf),
		zconfig.Z802K1: placeholder("Z10001K1"),
		zconfig.Z802K2: placeholder("Z10001K2"),
		zconfig.Z802K3: boolTerm(false),
	})
	registerComposition(mem, demoFunctionAnd, demoImplAnd, and)

	validator := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str(zconfig.BuiltinBoolEqual),
		zconfig.Z844K1: placeholder("Z950K1"),
		zconfig.Z844K2: placeholder("Z950K2"),
	})
	registerComposition(mem, demoValidator, demoValidatorImpl, validator)

	testCaseValue := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z20"),
		zconfig.Z20K1: term.Str(demoFunctionAnd.String()),
		zconfig.Z20K2: term.Map(map[zid.ID]term.Term{
			zconfig.Z1K1:              term.Str("Z7"),
			zconfig.Z7K1:              term.Str(demoFunctionAnd.String()),
			zid.MustParse("Z10001K1"): boolTerm(true),
			zid.MustParse("Z10001K2"): boolTerm(false),
		}),
		zconfig.Z20K3: term.Map(map[zid.ID]term.Term{
			zconfig.Z1K1: term.Str("Z7"),
			zconfig.Z7K1: term.Str(demoValidator.String()),
			zid.MustParse("Z950K2"): boolTerm(false),
		}),
	})
	_ = mem.Add(demoTestCase, persistentObject(demoTestCase, testCaseValue))

	return mem
}
