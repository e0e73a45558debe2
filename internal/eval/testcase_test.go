package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikirun/zcore/internal/eval"
	"github.com/wikirun/zcore/internal/store"
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
	"github.com/wikirun/zcore/internal/znode"
)

// setupValidatorStore seeds a store with Z944 (boolean equality, a
// builtin) and Z950, a composition that forwards its own call argument
// keys (Z950K1, Z950K2 — the ones the test harness can splice a result
// into) to Z944. Z944's own call argument keys (Z844K1/K2) differ from
// its own number by the historical -100 offset shared by all three
// minimal builtins, so a validator under test cannot target Z944 itself.
func setupValidatorStore() *store.Memory {
	mem := newStoreWithBooleans()
	registerBuiltinFunction(mem, z("Z944"), z("Z944001"), "Z944")

	composition := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str("Z944"),
		zconfig.Z844K1: placeholder("Z950K1"),
		zconfig.Z844K2: placeholder("Z950K2"),
	})
	registerCompositionFunction(mem, z("Z950"), z("Z950001"), composition)
	return mem
}

func testCaseObject(expected term.Term) term.Term {
	call := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z7"),
		zconfig.Z7K1: term.Str("Z960"),
		z("Z960K1"):  term.Arr(),
	})
	validation := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z7"),
		zconfig.Z7K1: term.Str("Z950"),
		z("Z950K2"):  expected,
	})
	value := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z20"),
		zconfig.Z20K1: term.Str("Z960"),
		zconfig.Z20K2: call,
		zconfig.Z20K3: validation,
	})
	return persistentObject(z("Z970"), value)
}

func TestRunTestCasePasses(t *testing.T) {
	mem := setupValidatorStore()
	registerCompositionFunction(mem, z("Z960"), z("Z960001"), boolTerm(true))

	ev := eval.New(mem)
	testCase, err := znode.ParsePersistentObject(testCaseObject(boolTerm(true)))
	require.NoError(t, err)
	implementation, err := znode.ParsePersistentObject(mustGet(t, mem, z("Z960001")))
	require.NoError(t, err)

	actual, err := ev.RunTestCase(testCase, implementation)
	require.NoError(t, err)
	assert.True(t, actual.Equal(boolTerm(true)))
}

func TestRunTestCaseFails(t *testing.T) {
	mem := setupValidatorStore()
	registerCompositionFunction(mem, z("Z960"), z("Z960001"), boolTerm(true))

	ev := eval.New(mem)
	testCase, err := znode.ParsePersistentObject(testCaseObject(boolTerm(false)))
	require.NoError(t, err)
	implementation, err := znode.ParsePersistentObject(mustGet(t, mem, z("Z960001")))
	require.NoError(t, err)

	_, err = ev.RunTestCase(testCase, implementation)
	require.Error(t, err)
	ze, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, zerr.KindTestResultInfo, ze.Kind())
}

func mustGet(t *testing.T, mem *store.Memory, id zid.ID) term.Term {
	t.Helper()
	v, ok := mem.Get(id)
	require.True(t, ok)
	return v
}
