package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikirun/zcore/internal/eval"
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/trace"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zid"
)

func TestRunFunctionCallBuiltinIfTakesThenBranch(t *testing.T) {
	mem := newStoreWithBooleans()
	registerBuiltinFunction(mem, z("Z900"), z("Z900001"), "Z902")
	ev := eval.New(mem)

	call := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str("Z900"),
		zconfig.Z802K1: boolTerm(true),
		zconfig.Z802K2: term.Str("then-branch"),
		zconfig.Z802K3: term.Str("else-branch"),
	})

	got, err := ev.RunFunctionCall(call, trace.Persistent(z("Z900")), eval.Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(term.Str("then-branch")))
}

func TestRunFunctionCallBuiltinIfTakesElseBranch(t *testing.T) {
	mem := newStoreWithBooleans()
	registerBuiltinFunction(mem, z("Z900"), z("Z900001"), "Z902")
	ev := eval.New(mem)

	call := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str("Z900"),
		zconfig.Z802K1: boolTerm(false),
		zconfig.Z802K2: term.Str("then-branch"),
		zconfig.Z802K3: term.Str("else-branch"),
	})

	got, err := ev.RunFunctionCall(call, trace.Persistent(z("Z900")), eval.Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(term.Str("else-branch")))
}

func TestRunFunctionCallBuiltinIsEmptyTypedList(t *testing.T) {
	mem := newStoreWithBooleans()
	registerBuiltinFunction(mem, z("Z910"), z("Z910001"), "Z913")
	ev := eval.New(mem)

	emptyCall := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str("Z910"),
		zconfig.Z813K1: term.Arr(term.Str("Z6")),
	})
	got, err := ev.RunFunctionCall(emptyCall, trace.Persistent(z("Z910")), eval.Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(boolTerm(true)))

	nonEmptyCall := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str("Z910"),
		zconfig.Z813K1: term.Arr(term.Str("Z6"), term.Str("a")),
	})
	got, err = ev.RunFunctionCall(nonEmptyCall, trace.Persistent(z("Z910")), eval.Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(boolTerm(false)))
}

func TestRunFunctionCallBuiltinBoolEqual(t *testing.T) {
	mem := newStoreWithBooleans()
	registerBuiltinFunction(mem, z("Z944"), z("Z944001"), "Z944")
	ev := eval.New(mem)

	call := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str("Z944"),
		zconfig.Z844K1: boolTerm(true),
		zconfig.Z844K2: boolTerm(true),
	})
	got, err := ev.RunFunctionCall(call, trace.Persistent(z("Z944")), eval.Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(boolTerm(true)))

	call = term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str("Z944"),
		zconfig.Z844K1: boolTerm(true),
		zconfig.Z844K2: boolTerm(false),
	})
	got, err = ev.RunFunctionCall(call, trace.Persistent(z("Z944")), eval.Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(boolTerm(false)))
}

func TestRunFunctionCallCompositionSubstitutesPlaceholder(t *testing.T) {
	mem := newStoreWithBooleans()
	registerCompositionFunction(mem, z("Z920"), z("Z920001"), placeholder("Z920K1"))
	ev := eval.New(mem)

	call := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z7"),
		zconfig.Z7K1: term.Str("Z920"),
		z("Z920K1"):  term.Str("payload"),
	})

	got, err := ev.RunFunctionCall(call, trace.Persistent(z("Z920")), eval.Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(term.Str("payload")))
}

func TestRunFunctionCallCompositionRecursesIntoNestedCalls(t *testing.T) {
	mem := newStoreWithBooleans()
	registerBuiltinFunction(mem, z("Z900"), z("Z900001"), "Z902")

	// Z930's composition forwards its argument straight into an `if`
	// call, exercising walkAndCall's re-entry into RunFunctionCall on a
	// nested Z7-tagged node produced by substitution.
	nestedIf := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:   term.Str("Z7"),
		zconfig.Z7K1:   term.Str("Z900"),
		zconfig.Z802K1: placeholder("Z930K1"),
		zconfig.Z802K2: term.Str("yes"),
		zconfig.Z802K3: term.Str("no"),
	})
	registerCompositionFunction(mem, z("Z930"), z("Z930001"), nestedIf)
	ev := eval.New(mem)

	call := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z7"),
		zconfig.Z7K1: term.Str("Z930"),
		z("Z930K1"):  boolTerm(true),
	})

	got, err := ev.RunFunctionCall(call, trace.Persistent(z("Z930")), eval.Options{})
	require.NoError(t, err)
	assert.True(t, got.Equal(term.Str("yes")))
}

func TestSelectImplementationHonorsForceImpl(t *testing.T) {
	mem := newStoreWithBooleans()
	registerCompositionFunction(mem, z("Z940"), z("Z940001"), term.Str("default"))
	// a second implementation, never referenced by Z940's own
	// implementation list, selectable only via ForceImpl.
	forced := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z14"),
		zconfig.Z14K1: term.Str("Z940"),
		zconfig.Z14K2: term.Str("forced"),
	})
	_ = mem.Add(z("Z940002"), persistentObject(z("Z940002"), forced))

	ev := eval.New(mem)
	call := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z7"),
		zconfig.Z7K1: term.Str("Z940"),
	})

	got, err := ev.RunFunctionCall(call, trace.Persistent(z("Z940")),
		eval.Options{ForceImpl: map[zid.ID]zid.ID{z("Z940"): z("Z940002")}})
	require.NoError(t, err)
	assert.True(t, got.Equal(term.Str("forced")))
}

func TestSelectImplementationUnimplementedWhenNoUsableImpl(t *testing.T) {
	mem := newStoreWithBooleans()
	codeOnly := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1:  term.Str("Z14"),
		zconfig.Z14K1: term.Str("Z950"),
		zconfig.Z14K3: term.Str("some code"),
	})
	_ = mem.Add(z("Z950001"), persistentObject(z("Z950001"), codeOnly))
	_ = mem.Add(z("Z950"), persistentObject(z("Z950"), function(z("Z950001"))))

	ev := eval.New(mem)
	call := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z7"),
		zconfig.Z7K1: term.Str("Z950"),
	})

	_, err := ev.RunFunctionCall(call, trace.Persistent(z("Z950")), eval.Options{})
	assert.Error(t, err)
}
