package znode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikirun/zcore/internal/store"
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zid"
	"github.com/wikirun/zcore/internal/znode"
)

func z(text string) zid.ID { return zid.MustParse(text) }

func persistentObject(id zid.ID, value term.Term) term.Term {
	return term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z2"),
		zconfig.Z2K1: term.Str(id.String()),
		zconfig.Z2K2: value,
	})
}

func TestParsePersistentObjectRequiresZ2Tag(t *testing.T) {
	_, err := znode.ParsePersistentObject(term.Str("x"))
	assert.Error(t, err)

	notZ2 := term.Map(map[zid.ID]term.Term{zconfig.Z1K1: term.Str("Z6")})
	_, err = znode.ParsePersistentObject(notZ2)
	assert.Error(t, err)
}

func TestParsePersistentObjectHappyPath(t *testing.T) {
	obj := persistentObject(z("Z400"), term.Str("hello"))
	parsed, err := znode.ParsePersistentObject(obj)
	require.NoError(t, err)
	assert.Equal(t, z("Z400"), parsed.ID)
	assert.True(t, parsed.Value.Equal(term.Str("hello")))
}

func TestParseFunctionCallSplitsArgsFromTagKeys(t *testing.T) {
	call := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z7"),
		zconfig.Z7K1: term.Str("Z902"),
		z("Z802K1"):  term.Str("cond"),
		z("Z802K2"):  term.Str("then"),
	})

	fc, err := znode.ParseFunctionCall(call)
	require.NoError(t, err)
	assert.Equal(t, z("Z902"), fc.Function)
	assert.Len(t, fc.Args, 2)
	_, hasFunctionKey := fc.Args[zconfig.Z7K1]
	assert.False(t, hasFunctionKey)
}

func TestPotentialReferenceResolvesString(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Add(z("Z500"), persistentObject(z("Z500"), term.Str("payload"))))

	ref := znode.NewPotentialReference(term.Str("Z500"), znode.ParseUntyped)
	got, err := ref.Evaluate(mem)
	require.NoError(t, err)
	assert.True(t, got.Term.Equal(term.Str("payload")))
}

func TestPotentialReferenceResolvesExplicitZ9(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Add(z("Z501"), persistentObject(z("Z501"), term.Str("indirect"))))

	cell := term.Map(map[zid.ID]term.Term{
		zconfig.Z1K1: term.Str("Z9"),
		zconfig.Z9K1: term.Str("Z501"),
	})
	ref := znode.NewPotentialReference(cell, znode.ParseUntyped)
	got, err := ref.Evaluate(mem)
	require.NoError(t, err)
	assert.True(t, got.Term.Equal(term.Str("indirect")))
}

func TestPotentialReferenceArrayNeverDereferences(t *testing.T) {
	mem := store.NewMemory()
	cell := term.Arr(term.Str("Z6"), term.Str("a"))
	ref := znode.NewPotentialReference(cell, znode.ParseUntyped)
	got, err := ref.Evaluate(mem)
	require.NoError(t, err)
	assert.True(t, got.Term.Equal(cell))
}

func TestTypedListIsEmpty(t *testing.T) {
	onlyType := term.Arr(term.Str("Z6"))
	list, err := znode.ParseTypedList(onlyType, znode.ParseUntyped)
	require.NoError(t, err)
	assert.True(t, list.IsEmpty())

	withPayload := term.Arr(term.Str("Z6"), term.Str("a"))
	list, err = znode.ParseTypedList(withPayload, znode.ParseUntyped)
	require.NoError(t, err)
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 1, list.Len())
}
