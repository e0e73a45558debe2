package zerr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
)

func TestRootAndFramesBottomUp(t *testing.T) {
	id := zid.MustParse("Z7K1")
	base := zerr.MissingKey(id)

	wrapped := zerr.InsideMap(base, zid.MustParse("Z2K2"))
	wrapped = zerr.InsideArray(wrapped, 3)
	wrapped = zerr.Trace(wrapped, "calling implementation Z14")

	root := zerr.Root(wrapped)
	require.NotNil(t, root)
	assert.Equal(t, zerr.KindMissingKey, root.Kind())
	assert.Equal(t, id, root.MissingKeyID())

	frames := zerr.Frames(wrapped)
	require.Len(t, frames, 2)
	assert.Equal(t, zerr.FrameInsideMap, frames[0].Kind)
	assert.Equal(t, zerr.FrameInsideArray, frames[1].Kind)
}

func TestUnwrapChainSupportsErrorsAs(t *testing.T) {
	base := zerr.NotAMap()
	wrapped := zerr.InsideInput(base, "the implementation to test")

	var target *zerr.Error
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, zerr.KindNotAMap, zerr.Root(wrapped).Kind())
}

func TestTestResultInfoPreservesActual(t *testing.T) {
	actual := term.Str("x")
	inner := zerr.TestSuiteFailed(actual)
	info := zerr.TestResultInfo(actual, inner)

	assert.Equal(t, zerr.KindTestResultInfo, info.Kind())
	assert.True(t, info.Actual().Equal(actual))
	assert.True(t, errors.Is(info, info))
}

func TestDisplayRendersReversedFrames(t *testing.T) {
	wrapped := zerr.InsideArray(zerr.InsideMap(zerr.NotAString(), zid.MustParse("Z7K1")), 0)
	out := zerr.Display(wrapped)
	assert.Contains(t, out, "not a string")
	assert.Contains(t, out, "at array position 0")
	assert.Contains(t, out, "inside Z7K1")
	// the outermost (last-pushed) frame is rendered first
	assert.Less(t, strings.Index(out, "at array position 0"), strings.Index(out, "inside Z7K1"))
}
