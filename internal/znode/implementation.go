package znode

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
)

// Implementation is the Z14 view. Composition, Code, and Builtin are
// optional; HasComposition/HasCode/HasBuiltin report which, if any, is
// present (spec §4.5's select_implementation inspects exactly this).
type Implementation struct {
	Function term.Term

	Composition   term.Term
	HasComposition bool

	Code   term.Term
	HasCode bool

	Builtin   term.Term
	HasBuiltin bool
}

// ParseImplementation parses t as a Z14.
func ParseImplementation(t term.Term) (Implementation, error) {
	if err := checkType(t, zconfig.Z14); err != nil {
		return Implementation{}, err
	}

	function, err := mapGet(t, zconfig.Z14K1)
	if err != nil {
		return Implementation{}, zerr.InsideMap(err, zconfig.Z14K1)
	}

	composition, hasComposition, err := mapGetOptional(t, zconfig.Z14K2)
	if err != nil {
		return Implementation{}, zerr.InsideMap(err, zconfig.Z14K2)
	}
	code, hasCode, err := mapGetOptional(t, zconfig.Z14K3)
	if err != nil {
		return Implementation{}, zerr.InsideMap(err, zconfig.Z14K3)
	}
	builtin, hasBuiltin, err := mapGetOptional(t, zconfig.Z14K4)
	if err != nil {
		return Implementation{}, zerr.InsideMap(err, zconfig.Z14K4)
	}

	return Implementation{
		Function:       function,
		Composition:    composition,
		HasComposition: hasComposition,
		Code:           code,
		HasCode:        hasCode,
		Builtin:        builtin,
		HasBuiltin:     hasBuiltin,
	}, nil
}
