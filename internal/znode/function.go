package znode

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
)

// Function is the Z8 view.
type Function struct {
	Arguments       term.Term
	ReturnType      term.Term
	Testers         term.Term
	Implementations term.Term
	Identity        term.Term
}

// ParseFunction parses t as a Z8.
func ParseFunction(t term.Term) (Function, error) {
	if err := checkType(t, zconfig.Z8); err != nil {
		return Function{}, err
	}

	arguments, err := mapGet(t, zconfig.Z8K1)
	if err != nil {
		return Function{}, zerr.InsideMap(err, zconfig.Z8K1)
	}
	returnType, err := mapGet(t, zconfig.Z8K2)
	if err != nil {
		return Function{}, zerr.InsideMap(err, zconfig.Z8K2)
	}
	testers, err := mapGet(t, zconfig.Z8K3)
	if err != nil {
		return Function{}, zerr.InsideMap(err, zconfig.Z8K3)
	}
	implementations, err := mapGet(t, zconfig.Z8K4)
	if err != nil {
		return Function{}, zerr.InsideMap(err, zconfig.Z8K4)
	}
	identity, err := mapGet(t, zconfig.Z8K5)
	if err != nil {
		return Function{}, zerr.InsideMap(err, zconfig.Z8K5)
	}

	return Function{
		Arguments:       arguments,
		ReturnType:      returnType,
		Testers:         testers,
		Implementations: implementations,
		Identity:        identity,
	}, nil
}
