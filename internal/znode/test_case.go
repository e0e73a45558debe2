package znode

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
)

// TestCase is the Z20 view.
type TestCase struct {
	Function         term.Term
	Call             term.Term
	ResultValidation term.Term
}

// ParseTestCase parses t as a Z20.
func ParseTestCase(t term.Term) (TestCase, error) {
	if err := checkType(t, zconfig.Z20); err != nil {
		return TestCase{}, err
	}

	function, err := mapGet(t, zconfig.Z20K1)
	if err != nil {
		return TestCase{}, zerr.InsideMap(err, zconfig.Z20K1)
	}
	call, err := mapGet(t, zconfig.Z20K2)
	if err != nil {
		return TestCase{}, zerr.InsideMap(err, zconfig.Z20K2)
	}
	resultValidation, err := mapGet(t, zconfig.Z20K3)
	if err != nil {
		return TestCase{}, zerr.InsideMap(err, zconfig.Z20K3)
	}

	return TestCase{Function: function, Call: call, ResultValidation: resultValidation}, nil
}
