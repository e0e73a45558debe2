package znode

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
)

// FunctionCall is the Z7 view: the target function and every argument
// binding (every map key other than Z1K1 and Z7K1).
type FunctionCall struct {
	Function zid.ID
	Args     map[zid.ID]term.Term
}

// ParseFunctionCall parses t as a Z7.
func ParseFunctionCall(t term.Term) (FunctionCall, error) {
	if err := checkType(t, zconfig.Z7); err != nil {
		return FunctionCall{}, err
	}

	function, err := getIdentifier(t, zconfig.Z7K1)
	if err != nil {
		return FunctionCall{}, zerr.InsideMap(err, zconfig.Z7K1)
	}

	entries, err := t.Entries()
	if err != nil {
		return FunctionCall{}, zerr.Wrap(err)
	}

	args := make(map[zid.ID]term.Term, len(entries))
	for _, e := range entries {
		if e.Key == zconfig.Z1K1 || e.Key == zconfig.Z7K1 {
			continue
		}
		args[e.Key] = e.Value
	}

	return FunctionCall{Function: function, Args: args}, nil
}
