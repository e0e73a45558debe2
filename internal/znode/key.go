package znode

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
)

// Key is the Z3 view.
type Key struct {
	ValueType  term.Term
	KeyID      term.Term
	Label      term.Term
	IsIdentity term.Term
}

// ParseKey parses t as a Z3.
func ParseKey(t term.Term) (Key, error) {
	if err := checkType(t, zconfig.Z3); err != nil {
		return Key{}, err
	}

	valueType, err := mapGet(t, zconfig.Z3K1)
	if err != nil {
		return Key{}, zerr.InsideMap(err, zconfig.Z3K1)
	}
	keyID, err := mapGet(t, zconfig.Z3K2)
	if err != nil {
		return Key{}, zerr.InsideMap(err, zconfig.Z3K2)
	}
	label, err := mapGet(t, zconfig.Z3K3)
	if err != nil {
		return Key{}, zerr.InsideMap(err, zconfig.Z3K3)
	}
	isIdentity, err := mapGet(t, zconfig.Z3K4)
	if err != nil {
		return Key{}, zerr.InsideMap(err, zconfig.Z3K4)
	}

	return Key{ValueType: valueType, KeyID: keyID, Label: label, IsIdentity: isIdentity}, nil
}
