package znode

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
)

// Type is the Z4 view (spec §3's type row).
type Type struct {
	Identity   term.Term
	Keys       term.Term
	Validator  term.Term
	Equality   term.Term
	Display    term.Term
	Reading    term.Term
	Converters []term.Term // Z4K7, Z4K8 — present only if the type defines them
}

// ParseType parses t as a Z4.
func ParseType(t term.Term) (Type, error) {
	if err := checkType(t, zconfig.Z4); err != nil {
		return Type{}, err
	}

	identity, err := mapGet(t, zconfig.Z4K1)
	if err != nil {
		return Type{}, zerr.InsideMap(err, zconfig.Z4K1)
	}
	keys, err := mapGet(t, zconfig.Z4K2)
	if err != nil {
		return Type{}, zerr.InsideMap(err, zconfig.Z4K2)
	}
	validator, err := mapGet(t, zconfig.Z4K3)
	if err != nil {
		return Type{}, zerr.InsideMap(err, zconfig.Z4K3)
	}
	equality, err := mapGet(t, zconfig.Z4K4)
	if err != nil {
		return Type{}, zerr.InsideMap(err, zconfig.Z4K4)
	}
	display, err := mapGet(t, zconfig.Z4K5)
	if err != nil {
		return Type{}, zerr.InsideMap(err, zconfig.Z4K5)
	}
	reading, err := mapGet(t, zconfig.Z4K6)
	if err != nil {
		return Type{}, zerr.InsideMap(err, zconfig.Z4K6)
	}

	var converters []term.Term
	if c7, ok, err := mapGetOptional(t, zconfig.Z4K7); err != nil {
		return Type{}, zerr.InsideMap(err, zconfig.Z4K7)
	} else if ok {
		converters = append(converters, c7)
	}
	if c8, ok, err := mapGetOptional(t, zconfig.Z4K8); err != nil {
		return Type{}, zerr.InsideMap(err, zconfig.Z4K8)
	} else if ok {
		converters = append(converters, c8)
	}

	return Type{
		Identity:   identity,
		Keys:       keys,
		Validator:  validator,
		Equality:   equality,
		Display:    display,
		Reading:    reading,
		Converters: converters,
	}, nil
}
