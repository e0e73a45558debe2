package znode

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
)

// PersistentObject is the Z2 view: a root-level wrapper holding the
// entity's own identifier, its payload, and presentation metadata.
type PersistentObject struct {
	ID                zid.ID
	Value             term.Term
	Labels            PotentialReference[Untyped]
	Aliases           PotentialReference[Untyped]
	ShortDescription  PotentialReference[Untyped]
}

// ParsePersistentObject parses t as a Z2.
func ParsePersistentObject(t term.Term) (PersistentObject, error) {
	if err := checkType(t, zconfig.Z2); err != nil {
		return PersistentObject{}, err
	}

	idTerm, err := mapGet(t, zconfig.Z2K1)
	if err != nil {
		return PersistentObject{}, zerr.InsideMap(err, zconfig.Z2K1)
	}
	id, err := parseIdentifier(idTerm)
	if err != nil {
		return PersistentObject{}, zerr.InsideMap(err, zconfig.Z2K1)
	}

	value, err := mapGet(t, zconfig.Z2K2)
	if err != nil {
		return PersistentObject{}, zerr.InsideMap(err, zconfig.Z2K2)
	}

	labels, err := potentialUntyped(t, zconfig.Z2K3)
	if err != nil {
		return PersistentObject{}, err
	}
	aliases, err := potentialUntyped(t, zconfig.Z2K4)
	if err != nil {
		return PersistentObject{}, err
	}
	shortDescription, err := potentialUntyped(t, zconfig.Z2K5)
	if err != nil {
		return PersistentObject{}, err
	}

	return PersistentObject{
		ID:               id,
		Value:            value,
		Labels:           labels,
		Aliases:          aliases,
		ShortDescription: shortDescription,
	}, nil
}

// potentialUntyped builds a PotentialReference[Untyped] over the cell at
// key, defaulting to an empty array cell when the key is absent (labels
// etc. are optional metadata, per spec §4.2).
func potentialUntyped(t term.Term, key zid.ID) (PotentialReference[Untyped], error) {
	cell, ok, err := mapGetOptional(t, key)
	if err != nil {
		return PotentialReference[Untyped]{}, zerr.InsideMap(err, key)
	}
	if !ok {
		cell = term.Arr()
	}
	return NewPotentialReference(cell, ParseUntyped), nil
}
