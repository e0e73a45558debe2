package znode

import (
	"github.com/wikirun/zcore/internal/store"
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
)

// Parser parses a raw Term into a typed view T. Every typed view in this
// package (PersistentObject, Function, ...) has a package-level function
// of this shape, e.g. ParsePersistentObject.
type Parser[T any] func(term.Term) (T, error)

// PotentialReference wraps a cell that may be a raw string identifier, an
// explicit Z9 reference map, or an inline term, resolving it against the
// store on demand (spec §3 "Potential-reference cell", §4.3).
type PotentialReference[T any] struct {
	cell  term.Term
	parse Parser[T]
}

// NewPotentialReference wraps cell for later resolution with parse.
func NewPotentialReference[T any](cell term.Term, parse Parser[T]) PotentialReference[T] {
	return PotentialReference[T]{cell: cell, parse: parse}
}

// Evaluate performs exactly one resolution hop (spec §4.3): arrays parse
// in place; strings are dereferenced through st as an identifier; maps
// tagged Z9 are dereferenced through their Z9K1 referent, any other map
// parses in place. It never follows Z7 (function call) or Z18
// (placeholder) terms.
func (p PotentialReference[T]) Evaluate(st store.Store) (T, error) {
	var zero T

	switch p.cell.Kind() {
	case term.KindArray:
		v, err := p.parse(p.cell)
		if err != nil {
			return zero, err
		}
		return v, nil

	case term.KindString:
		s, _ := p.cell.AsString()
		id, err := zid.Parse(s)
		if err != nil {
			return zero, zerr.ParseIdentifier(err)
		}
		resolved, err := dereference(st, id)
		if err != nil {
			return zero, err
		}
		v, err := p.parse(resolved)
		if err != nil {
			return zero, err
		}
		return v, nil

	case term.KindMap:
		tagID, err := getIdentifier(p.cell, zconfig.Z1K1)
		if err == nil && tagID == zconfig.Z9 {
			referentTerm, err := mapGet(p.cell, zconfig.Z9K1)
			if err != nil {
				return zero, zerr.InsideMap(err, zconfig.Z9K1)
			}
			referentID, err := parseIdentifier(referentTerm)
			if err != nil {
				return zero, zerr.InsideMap(err, zconfig.Z9K1)
			}
			resolved, err := dereference(st, referentID)
			if err != nil {
				return zero, err
			}
			v, err := p.parse(resolved)
			if err != nil {
				return zero, err
			}
			return v, nil
		}

		v, err := p.parse(p.cell)
		if err != nil {
			return zero, err
		}
		return v, nil
	}

	v, err := p.parse(p.cell)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// dereference looks up id in st and returns the persistent object's
// value term (not the Z2 wrapper itself).
func dereference(st store.Store, id zid.ID) (term.Term, error) {
	root, ok := st.Get(id)
	if !ok {
		return term.Term{}, zerr.Reference(zerr.MissingKey(id), id)
	}
	obj, err := ParsePersistentObject(root)
	if err != nil {
		return term.Term{}, zerr.Reference(err, id)
	}
	return obj.Value, nil
}
