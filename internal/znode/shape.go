// Package znode implements the typed views over Term described in
// spec §4.2: lightweight, non-owning parsers that validate a Term's
// shape and expose its named sub-terms.
package znode

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
)

// parseIdentifier parses t as a string term holding identifier text.
func parseIdentifier(t term.Term) (zid.ID, error) {
	s, err := t.AsString()
	if err != nil {
		return zid.ID{}, zerr.Wrap(err)
	}
	id, err := zid.Parse(s)
	if err != nil {
		return zid.ID{}, zerr.ParseIdentifier(err)
	}
	return id, nil
}

// getIdentifier reads key from t's map and parses it as an identifier,
// attaching an InsideMap frame when the value does not parse (a missing
// key is returned without a frame).
func getIdentifier(t term.Term, key zid.ID) (zid.ID, error) {
	v, err := mapGet(t, key)
	if err != nil {
		return zid.ID{}, err
	}
	id, err := parseIdentifier(v)
	if err != nil {
		return zid.ID{}, zerr.InsideMap(err, key)
	}
	return id, nil
}

// checkType requires t to be a map whose Z1K1 equals want.
func checkType(t term.Term, want zid.ID) error {
	got, err := getIdentifier(t, zconfig.Z1K1)
	if err != nil {
		return zerr.InsideMap(err, zconfig.Z1K1)
	}
	if got != want {
		return zerr.WrongType(got, want)
	}
	return nil
}

// mapGet looks up key in t, converting term-level shape/missing-key
// errors into zerr errors.
func mapGet(t term.Term, key zid.ID) (term.Term, error) {
	v, err := t.MapGet(key)
	if err != nil {
		return term.Term{}, zerr.Wrap(err)
	}
	return v, nil
}

// mapGetOptional looks up key in t without requiring presence.
func mapGetOptional(t term.Term, key zid.ID) (term.Term, bool, error) {
	v, ok, err := t.MapGetOptional(key)
	if err != nil {
		return term.Term{}, false, zerr.Wrap(err)
	}
	return v, ok, nil
}
