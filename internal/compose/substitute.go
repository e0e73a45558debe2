// Package compose implements the substitution engine (spec §4.4),
// grounded directly on the original implementation's
// recurse_and_replace_placeholder.
package compose

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zconfig"
	"github.com/wikirun/zcore/internal/zerr"
	"github.com/wikirun/zcore/internal/zid"
)

// Substitute replaces every Z18 placeholder in body with the term bound
// to its Z18K1 argument key in args. Replacement values are inserted as
// they are and never themselves recursed into, since placeholders cannot
// refer to placeholders; a Z18 node inside a bound argument value is
// therefore left in the result.
func Substitute(body term.Term, args map[zid.ID]term.Term) (term.Term, error) {
	switch body.Kind() {
	case term.KindMap:
		m, _ := body.AsMap()

		if tagTerm, ok := m[zconfig.Z1K1]; ok {
			if tag, err := tagTerm.AsString(); err == nil && tag == zconfig.TypePlaceholder {
				keyTerm, ok := m[zconfig.Z18K1]
				if !ok {
					return term.Term{}, zerr.MissingKey(zconfig.Z18K1)
				}
				keyText, err := keyTerm.AsString()
				if err != nil {
					return term.Term{}, zerr.InsideMap(err, zconfig.Z18K1)
				}
				argKey, err := zid.Parse(keyText)
				if err != nil {
					return term.Term{}, zerr.InsideMap(zerr.ParseIdentifier(err), zconfig.Z18K1)
				}
				replacement, ok := args[argKey]
				if !ok {
					return term.Term{}, zerr.MissingKey(argKey)
				}
				return replacement, nil
			}
		}

		entries, err := body.Entries()
		if err != nil {
			return term.Term{}, err
		}
		newMap := make(map[zid.ID]term.Term, len(entries))
		for _, e := range entries {
			substituted, err := Substitute(e.Value, args)
			if err != nil {
				return term.Term{}, zerr.InsideMap(err, e.Key)
			}
			newMap[e.Key] = substituted
		}
		return term.Map(newMap), nil

	case term.KindArray:
		items, _ := body.AsArray()
		newItems := make([]term.Term, len(items))
		for i, item := range items {
			substituted, err := Substitute(item, args)
			if err != nil {
				return term.Term{}, zerr.InsideArray(err, i)
			}
			newItems[i] = substituted
		}
		return term.Arr(newItems...), nil

	default: // KindString
		return body, nil
	}
}
