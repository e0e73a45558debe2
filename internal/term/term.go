// Package term implements Term, the untyped recursive value that every
// entity in the object language — values, types, functions, function
// calls, test cases — is built out of (spec §3).
package term

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wikirun/zcore/internal/zid"
)

// Kind discriminates the three term shapes.
type Kind int

const (
	KindString Kind = iota
	KindMap
	KindArray
)

// Term is one of Str(s), Map(m), or Arr(v). Terms are immutable after
// construction; every transformation in this module produces a new Term
// rather than mutating one in place (spec §3, §5).
type Term struct {
	kind Kind
	str  string
	m    map[zid.ID]Term
	arr  []Term
}

// Str builds a string term.
func Str(s string) Term { return Term{kind: KindString, str: s} }

// Map builds a map term from m. The caller's map is copied so later
// mutation of m by the caller cannot be observed through the Term.
func Map(m map[zid.ID]Term) Term {
	copied := make(map[zid.ID]Term, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return Term{kind: KindMap, m: copied}
}

// Arr builds an array term from items, copying the backing slice.
func Arr(items ...Term) Term {
	copied := make([]Term, len(items))
	copy(copied, items)
	return Term{kind: KindArray, arr: copied}
}

// Kind reports which shape t has.
func (t Term) Kind() Kind { return t.kind }

// ShapeError is a dedicated error kind reported by the shape-projecting
// accessors; it is intentionally a small leaf type so that callers
// in other packages can map it onto zerr.Kind without this package
// depending on zerr (term sits below zerr in the dependency graph).
type ShapeError struct {
	Want string
}

func (e *ShapeError) Error() string { return fmt.Sprintf("not a %s", e.Want) }

// AsString returns the payload of a Str term, or a ShapeError.
func (t Term) AsString() (string, error) {
	if t.kind != KindString {
		return "", &ShapeError{Want: "string"}
	}
	return t.str, nil
}

// AsMap returns the payload of a Map term, or a ShapeError. The returned
// map must not be mutated by the caller.
func (t Term) AsMap() (map[zid.ID]Term, error) {
	if t.kind != KindMap {
		return nil, &ShapeError{Want: "map"}
	}
	return t.m, nil
}

// AsArray returns the payload of an Arr term, or a ShapeError. The
// returned slice must not be mutated by the caller.
func (t Term) AsArray() ([]Term, error) {
	if t.kind != KindArray {
		return nil, &ShapeError{Want: "array"}
	}
	return t.arr, nil
}

// MissingKeyError is returned by MapGet when id is absent from the map;
// kept distinct from ShapeError so callers can tell "wrong shape" from
// "right shape, absent key" apart without a type switch on strings.
type MissingKeyError struct {
	ID zid.ID
}

func (e *MissingKeyError) Error() string { return fmt.Sprintf("missing key %s", e.ID) }

// MapGet looks up id in t, requiring t to be a map.
func (t Term) MapGet(id zid.ID) (Term, error) {
	m, err := t.AsMap()
	if err != nil {
		return Term{}, err
	}
	v, ok := m[id]
	if !ok {
		return Term{}, &MissingKeyError{ID: id}
	}
	return v, nil
}

// MapGetOptional looks up id in t, requiring t to be a map, and reports
// absence via the boolean instead of an error.
func (t Term) MapGetOptional(id zid.ID) (Term, bool, error) {
	m, err := t.AsMap()
	if err != nil {
		return Term{}, false, err
	}
	v, ok := m[id]
	return v, ok, nil
}

// Entry is one (key, value) pair of a map term, used by Entries to expose
// the canonical sorted-by-key iteration order (spec §3: "iteration order
// is sorted by key").
type Entry struct {
	Key   zid.ID
	Value Term
}

// Entries returns t's map entries sorted by key. Requires t to be a map.
func (t Term) Entries() ([]Entry, error) {
	m, err := t.AsMap()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key.Less(entries[j].Key) })
	return entries, nil
}

// Equal reports deep structural equality between t and other.
func (t Term) Equal(other Term) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindString:
		return t.str == other.str
	case KindArray:
		if len(t.arr) != len(other.arr) {
			return false
		}
		for i := range t.arr {
			if !t.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(t.m) != len(other.m) {
			return false
		}
		for k, v := range t.m {
			ov, ok := other.m[k]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// DebugString renders a compact, stable representation of t for error
// messages and trace frames. It is not a serialization format.
func DebugString(t Term) string {
	switch t.kind {
	case KindString:
		return fmt.Sprintf("%q", t.str)
	case KindArray:
		parts := make([]string, len(t.arr))
		for i, v := range t.arr {
			parts[i] = DebugString(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		entries, _ := t.Entries()
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = fmt.Sprintf("%s: %s", e.Key, DebugString(e.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<invalid term>"
	}
}
