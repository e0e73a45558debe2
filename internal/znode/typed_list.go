package znode

import (
	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zerr"
)

// TypedList is a view over an array term whose first element carries the
// list's element-type term, with the remaining elements as payload
// (spec §3: "By convention the first element of a typed list carries the
// list's element-type term").
type TypedList[T any] struct {
	ElementType term.Term
	items       []term.Term
	parse       Parser[T]
}

// ParseTypedList builds a TypedList view given the element parser.
func ParseTypedList[T any](t term.Term, parse Parser[T]) (TypedList[T], error) {
	arr, err := t.AsArray()
	if err != nil {
		return TypedList[T]{}, zerr.Wrap(err)
	}
	if len(arr) == 0 {
		return TypedList[T]{}, zerr.NotAnArray()
	}
	return TypedList[T]{ElementType: arr[0], items: arr[1:], parse: parse}, nil
}

// Len reports the number of payload elements (excluding the type tag).
func (l TypedList[T]) Len() int { return len(l.items) }

// IsEmpty reports whether the list has no payload elements, matching the
// builtin Z913's "length <= 1" rule applied to the underlying array.
func (l TypedList[T]) IsEmpty() bool { return len(l.items) == 0 }

// Get parses payload element i.
func (l TypedList[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, zerr.InsideArray(zerr.NotAnArray(), i)
	}
	v, err := l.parse(l.items[i])
	if err != nil {
		return zero, zerr.InsideArray(err, i)
	}
	return v, nil
}
