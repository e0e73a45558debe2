package znode

import "github.com/wikirun/zcore/internal/term"

// Untyped is a passthrough view: it performs no shape validation and
// simply exposes the raw term it was given. It is used for fields the
// spec leaves untyped, such as a persistent object's labels, aliases,
// and short description.
type Untyped struct {
	Term term.Term
}

// ParseUntyped always succeeds.
func ParseUntyped(t term.Term) (Untyped, error) {
	return Untyped{Term: t}, nil
}
