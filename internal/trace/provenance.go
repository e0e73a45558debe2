// Package trace implements Provenance (spec §4.8): a breadcrumb
// recording where a subterm currently being evaluated came from, read
// only when formatting errors.
package trace

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wikirun/zcore/internal/zid"
)

// Kind discriminates the three Provenance shapes.
type Kind int

const (
	KindPersistent Kind = iota
	KindFromOther
	KindRuntime
)

// Provenance is an immutable value; ToOther builds a new, extended one.
type Provenance struct {
	kind   Kind
	id     zid.ID
	parent *Provenance
	path   []zid.ID
	run    uuid.UUID // set on Runtime provenance, tags one top-level evaluation
}

// Persistent builds provenance rooted at a store entry.
func Persistent(id zid.ID) Provenance {
	return Provenance{kind: KindPersistent, id: id}
}

// Runtime builds provenance for a term synthesized during evaluation
// (e.g. a validation call built by the test harness), tagged with run so
// that frames from concurrent evaluations over the same store can be
// told apart without the evaluator performing any I/O itself.
func Runtime(run uuid.UUID) Provenance {
	return Provenance{kind: KindRuntime, run: run}
}

// ToOther extends p by path, recording that the current position was
// reached by traversing path from p.
func (p Provenance) ToOther(path []zid.ID) Provenance {
	parent := p
	return Provenance{kind: KindFromOther, parent: &parent, path: path}
}

// String renders p for error/trace display.
func (p Provenance) String() string {
	switch p.kind {
	case KindPersistent:
		return fmt.Sprintf("persistent object %s", p.id)
	case KindFromOther:
		return fmt.Sprintf("%s, traversed via %v", p.parent, p.path)
	case KindRuntime:
		return fmt.Sprintf("runtime (%s)", p.run)
	default:
		return "unknown provenance"
	}
}
