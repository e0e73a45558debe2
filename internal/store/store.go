// Package store implements the evaluator's object-store contract
// (spec §6.1): a read-only mapping from identifier to root Term. This
// package provides only an in-memory adapter good enough for tests and
// the CLI's demo fixtures; it is not the dump reader or JSON decoder,
// both of which remain external collaborators (spec §1).
package store

import (
	"fmt"
	"sync"

	"github.com/wikirun/zcore/internal/term"
	"github.com/wikirun/zcore/internal/zid"
)

// Store is the evaluator's read-only view of the persistent object
// universe. Implementations must be safe for concurrent Get calls (spec
// §5: "it may be shared across evaluator instances without locking").
type Store interface {
	// Get returns the root term stored under id, and whether it exists.
	Get(id zid.ID) (term.Term, bool)
}

// Memory is an in-memory Store, built up front from already-parsed
// terms. It mirrors the role of the original implementation's
// GlobalDatas, minus the JSON-parsing step that decoder owns.
type Memory struct {
	mu   sync.RWMutex
	data map[zid.ID]term.Term
}

// NewMemory builds an empty store.
func NewMemory() *Memory {
	return &Memory{data: make(map[zid.ID]term.Term)}
}

// Add registers t under id, rejecting a second registration of the same
// id — the in-memory analogue of the original implementation's "a page
// with this title has already been added" guard, which keeps the
// store's persistent-object-identity invariant enforceable at
// construction time.
func (m *Memory) Add(id zid.ID, t term.Term) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[id]; exists {
		return fmt.Errorf("store: an entry for %s has already been added", id)
	}
	m.data[id] = t
	return nil
}

// Get implements Store.
func (m *Memory) Get(id zid.ID) (term.Term, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.data[id]
	return t, ok
}
