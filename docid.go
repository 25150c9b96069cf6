package boolidx

import (
	"fmt"
	"math"
	"sync/atomic"
)

// ═══════════════════════════════════════════════════════════════════════════════
// DOCUMENT IDENTIFIER
// ═══════════════════════════════════════════════════════════════════════════════
// DocumentID is an opaque wrapper over a non-negative integer, assigned from a
// monotonic counter scoped to a single corpus build. Total order follows the
// underlying integer; identifiers are unique within one corpus build.
// ═══════════════════════════════════════════════════════════════════════════════

// DocumentID identifies a document within a single corpus build.
type DocumentID int

// Less reports whether id comes before other in document-identifier order.
func (id DocumentID) Less(other DocumentID) bool { return id < other }

func (id DocumentID) String() string { return fmt.Sprintf("doc#%d", int(id)) }

// DocumentIDGenerator hands out monotonically increasing identifiers.
//
// Design Notes (global mutable state): the source uses a process-global
// counter; here it is threaded explicitly through corpus construction as a
// generator value with lifecycle scoped to the corpus being built, so tests
// can create independent corpora without resetting shared state.
type DocumentIDGenerator struct {
	next atomic.Int64
}

// NewDocumentIDGenerator returns a generator starting at identifier 0.
func NewDocumentIDGenerator() *DocumentIDGenerator {
	return &DocumentIDGenerator{}
}

// Next returns the next identifier, or ErrNoMoreIdentifiers on overflow.
func (g *DocumentIDGenerator) Next() (DocumentID, error) {
	v := g.next.Add(1) - 1
	if v > math.MaxInt32 {
		return 0, ErrNoMoreIdentifiers
	}
	return DocumentID(v), nil
}

// Current returns the next identifier this generator would hand out, i.e.
// one past the highest identifier already assigned. Persisted alongside an
// index snapshot so a reload can detect a generator that has moved on
// (§6 persisted-state layout).
func (g *DocumentIDGenerator) Current() int64 {
	return g.next.Load()
}
