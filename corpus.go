package boolidx

import "sort"

// ═══════════════════════════════════════════════════════════════════════════════
// CORPUS
// ═══════════════════════════════════════════════════════════════════════════════
// A Corpus is a mapping from DocumentID to Document, built once from a finite
// collection (a "corpus producer", §6). After construction documents are never
// added or removed — the corpus is an immutable snapshot for the lifetime of
// any index built over it.
// ═══════════════════════════════════════════════════════════════════════════════

// Corpus holds the finite, immutable set of documents an index is built over.
type Corpus struct {
	ids  *DocumentIDGenerator
	docs map[DocumentID]Document
}

// NewCorpus builds a Corpus from a corpus producer: an iterable of Documents.
// Each document is assigned the next identifier from a generator scoped to
// this build. NoMoreIdentifiers is fatal and aborts the build, since a
// corpus whose identifier space is exhausted cannot guarantee uniqueness.
func NewCorpus(documents []Document) (*Corpus, error) {
	c := &Corpus{
		ids:  NewDocumentIDGenerator(),
		docs: make(map[DocumentID]Document, len(documents)),
	}
	for _, d := range documents {
		id, err := c.ids.Next()
		if err != nil {
			return nil, err
		}
		c.docs[id] = d
	}
	return c, nil
}

// Get returns the document with the given identifier.
func (c *Corpus) Get(id DocumentID) (Document, bool) {
	d, ok := c.docs[id]
	return d, ok
}

// Size returns the number of documents in the corpus.
func (c *Corpus) Size() int { return len(c.docs) }

// Counter returns the document-identifier generator backing this corpus, so
// callers (persistence.go) can snapshot its current value.
func (c *Corpus) Counter() *DocumentIDGenerator { return c.ids }

// DocumentIDs returns all document identifiers in ascending order.
func (c *Corpus) DocumentIDs() []DocumentID {
	ids := make([]DocumentID, 0, len(c.docs))
	for id := range c.docs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Documents returns the full (id, document) set, sorted by identifier.
func (c *Corpus) Documents() []struct {
	ID       DocumentID
	Document Document
} {
	ids := c.DocumentIDs()
	out := make([]struct {
		ID       DocumentID
		Document Document
	}, len(ids))
	for i, id := range ids {
		out[i] = struct {
			ID       DocumentID
			Document Document
		}{id, c.docs[id]}
	}
	return out
}
