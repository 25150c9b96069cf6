package boolidx

import "time"

// ═══════════════════════════════════════════════════════════════════════════════
// POSTING
// ═══════════════════════════════════════════════════════════════════════════════
// A Posting is an occurrence record: (document identifier, sorted positions at
// which the term occurs in that document, creation timestamp). Equality is by
// (DocID, Positions); natural order is by DocID, ties broken lexicographically
// by the positions slice.
//
// Design Notes (cyclic graphs): a Posting is referenced from both its term's
// posting list and from postings_by_doc. Rather than let two structures share
// mutable pointers into each other, postings live in a PostingArena keyed by a
// small integer id (PostingRef); the dictionary and the reverse index each hold
// only the ref, and ordering dereferences it through the arena. The arena owns
// the postings; everything else borrows.
// ═══════════════════════════════════════════════════════════════════════════════

// Posting is an occurrence of a term in one document.
type Posting struct {
	DocID     DocumentID
	Positions []int // strictly increasing
	CreatedAt time.Time
}

// NewPosting builds a Posting, copying positions to protect the invariant that
// they remain strictly increasing regardless of what the caller does with its
// own slice afterward.
func NewPosting(docID DocumentID, positions []int) Posting {
	p := make([]int, len(positions))
	copy(p, positions)
	return Posting{DocID: docID, Positions: p, CreatedAt: now()}
}

// Equals reports (DocID, Positions) equality.
func (p Posting) Equals(other Posting) bool {
	if p.DocID != other.DocID || len(p.Positions) != len(other.Positions) {
		return false
	}
	for i := range p.Positions {
		if p.Positions[i] != other.Positions[i] {
			return false
		}
	}
	return true
}

// ComparePostings implements the Posting natural order: by DocID, then
// lexicographically by Positions.
func ComparePostings(a, b Posting) int {
	if a.DocID != b.DocID {
		if a.DocID < b.DocID {
			return -1
		}
		return 1
	}
	for i := 0; i < len(a.Positions) && i < len(b.Positions); i++ {
		if a.Positions[i] != b.Positions[i] {
			if a.Positions[i] < b.Positions[i] {
				return -1
			}
			return 1
		}
	}
	return len(a.Positions) - len(b.Positions)
}

// compareByDocID orders postings by document identifier only, ignoring
// positions. Used wherever two posting lists over different tokens need to be
// combined by document identity (AND/OR, phrase adjacency by doc).
func compareByDocID(a, b Posting) int {
	if a.DocID == b.DocID {
		return 0
	}
	if a.DocID < b.DocID {
		return -1
	}
	return 1
}

// PostingRef is a stable small-integer handle into a PostingArena.
type PostingRef int

// PostingArena owns the canonical Posting values; the dictionary and the
// reverse per-document index both hold only PostingRef values into it.
type PostingArena struct {
	postings []Posting
}

// NewPostingArena returns an empty arena.
func NewPostingArena() *PostingArena {
	return &PostingArena{}
}

// Add stores p and returns a stable reference to it.
func (a *PostingArena) Add(p Posting) PostingRef {
	a.postings = append(a.postings, p)
	return PostingRef(len(a.postings) - 1)
}

// Get resolves a reference to its canonical Posting.
func (a *PostingArena) Get(ref PostingRef) Posting {
	return a.postings[ref]
}

// RefComparator returns a Comparator over PostingRef that orders by the
// natural Posting order of the referenced postings, dereferencing through
// this arena.
func (a *PostingArena) RefComparator() Comparator[PostingRef] {
	return func(x, y PostingRef) int {
		return ComparePostings(a.Get(x), a.Get(y))
	}
}

// RefComparatorByDocID is like RefComparator but orders (and equates) by
// document identifier only, ignoring positions — the comparator AND/OR/phrase
// intersection use to combine posting lists of distinct tokens by document
// identity.
func (a *PostingArena) RefComparatorByDocID() Comparator[PostingRef] {
	return func(x, y PostingRef) int {
		return compareByDocID(a.Get(x), a.Get(y))
	}
}

// now is overridden in tests that need deterministic Posting.CreatedAt values.
var now = time.Now
