package boolidx

// ═══════════════════════════════════════════════════════════════════════════════
// TERM
// ═══════════════════════════════════════════════════════════════════════════════
// A Term pairs a normalized token with the skip list of postings recording
// where it occurs across the corpus. The dictionary never holds two Terms for
// the same token: building the index starts from one singleton Term per
// (token, document) pair and merges them down with MergeTerms.
// ═══════════════════════════════════════════════════════════════════════════════

// Term is a dictionary entry: a token and its posting list.
type Term struct {
	Token    string
	Postings *SkipList[PostingRef]
}

// NewTerm builds a Term from a token and an already-constructed posting list.
func NewTerm(token string, postings *SkipList[PostingRef]) Term {
	return Term{Token: token, Postings: postings}
}

// NewSingletonTerm builds the one-posting Term the index builder creates for
// each (token, document) occurrence before merging terms together.
func NewSingletonTerm(token string, ref PostingRef, arena *PostingArena) Term {
	sl := NewSkipListFromSorted([]PostingRef{ref}, arena.RefComparator())
	return Term{Token: token, Postings: sl}
}

// MergeTerms combines two Terms for the same token into one, unioning their
// posting lists. ErrIncompatibleTerms is returned if the tokens differ — the
// dictionary build never merges across distinct tokens.
func MergeTerms(a, b Term, arena *PostingArena) (Term, error) {
	if a.Token != b.Token {
		return Term{}, ErrIncompatibleTerms
	}
	merged := Union(a.Postings, b.Postings, arena.RefComparator())
	return Term{Token: a.Token, Postings: merged}, nil
}

// DocumentFrequency returns the number of distinct documents this term
// occurs in, i.e. the length of its posting list (postings are already one
// per document by construction).
func (t Term) DocumentFrequency() int {
	if t.Postings == nil {
		return 0
	}
	return t.Postings.Len()
}
