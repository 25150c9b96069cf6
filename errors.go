package boolidx

import "errors"

// ═══════════════════════════════════════════════════════════════════════════════
// ERROR TAXONOMY
// ═══════════════════════════════════════════════════════════════════════════════
// Build-time errors that compromise corpus identity are fatal and propagate to
// the caller. Runtime query errors are always recovered locally so the engine
// can keep answering subsequent queries.
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// ErrNoMoreIdentifiers is fatal: the document-identifier counter overflowed.
	ErrNoMoreIdentifiers = errors.New("document identifier counter exhausted")

	// ErrIncompatibleTerms is a programmer error: merging terms with different tokens.
	ErrIncompatibleTerms = errors.New("cannot merge terms with different tokens")

	// ErrInvalidQuery marks a query string that failed to parse. Recovered locally.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNormalizationDropped marks a phrase reduced to nothing by normalization.
	ErrNormalizationDropped = errors.New("normalization dropped all phrase words")

	// ErrConfigError marks a missing or malformed configuration property.
	ErrConfigError = errors.New("invalid configuration")

	// ErrStackExhaustion marks recursion depth exceeding the evaluator's hard cap.
	ErrStackExhaustion = errors.New("recursion depth exceeded")

	// ErrIOError marks a failed load of an external resource (e.g. stop-word file).
	ErrIOError = errors.New("resource load failed")

	// ErrNoPostingList names a token with no posting list in the index.
	// InvertedIndex.PostingList reports such a miss as an empty list, not as
	// this error.
	ErrNoPostingList = errors.New("no posting list for token")

	// ErrIllegalState marks an invalid BooleanExpression builder state transition.
	ErrIllegalState = errors.New("illegal expression builder state")
)
