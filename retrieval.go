package boolidx

// ═══════════════════════════════════════════════════════════════════════════════
// RETRIEVAL FACADE
// ═══════════════════════════════════════════════════════════════════════════════
// BooleanExpression is the builder clients assemble a query against: set a
// value or phrase leaf, combine expressions with And/Or/Not, or hand it a raw
// query string to parse. It enforces the construction state machine (§4.7)
// so a half-built expression can't be evaluated, and an already-aggregated
// one can't be mistaken for a fresh leaf.
// ═══════════════════════════════════════════════════════════════════════════════

// BuilderState tracks what shape of expression a BooleanExpression currently
// holds.
type BuilderState int

const (
	StateNew BuilderState = iota
	StateValueSet
	StatePhraseSet
	StateAggregated
)

// defaultMaxCorrectionRounds bounds how many widening rounds
// SpellingCorrection drives before giving up on a query that still returns
// nothing.
const defaultMaxCorrectionRounds = 3

// BooleanExpression builds and evaluates one query against an index.
type BooleanExpression struct {
	idx   *InvertedIndex
	cfg   NormalizerConfig
	state BuilderState
	expr  *Expr
	limit int

	correctionEnabled         bool
	correctionPhonetic        bool
	correctionUseEditDistance bool
	maxCorrectionRounds       int
}

// CreateExpression starts a new, empty builder over idx. cfg must match the
// NormalizerConfig idx was built with, so query words land on the same
// dictionary keys the build normalized documents into.
func CreateExpression(idx *InvertedIndex, cfg NormalizerConfig) *BooleanExpression {
	return &BooleanExpression{
		idx:                 idx,
		cfg:                 cfg,
		maxCorrectionRounds: defaultMaxCorrectionRounds,
	}
}

func (b *BooleanExpression) requireState(want BuilderState) error {
	if b.state != want {
		return ErrIllegalState
	}
	return nil
}

func (b *BooleanExpression) requireSet() error {
	if b.state == StateNew {
		return ErrIllegalState
	}
	return nil
}

// SetValue installs a single-word leaf. Only legal from the NEW state.
func (b *BooleanExpression) SetValue(word string) error {
	if err := b.requireState(StateNew); err != nil {
		return err
	}
	b.expr = NewValue(word)
	b.state = StateValueSet
	return nil
}

// SetPhrase installs a phrase leaf. Only legal from the NEW state.
func (b *BooleanExpression) SetPhrase(words []string, distances []int) error {
	if err := b.requireState(StateNew); err != nil {
		return err
	}
	b.expr = NewPhrase(words, distances)
	b.state = StatePhraseSet
	return nil
}

// And combines b with other under AND. Both must already hold an expression.
func (b *BooleanExpression) And(other *BooleanExpression) error {
	if err := b.requireSet(); err != nil {
		return err
	}
	if other == nil || other.expr == nil {
		return ErrIllegalState
	}
	b.expr = NewBinary(And, b.expr, other.expr)
	b.state = StateAggregated
	return nil
}

// Or combines b with other under OR. Both must already hold an expression.
func (b *BooleanExpression) Or(other *BooleanExpression) error {
	if err := b.requireSet(); err != nil {
		return err
	}
	if other == nil || other.expr == nil {
		return ErrIllegalState
	}
	b.expr = NewBinary(Or, b.expr, other.expr)
	b.state = StateAggregated
	return nil
}

// Not negates b's current expression in place. Negating a negation collapses
// back to IDENTITY (NewUnary already implements NOT ∘ NOT = IDENTITY).
func (b *BooleanExpression) Not() error {
	if err := b.requireSet(); err != nil {
		return err
	}
	b.expr = NewUnary(Not, b.expr)
	b.state = StateAggregated
	return nil
}

// Limit caps the number of postings Evaluate returns. n <= 0 means
// unlimited.
func (b *BooleanExpression) Limit(n int) {
	b.limit = n
}

// ParseQuery replaces b's expression with the parse of query. Only legal
// from the NEW state, since a parsed tree supersedes any leaf/aggregate the
// builder methods would otherwise construct.
func (b *BooleanExpression) ParseQuery(query string) error {
	if err := b.requireState(StateNew); err != nil {
		return err
	}
	expr := ParseQuery(query)
	if expr == nil {
		return ErrInvalidQuery
	}
	b.expr = expr
	b.state = StateAggregated
	return nil
}

// SpellingCorrection enables widening Evaluate's search when the query as
// written returns nothing. phonetic selects the Soundex strategy over edit
// distance; useEditDistance additionally bounds phonetic candidates by edit
// distance (§4.6).
func (b *BooleanExpression) SpellingCorrection(phonetic, useEditDistance bool) {
	b.correctionEnabled = true
	b.correctionPhonetic = phonetic
	b.correctionUseEditDistance = useEditDistance
}

// EditDistanceForCorrection overrides how many widening rounds
// SpellingCorrection drives before it gives up (default
// defaultMaxCorrectionRounds).
func (b *BooleanExpression) EditDistanceForCorrection(maxRounds int) {
	b.maxCorrectionRounds = maxRounds
}

// QueryString renders b's current expression back to surface syntax (§4.7).
func (b *BooleanExpression) QueryString() string {
	return b.expr.String()
}

// Evaluate runs b's expression against its index. If the result is empty and
// SpellingCorrection was enabled, it widens each value leaf into an OR with
// spelling/phonetic candidates and retries, up to maxCorrectionRounds times.
func (b *BooleanExpression) Evaluate() ([]Posting, error) {
	if b.expr == nil {
		return nil, nil
	}
	ctx := &evalCtx{idx: b.idx, qn: newNormalizer(b.cfg)}
	result := ctx.safeEvaluate(b.expr, 0)
	if len(result) > 0 || !b.correctionEnabled {
		return b.applyLimit(result), nil
	}

	// One Corrector per distinct leaf word, reused across every widening
	// round below, so each round's Correct() call widens that corrector's
	// own edit-distance bound instead of starting back over at bound 1
	// (§4.6: "increase the bound on subsequent invocations"). A round that
	// finds no candidates at its current bound doesn't mean a wider bound
	// won't, so the loop keeps going through maxCorrectionRounds rather than
	// stopping at the first unproductive round.
	correctors := make(map[string]*Corrector)
	expr := b.expr
	for round := 0; round < b.maxCorrectionRounds; round++ {
		widened, _ := b.widenLeaves(expr, ctx, correctors)
		expr = widened
		result = ctx.safeEvaluate(expr, 0)
		if len(result) > 0 {
			break
		}
	}
	return b.applyLimit(result), nil
}

// Retrieve is the one-shot convenience path: parse query then evaluate. Only
// legal from the NEW state (see ParseQuery).
func (b *BooleanExpression) Retrieve(query string) ([]Posting, error) {
	if err := b.ParseQuery(query); err != nil {
		return nil, err
	}
	return b.Evaluate()
}

func (b *BooleanExpression) applyLimit(postings []Posting) []Posting {
	if b.limit <= 0 || len(postings) <= b.limit {
		return postings
	}
	return postings[:b.limit]
}

// widenLeaves rewrites every not-yet-corrected value leaf of e into
// Binary(OR, e, Binary(OR, candidate1, candidate2, ...)), per the spelling
// corrector's candidates (§4.6). correctors holds one Corrector per distinct
// leaf word, shared across every widening round so each round's Correct()
// call advances that corrector's bound rather than restarting it. Phrase
// leaves are left untouched: swapping one word would invalidate the
// phrase's recorded distances. Reports whether any leaf actually grew.
func (b *BooleanExpression) widenLeaves(e *Expr, ctx *evalCtx, correctors map[string]*Corrector) (*Expr, bool) {
	if e == nil {
		return nil, false
	}
	switch e.Kind {
	case KindValue:
		return b.widenLeaf(e, ctx, correctors)
	case KindPhrase:
		return e, false
	case KindUnary:
		child, changed := b.widenLeaves(e.Child, ctx, correctors)
		return NewUnary(e.Op, child), changed
	case KindBinary:
		left, lc := b.widenLeaves(e.Left, ctx, correctors)
		right, rc := b.widenLeaves(e.Right, ctx, correctors)
		return NewBinary(e.BinOp, left, right), lc || rc
	default:
		return e, false
	}
}

func (b *BooleanExpression) widenLeaf(e *Expr, ctx *evalCtx, correctors map[string]*Corrector) (*Expr, bool) {
	if e.Corrected {
		return e, false
	}
	word := ctx.normalizeQueryWord(e.Word)
	if word == "" || containsWildcard(word) {
		return e, false
	}

	corrector, ok := correctors[word]
	if !ok {
		corrector = NewCorrector(b.idx, word, b.correctionPhonetic, b.correctionUseEditDistance)
		correctors[word] = corrector
	}
	candidates := corrector.Correct()
	if len(candidates) == 0 {
		return e, false
	}

	var alternatives *Expr
	for _, cand := range candidates {
		leaf := NewValue(cand)
		leaf.Corrected = true
		if alternatives == nil {
			alternatives = leaf
		} else {
			alternatives = NewBinary(Or, alternatives, leaf)
		}
	}
	return NewBinary(Or, e, alternatives), true
}
