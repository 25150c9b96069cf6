package boolidx

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY EVALUATOR
// ═══════════════════════════════════════════════════════════════════════════════
// Walks an Expr tree against an InvertedIndex and produces a posting list
// (§4.5). Recursion is bounded by maxEvalDepth; a branch that exceeds it is
// recovered in place and contributes no postings rather than aborting the
// whole evaluation, mirroring the source's stack-overflow catch (§7, §9).
//
// Open question resolved (§9): NOT cannot meaningfully reuse per-term
// position data — the documents it admits are defined purely by absence from
// the child's result, not by any one term's occurrences. Its output is one
// synthetic, position-free Posting per admitted document identifier, so every
// operand flowing through AND/OR keeps the "at most one posting per document"
// invariant the skip-list set operations assume.
// ═══════════════════════════════════════════════════════════════════════════════

// maxEvalDepth bounds expression recursion (§9: deep recursion).
const maxEvalDepth = 500

// evalCtx carries the per-evaluation dependencies: the index to query, a
// query-side normalizer (so query words land on the same dictionary keys the
// build normalized documents into), and an optional corrector to stop on
// catastrophic recursion.
type evalCtx struct {
	idx       *InvertedIndex
	qn        *normalizer
	corrector *Corrector
}

// Evaluate runs a standalone evaluation of e against idx, normalizing query
// words per cfg. Most callers go through a BooleanExpression (retrieval.go),
// which reuses one evalCtx across its correction rounds. Neither path attaches
// a corrector to the evalCtx, so the corrector-stop step in safeEvaluate is
// not reached from either of them.
func Evaluate(e *Expr, idx *InvertedIndex, cfg NormalizerConfig) []Posting {
	ctx := &evalCtx{idx: idx, qn: newNormalizer(cfg)}
	return ctx.safeEvaluate(e, 0)
}

func (ctx *evalCtx) safeEvaluate(e *Expr, depth int) (result []Posting) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("evaluation stopped early, returning partial result", "depth", depth, "error", r)
			if ctx.corrector != nil {
				ctx.corrector.Stop()
			}
			result = nil
		}
	}()
	return ctx.evaluateNode(e, depth)
}

func (ctx *evalCtx) evaluateNode(e *Expr, depth int) []Posting {
	if depth > maxEvalDepth {
		panic(ErrStackExhaustion)
	}
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindValue:
		return ctx.evaluateValue(e)
	case KindPhrase:
		return ctx.evaluatePhrase(e)
	case KindUnary:
		return ctx.evaluateUnary(e, depth)
	case KindBinary:
		return ctx.evaluateBinary(e, depth)
	default:
		panic(fmt.Sprintf("unknown expression kind %d", e.Kind))
	}
}

// normalizeQueryWord maps a raw query word to the form it would have taken
// in the dictionary had it been indexed: lower-cased, punctuation-stripped,
// dropped to "" if it is a stop word and stop-word removal is enabled,
// stemmed. Wildcard tokens are only lower-cased — stemming or stripping
// would corrupt the '*' the permuterm resolution needs intact.
func (ctx *evalCtx) normalizeQueryWord(word string) string {
	w := strings.ToLower(word)
	if containsWildcard(w) {
		return w
	}
	w = stripPunctuation(w)
	if w == "" {
		return w
	}
	if ctx.qn.cfg.RemoveStopWords {
		if _, isStop := ctx.qn.stop[w]; isStop {
			return ""
		}
	}
	if ctx.qn.stemmer == nil {
		return w
	}
	return ctx.qn.stemmer.Stem(w)
}

func (ctx *evalCtx) evaluateValue(e *Expr) []Posting {
	word := ctx.normalizeQueryWord(e.Word)
	if word == "" {
		return nil
	}
	return ctx.idx.PostingList(word)
}

// evaluatePhrase implements exact-phrase and proximity matching (§4.5).
func (ctx *evalCtx) evaluatePhrase(e *Expr) []Posting {
	words := make([]string, 0, len(e.Words))
	for _, w := range e.Words {
		nw := ctx.normalizeQueryWord(w)
		if nw != "" {
			words = append(words, nw)
		}
	}
	// NormalizationDropped (§7): one or more words vanished under query-side
	// normalization, so the phrase can no longer honor its original
	// distances. Degrade to a value leaf on the first surviving word, or to
	// no results if nothing survived.
	if len(words) == 0 {
		return nil
	}
	if len(words) != len(e.Words) {
		slog.Warn("phrase normalization dropped word(s), downgrading to value leaf",
			"original", e.Words, "surviving", words)
		return ctx.idx.PostingList(words[0])
	}
	if len(words) == 1 {
		return ctx.idx.PostingList(words[0])
	}

	cache := make(map[string][]Posting, len(words))
	lookup := func(w string) []Posting {
		if p, ok := cache[w]; ok {
			return p
		}
		p := ctx.idx.PostingList(w)
		cache[w] = p
		return p
	}

	anchor := NewSkipListFromSorted(lookup(words[0]), compareByDocID)
	for k := 1; k < len(words); k++ {
		distance := e.Distances[k-1]
		kList := NewSkipListFromSorted(lookup(words[k]), compareByDocID)
		anchor = IntersectWithPredicate(anchor, kList, phraseDistancePredicate(distance), compareByDocID)
		if anchor.Len() == 0 {
			break
		}
	}
	return anchor.Items()
}

// phraseDistancePredicate builds the biPredicate for IntersectWithPredicate:
// given the anchor word's posting and word k's posting for the same
// document, it holds when some pair of positions (i, j) satisfies
// positions_k[j] - positions_0[i] == distance. A two-pointer sweep over the
// sorted position arrays finds such a pair in one linear pass if one exists,
// by always advancing the smaller of (positions_0[i], positions_k[j] -
// distance) (§9: phrase-proximity predicate) — when diff is too large the
// anchor is too far behind, so advance it forward (i++); when diff is too
// small the anchor has already passed it, so advance the other side instead
// (j++).
func phraseDistancePredicate(distance int) func(anchor, other Posting) bool {
	return func(anchor, other Posting) bool {
		i, j := 0, 0
		for i < len(anchor.Positions) && j < len(other.Positions) {
			diff := other.Positions[j] - anchor.Positions[i]
			switch {
			case diff == distance:
				return true
			case diff > distance:
				i++
			default:
				j++
			}
		}
		return false
	}
}

func (ctx *evalCtx) evaluateUnary(e *Expr, depth int) []Posting {
	if e.Op == Identity {
		return ctx.safeEvaluate(e.Child, depth+1)
	}
	child := ctx.safeEvaluate(e.Child, depth+1)
	excluded := make(map[DocumentID]bool, len(child))
	for _, p := range child {
		excluded[p.DocID] = true
	}
	all := ctx.idx.AllDocIDs().ToArray()
	out := make([]Posting, 0, len(all)-len(excluded))
	for _, u := range all {
		id := DocumentID(u)
		if excluded[id] {
			continue
		}
		out = append(out, Posting{DocID: id})
	}
	return out
}

func (ctx *evalCtx) evaluateBinary(e *Expr, depth int) []Posting {
	left := ctx.safeEvaluate(e.Left, depth+1)
	right := ctx.safeEvaluate(e.Right, depth+1)
	leftSL := NewSkipListFromSorted(left, compareByDocID)
	rightSL := NewSkipListFromSorted(right, compareByDocID)

	var merged *SkipList[Posting]
	switch e.BinOp {
	case And:
		merged = Intersect(leftSL, rightSL, compareByDocID)
	case Or:
		merged = Union(leftSL, rightSL, compareByDocID)
	default:
		panic(fmt.Sprintf("unknown binary operator %d", e.BinOp))
	}
	return merged.Items()
}

// DocIDs extracts the sorted, deduplicated set of document identifiers a
// posting list covers.
func DocIDs(postings []Posting) []DocumentID {
	ids := make([]DocumentID, 0, len(postings))
	for _, p := range postings {
		ids = append(ids, p.DocID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	n := 0
	for i, id := range ids {
		if i > 0 && id == ids[n-1] {
			continue
		}
		ids[n] = id
		n++
	}
	return ids[:n]
}
