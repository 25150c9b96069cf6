package boolidx

import (
	"sort"
	"strings"
	"unicode"
)

// ═══════════════════════════════════════════════════════════════════════════════
// NORMALIZER
// ═══════════════════════════════════════════════════════════════════════════════
// Turns document text into a token → sorted positions map, the input the index
// builder needs per document (§4.2). Positions count tokens, not characters,
// and advance on every raw token regardless of whether that token survives the
// pipeline, so surviving positions still reflect true occurrence order.
// ═══════════════════════════════════════════════════════════════════════════════

// NormalizerConfig controls the per-token pipeline.
type NormalizerConfig struct {
	RemoveStopWords bool
	Language        Language
	StemmerKind     StemmerKind
	StopwordDataset StopwordDataset // nil uses BuiltinStopwordDataset
}

// DefaultNormalizerConfig matches the system default: English, stop words
// removed, no stemming.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		RemoveStopWords: true,
		Language:        English,
		StemmerKind:     NoStemming,
	}
}

// normalizer holds the resolved dependencies (stop-word set, stemmer) for one
// normalization run, so they are not re-resolved per document during a build.
type normalizer struct {
	cfg      NormalizerConfig
	stop     map[string]struct{}
	stemmer  Stemmer
}

// newNormalizer resolves cfg's stop-word dataset and stemmer once.
func newNormalizer(cfg NormalizerConfig) *normalizer {
	return &normalizer{
		cfg:     cfg,
		stop:    LoadStopwords(cfg.StopwordDataset, cfg.Language),
		stemmer: ResolveStemmer(cfg.StemmerKind),
	}
}

// tokenizeRaw splits text on anything outside the word alphabet
// (letters, digits, underscore), the tokenizer's notion of a raw word before
// the per-token pipeline runs.
func tokenizeRaw(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// stripPunctuation trims any leading/trailing non-word runes a raw token may
// still carry. tokenizeRaw already splits on these, so this is a defensive
// no-op in the common case and only matters for tokens arriving pre-split
// (e.g. directly from the query parser).
func stripPunctuation(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// Normalize runs the §4.2 pipeline over doc's text, returning a map from
// normalized (stemmed) token to its sorted positions in doc. Every bare,
// unstemmed token that survives steps 1–4 is recorded into unstemmed — a
// side collector the caller accumulates across the whole corpus build for
// permuterm coverage.
func (n *normalizer) Normalize(doc Document, unstemmed map[string]struct{}) map[string][]int {
	postings := make(map[string][]int)
	pos := 0
	for _, raw := range tokenizeRaw(doc.Text()) {
		word := stripPunctuation(strings.ToLower(raw))
		if word == "" {
			pos++
			continue
		}
		if n.cfg.RemoveStopWords {
			if _, isStop := n.stop[word]; isStop {
				pos++
				continue
			}
		}
		if unstemmed != nil {
			unstemmed[word] = struct{}{}
		}
		stem := word
		if n.stemmer != nil {
			stem = n.stemmer.Stem(word)
		}
		if stem == "" {
			pos++
			continue
		}
		postings[stem] = append(postings[stem], pos)
		pos++
	}
	for token := range postings {
		sort.Ints(postings[token])
	}
	return postings
}

// Normalize is the package-level convenience entry point: build a normalizer
// from cfg and run it once. Prefer newNormalizer directly when normalizing
// many documents under the same configuration, to avoid re-resolving the
// stop-word set and stemmer per call.
func Normalize(doc Document, cfg NormalizerConfig, unstemmed map[string]struct{}) map[string][]int {
	return newNormalizer(cfg).Normalize(doc, unstemmed)
}
