package boolidx

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// INVERTED INDEX
// ═══════════════════════════════════════════════════════════════════════════════
// The four indexes built over a Corpus (§4.3): the primary dictionary (token →
// Term), the reverse per-document postings, the phonetic (Soundex) index, and
// the permuterm wildcard index. Built once per corpus; read-only afterward —
// queries run concurrently against the same *InvertedIndex with no further
// synchronization needed.
// ═══════════════════════════════════════════════════════════════════════════════

// BuildConfig controls one index build.
type BuildConfig struct {
	Normalizer       NormalizerConfig
	ProgressInterval time.Duration // 0 disables progress logging
}

// DefaultBuildConfig matches DefaultNormalizerConfig with a 2s progress tick.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Normalizer:       DefaultNormalizerConfig(),
		ProgressInterval: 2 * time.Second,
	}
}

// InvertedIndex is the immutable, queryable result of a corpus build.
type InvertedIndex struct {
	mu sync.Mutex // held only during the build below; queries never write

	corpus *Corpus
	arena  *PostingArena

	dictionary    map[string]Term
	postingsByDoc map[DocumentID][]PostingRef
	phonetic      map[string][]string // soundex code -> dictionary tokens
	permuterm     *PermutermIndex

	totalTerms int64 // sum of cf (positional occurrences) across the dictionary
	stemmer    StemmerKind
}

// BuildIndex runs the full build protocol (§4.3) over corpus: per-document
// normalization in parallel, term-merge aggregation into the dictionary,
// then the auxiliary phonetic and permuterm passes.
func BuildIndex(corpus *Corpus, cfg BuildConfig) *InvertedIndex {
	idx := &InvertedIndex{
		corpus:        corpus,
		arena:         NewPostingArena(),
		dictionary:    make(map[string]Term),
		postingsByDoc: make(map[DocumentID][]PostingRef),
		phonetic:      make(map[string][]string),
		stemmer:       cfg.Normalizer.StemmerKind,
	}

	var reporter *ProgressReporter
	if cfg.ProgressInterval > 0 {
		reporter = NewProgressReporter(corpus.Size(), cfg.ProgressInterval)
		reporter.Start()
		defer reporter.Stop()
	}

	n := newNormalizer(cfg.Normalizer)

	type docResult struct {
		id       DocumentID
		postings map[string][]int
	}

	docs := corpus.Documents()
	results := make(chan docResult, len(docs))

	var unstemmedMu sync.Mutex
	unstemmed := make(map[string]struct{})

	var wg sync.WaitGroup
	for _, entry := range docs {
		if len(entry.Document.Content) == 0 {
			continue
		}
		wg.Add(1)
		go func(id DocumentID, doc Document) {
			defer wg.Done()
			local := make(map[string]struct{})
			postings := n.Normalize(doc, local)
			unstemmedMu.Lock()
			for w := range local {
				unstemmed[w] = struct{}{}
			}
			unstemmedMu.Unlock()
			if reporter != nil {
				reporter.Increment()
			}
			results <- docResult{id: id, postings: postings}
		}(entry.ID, entry.Document)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Step 1-3: build postings, singleton terms, merge into the dictionary.
	// The goroutines feeding `results` only normalize; this loop alone writes
	// the arena and dictionary, and holds idx.mu around each insertion, with
	// term-merge as the merge operator (§5).
	for r := range results {
		for token, positions := range r.postings {
			posting := NewPosting(r.id, positions)

			idx.mu.Lock()
			ref := idx.arena.Add(posting)
			idx.postingsByDoc[r.id] = append(idx.postingsByDoc[r.id], ref)
			singleton := NewSingletonTerm(token, ref, idx.arena)
			if existing, ok := idx.dictionary[token]; ok {
				merged, err := MergeTerms(existing, singleton, idx.arena)
				if err != nil {
					// Tokens are guaranteed equal by the map key; a mismatch
					// here would be a programmer error in term construction.
					panic(err)
				}
				idx.dictionary[token] = merged
			} else {
				idx.dictionary[token] = singleton
			}
			idx.mu.Unlock()
		}
	}

	// Step 4: phonetic index.
	for token := range idx.dictionary {
		code := Soundex(token)
		idx.phonetic[code] = append(idx.phonetic[code], token)
	}
	for code := range idx.phonetic {
		sort.Strings(idx.phonetic[code])
	}

	// Step 5: permuterm index over stemmed dictionary keys ∪ unstemmed tokens.
	stemmedTokens := make([]string, 0, len(idx.dictionary))
	for token, term := range idx.dictionary {
		stemmedTokens = append(stemmedTokens, token)
		for i := 0; i < term.Postings.Len(); i++ {
			idx.totalTerms += int64(len(idx.arena.Get(term.Postings.At(i)).Positions))
		}
	}
	idx.permuterm = BuildPermutermIndex(stemmedTokens, unstemmed, n.stemmer)

	return idx
}

// Dictionary returns every indexed token, sorted.
func (idx *InvertedIndex) Dictionary() []string {
	tokens := make([]string, 0, len(idx.dictionary))
	for t := range idx.dictionary {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// DictionaryAboveDF returns tokens whose posting-list length (document
// frequency) strictly exceeds threshold.
func (idx *InvertedIndex) DictionaryAboveDF(threshold int) []string {
	var out []string
	for token, term := range idx.dictionary {
		if term.DocumentFrequency() > threshold {
			out = append(out, token)
		}
	}
	sort.Strings(out)
	return out
}

// postingList resolves a term's PostingRef skip list into Posting values,
// sorted by document identifier (they already are, by construction).
func (idx *InvertedIndex) postingList(token string) []Posting {
	term, ok := idx.dictionary[token]
	if !ok || term.Postings == nil {
		return nil
	}
	out := make([]Posting, term.Postings.Len())
	for i := range out {
		out[i] = idx.arena.Get(term.Postings.At(i))
	}
	return out
}

// PostingList returns the posting list for token, honoring the wildcard rule
// when token contains '*'. Returns an empty list on a miss.
func (idx *InvertedIndex) PostingList(token string) []Posting {
	if !containsWildcard(token) {
		return idx.postingList(token)
	}
	candidates := idx.permuterm.ResolveWildcard(token)
	seen := make(map[DocumentID]Posting)
	for _, c := range candidates {
		for _, p := range idx.postingList(c) {
			// A document can match more than one expanded candidate; only
			// document identity is well-defined across distinct terms, so
			// the first posting seen for a document stands for it here.
			if _, ok := seen[p.DocID]; !ok {
				seen[p.DocID] = p
			}
		}
	}
	out := make([]Posting, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DocID < out[j].DocID })
	return out
}

func containsWildcard(token string) bool {
	for i := 0; i < len(token); i++ {
		if token[i] == '*' {
			return true
		}
	}
	return false
}

// PostingsByDoc returns every posting referring to doc, across all tokens.
func (idx *InvertedIndex) PostingsByDoc(doc DocumentID) []Posting {
	refs := idx.postingsByDoc[doc]
	out := make([]Posting, len(refs))
	for i, ref := range refs {
		out[i] = idx.arena.Get(ref)
	}
	return out
}

// AllDocIDs returns, as a Roaring bitmap, every document identifier that has
// at least one posting.
func (idx *InvertedIndex) AllDocIDs() *roaring.Bitmap {
	bm := roaring.New()
	for id := range idx.postingsByDoc {
		bm.Add(uint32(id))
	}
	return bm
}

// CollectionFrequency returns cf(token): total positional occurrences across
// the corpus.
func (idx *InvertedIndex) CollectionFrequency(token string) int {
	term, ok := idx.dictionary[token]
	if !ok {
		return 0
	}
	total := 0
	for i := 0; i < term.Postings.Len(); i++ {
		total += len(idx.arena.Get(term.Postings.At(i)).Positions)
	}
	return total
}

// DF returns df(token): the number of postings (documents) for token.
func (idx *InvertedIndex) DF(token string) int {
	term, ok := idx.dictionary[token]
	if !ok {
		return 0
	}
	return term.DocumentFrequency()
}

// AvgDF returns the mean document frequency across the dictionary.
func (idx *InvertedIndex) AvgDF() float64 {
	if len(idx.dictionary) == 0 {
		return 0
	}
	total := 0
	for _, term := range idx.dictionary {
		total += term.DocumentFrequency()
	}
	return float64(total) / float64(len(idx.dictionary))
}

// IDF returns idf(token, n) = log(n / df(token)); +Inf if the token is absent.
func (idx *InvertedIndex) IDF(token string, n int) float64 {
	df := idx.DF(token)
	if df == 0 {
		return math.Inf(1)
	}
	return math.Log(float64(n) / float64(df))
}

// DictionaryMatchesSoundex returns dictionary tokens whose Soundex code
// equals that of word.
func (idx *InvertedIndex) DictionaryMatchesSoundex(word string) []string {
	code := Soundex(word)
	matches := idx.phonetic[code]
	out := make([]string, len(matches))
	copy(out, matches)
	return out
}

// Corpus returns the corpus this index was built over.
func (idx *InvertedIndex) Corpus() *Corpus { return idx.corpus }

// TotalTerms returns the total number of positional occurrences recorded
// across the whole dictionary.
func (idx *InvertedIndex) TotalTerms() int64 { return idx.totalTerms }
