package boolidx

import (
	"sort"
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// EVALUATOR TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func docTitles(t *testing.T, corpus *Corpus, postings []Posting) []string {
	t.Helper()
	var titles []string
	for _, p := range postings {
		doc, ok := corpus.Get(p.DocID)
		if !ok {
			t.Fatalf("no document for id %v", p.DocID)
		}
		titles = append(titles, doc.Title)
	}
	sort.Strings(titles)
	return titles
}

func evalQuery(t *testing.T, idx *InvertedIndex, corpus *Corpus, query string) []string {
	t.Helper()
	expr := ParseQuery(query)
	postings := Evaluate(expr, idx, NormalizerConfig{RemoveStopWords: true, Language: English, StemmerKind: NoStemming})
	return docTitles(t, corpus, postings)
}

func TestEvaluateValueLeafCatScenario(t *testing.T) {
	idx, corpus := setupTestIndex(t)
	got := evalQuery(t, idx, corpus, "cat")
	want := []string{"D1"}
	assertStringSliceEqual(t, got, want)
}

func TestEvaluateAndScenario(t *testing.T) {
	idx, corpus := setupTestIndex(t)
	got := evalQuery(t, idx, corpus, "cat & dog")
	assertStringSliceEqual(t, got, nil)
}

func TestEvaluateOrScenario(t *testing.T) {
	idx, corpus := setupTestIndex(t)
	got := evalQuery(t, idx, corpus, "cat | dog")
	assertStringSliceEqual(t, got, []string{"D1", "D2"})
}

func TestEvaluateNotScenario(t *testing.T) {
	idx, corpus := setupTestIndex(t)
	got := evalQuery(t, idx, corpus, "! cat")
	assertStringSliceEqual(t, got, []string{"D2", "D3"})
}

func TestEvaluatePhraseScenario(t *testing.T) {
	idx, corpus := setupTestIndex(t)
	got := evalQuery(t, idx, corpus, `"cat is"`)
	assertStringSliceEqual(t, got, []string{"D1"})
}

func TestEvaluateWildcardScenario(t *testing.T) {
	idx, corpus := setupTestIndex(t)
	got := evalQuery(t, idx, corpus, "ca*")
	assertStringSliceEqual(t, got, []string{"D1", "D3"})
}

func TestEvaluateAndIntersectsDocIDs(t *testing.T) {
	idx, corpus := setupTestIndex(t)
	_ = corpus
	a := Evaluate(ParseQuery("cat"), idx, NormalizerConfig{RemoveStopWords: true, Language: English})
	b := Evaluate(ParseQuery("car"), idx, NormalizerConfig{RemoveStopWords: true, Language: English})
	and := Evaluate(ParseQuery("cat & car"), idx, NormalizerConfig{RemoveStopWords: true, Language: English})

	wantDocs := intersectDocIDs(DocIDs(a), DocIDs(b))
	if !equalDocIDs(DocIDs(and), wantDocs) {
		t.Errorf("AND docIDs = %v, want intersection %v", DocIDs(and), wantDocs)
	}
}

func TestEvaluateDeMorgan(t *testing.T) {
	idx, _ := setupTestIndex(t)
	cfg := NormalizerConfig{RemoveStopWords: true, Language: English}

	notAnd := Evaluate(ParseQuery("!(cat & dog)"), idx, cfg)
	notA := Evaluate(ParseQuery("! cat"), idx, cfg)
	notB := Evaluate(ParseQuery("! dog"), idx, cfg)
	union := Evaluate(ParseQuery("(! cat) | (! dog)"), idx, cfg)
	_ = notA
	_ = notB

	if !equalDocIDs(DocIDs(notAnd), DocIDs(union)) {
		t.Errorf("NOT(a AND b) docIDs = %v, want %v (De Morgan)", DocIDs(notAnd), DocIDs(union))
	}
}

func TestEvaluatePhraseDistanceMatchesNonFirstPositionPair(t *testing.T) {
	// "a b x x x b": a@0, b@{1,5}. Only the second "b" is 5 positions after
	// "a", so the match only exists at the non-first pair of the two-pointer
	// sweep (§9 phrase-proximity predicate).
	corpus, err := NewCorpus([]Document{NewDocument("D1", "a b x x x b")})
	if err != nil {
		t.Fatalf("NewCorpus: %v", err)
	}
	cfg := BuildConfig{Normalizer: NormalizerConfig{Language: English, StemmerKind: NoStemming}}
	idx := BuildIndex(corpus, cfg)

	got := docTitles(t, corpus, Evaluate(ParseQuery(`"a \d5 b"`), idx, cfg.Normalizer))
	assertStringSliceEqual(t, got, []string{"D1"})
}

func TestEvaluatePhraseDistanceNoMatchWhenDistanceUnsatisfiable(t *testing.T) {
	corpus, err := NewCorpus([]Document{NewDocument("D1", "a b x x x b")})
	if err != nil {
		t.Fatalf("NewCorpus: %v", err)
	}
	cfg := BuildConfig{Normalizer: NormalizerConfig{Language: English, StemmerKind: NoStemming}}
	idx := BuildIndex(corpus, cfg)

	got := docTitles(t, corpus, Evaluate(ParseQuery(`"a \d3 b"`), idx, cfg.Normalizer))
	assertStringSliceEqual(t, got, nil)
}

func TestEvaluateNilExpressionYieldsNoResults(t *testing.T) {
	idx, _ := setupTestIndex(t)
	got := Evaluate(nil, idx, DefaultNormalizerConfig())
	if len(got) != 0 {
		t.Fatalf("Evaluate(nil) = %v, want empty", got)
	}
}

func assertStringSliceEqual(t *testing.T, got, want []string) {
	t.Helper()
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func intersectDocIDs(a, b []DocumentID) []DocumentID {
	set := make(map[DocumentID]bool)
	for _, id := range a {
		set[id] = true
	}
	var out []DocumentID
	for _, id := range b {
		if set[id] {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func equalDocIDs(a, b []DocumentID) bool {
	if len(a) != len(b) {
		return false
	}
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
