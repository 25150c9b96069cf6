package boolidx

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// STEMMER TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestNoStemmerIsIdentity(t *testing.T) {
	var s Stemmer = NoStemmer{}
	for _, tok := range []string{"running", "whales", "fish"} {
		if got := s.Stem(tok); got != tok {
			t.Errorf("NoStemmer.Stem(%q) = %q, want %q", tok, got, tok)
		}
	}
}

func TestPorterStemmerReducesInflections(t *testing.T) {
	var s Stemmer = PorterStemmer{}
	cases := map[string]string{
		"running": "run",
		"whales":  "whale",
	}
	for input, want := range cases {
		if got := s.Stem(input); got != want {
			t.Errorf("PorterStemmer.Stem(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestResolveStemmer(t *testing.T) {
	if _, ok := ResolveStemmer(PorterStemming).(PorterStemmer); !ok {
		t.Error("ResolveStemmer(PorterStemming) did not return a PorterStemmer")
	}
	if _, ok := ResolveStemmer(NoStemming).(NoStemmer); !ok {
		t.Error("ResolveStemmer(NoStemming) did not return a NoStemmer")
	}
	if _, ok := ResolveStemmer(StemmerKind("bogus")).(NoStemmer); !ok {
		t.Error("ResolveStemmer(unknown) should fall back to NoStemmer")
	}
}
