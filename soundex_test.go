package boolidx

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// SOUNDEX TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestSoundexKnownCodes(t *testing.T) {
	cases := map[string]string{
		"Robert":  "R163",
		"Rupert":  "R163",
		"Ashcraft": "A261",
		"Tymczak": "T522",
		"Pfister": "P236",
	}
	for input, want := range cases {
		if got := Soundex(input); got != want {
			t.Errorf("Soundex(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSoundexPadsShortWords(t *testing.T) {
	if got := Soundex("Lee"); got != "L000" {
		t.Errorf("Soundex(Lee) = %q, want L000", got)
	}
}

func TestSoundexEmptyInput(t *testing.T) {
	if got := Soundex(""); got != "" {
		t.Errorf("Soundex(\"\") = %q, want empty", got)
	}
	if got := Soundex("123"); got != "" {
		t.Errorf("Soundex(123) = %q, want empty for non-letter input", got)
	}
}

func TestSoundexGroupsSimilarSoundingWords(t *testing.T) {
	if Soundex("whale") != Soundex("wale") {
		t.Errorf("expected whale and wale to share a Soundex code")
	}
}
