package boolidx

import (
	snowballeng "github.com/kljensen/snowball/english"
)

// ═══════════════════════════════════════════════════════════════════════════════
// STEMMER
// ═══════════════════════════════════════════════════════════════════════════════
// Stemming is configurable (§4.2, §6: app.stemmer). The index always keeps both
// the stemmed and the unstemmed token around — the unstemmed side feeds the
// permuterm index so wildcard queries are not tripped up by stemming.
// ═══════════════════════════════════════════════════════════════════════════════

// StemmerKind names a configured stemmer selection.
type StemmerKind string

const (
	NoStemming     StemmerKind = "NO_STEMMING"
	PorterStemming StemmerKind = "PORTER"
)

// Stemmer reduces a normalized token to its stem.
type Stemmer interface {
	Stem(token string) string
}

// NoStemmer returns the token unchanged.
type NoStemmer struct{}

func (NoStemmer) Stem(token string) string { return token }

// PorterStemmer wraps the Snowball/Porter2 English stemmer.
type PorterStemmer struct{}

func (PorterStemmer) Stem(token string) string {
	return snowballeng.Stem(token, false)
}

// ResolveStemmer maps a configured StemmerKind to a Stemmer instance. An
// unrecognized kind falls back to NoStemmer rather than failing configuration
// load (§6: unknown stemmer values degrade gracefully to NO_STEMMING).
func ResolveStemmer(kind StemmerKind) Stemmer {
	switch kind {
	case PorterStemming:
		return PorterStemmer{}
	default:
		return NoStemmer{}
	}
}
