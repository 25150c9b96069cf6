package boolidx

import (
	"sort"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PERMUTERM INDEX
// ═══════════════════════════════════════════════════════════════════════════════
// Serves wildcard queries (§4.3). Every indexed token — stemmed dictionary keys
// and the unstemmed tokens collected during normalization — contributes every
// rotation of token∥EndOfWord, mapped back to the token's stemmed form. A
// wildcard query is resolved by folding it to a single '*', rotating it so the
// '*' lands at the right end, and prefix-searching the rotations.
//
// Design Notes (index backing-store choice): the source allows swapping the
// dictionary's backing map for a prefix-tree variant. Rather than stand up a
// second data structure for this index, a single sorted string slice searched
// with sort.Search already supports both point lookup and prefix range
// queries, so it serves the permuterm without extra machinery.
//
// Open question resolved (§9): candidates surfaced by a rotation match are
// confirmed against the wildcard pattern using the surface word the rotation
// was built from, and reported as the stemmed form that entry maps to — so
// no separate re-stemming step is needed at confirmation time.
// ═══════════════════════════════════════════════════════════════════════════════

// EndOfWord is the rotation boundary marker. It must never collide with the
// query-word alphabet (letters, digits, underscore).
const EndOfWord = '\x00'

// PermutermIndex is a sorted (rotation, stemmed-original) table.
type PermutermIndex struct {
	rotations []string
	targets   []string
}

// BuildPermutermIndex constructs the permuterm table from the union of the
// stemmed dictionary's tokens and the unstemmed tokens collected during
// normalization (§4.3 build step 5). Every rotation of an unstemmed surface
// token is inserted pointing at that token's stem, so a wildcard match on a
// surface form still resolves to a postable dictionary key.
func BuildPermutermIndex(stemmedTokens []string, unstemmedTokens map[string]struct{}, stemmer Stemmer) *PermutermIndex {
	entries := make(map[string]string)

	addRotations := func(word, target string) {
		full := word + string(rune(EndOfWord))
		n := len(full)
		for i := 0; i < n; i++ {
			rotation := full[i:] + full[:i]
			entries[rotation] = target
		}
	}

	for _, t := range stemmedTokens {
		addRotations(t, t)
	}
	for surface := range unstemmedTokens {
		stem := surface
		if stemmer != nil {
			stem = stemmer.Stem(surface)
		}
		if stem == "" {
			continue
		}
		addRotations(surface, stem)
	}

	rotations := make([]string, 0, len(entries))
	for r := range entries {
		rotations = append(rotations, r)
	}
	sort.Strings(rotations)

	targets := make([]string, len(rotations))
	for i, r := range rotations {
		targets[i] = entries[r]
	}

	return &PermutermIndex{rotations: rotations, targets: targets}
}

// Len returns the number of rotation entries.
func (p *PermutermIndex) Len() int { return len(p.rotations) }

// PrefixCandidates returns the distinct target tokens whose rotation entry
// starts with prefix.
func (p *PermutermIndex) PrefixCandidates(prefix string) []string {
	lo := sort.Search(len(p.rotations), func(i int) bool { return p.rotations[i] >= prefix })
	seen := make(map[string]bool)
	var out []string
	for i := lo; i < len(p.rotations) && strings.HasPrefix(p.rotations[i], prefix); i++ {
		t := p.targets[i]
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// foldWildcard collapses every character between the first and last '*'
// (inclusive) of pattern into a single '*'. A pattern with zero or one '*' is
// returned unchanged.
func foldWildcard(pattern string) string {
	first := strings.IndexByte(pattern, '*')
	last := strings.LastIndexByte(pattern, '*')
	if first == -1 || first == last {
		return pattern
	}
	return pattern[:first] + "*" + pattern[last+1:]
}

// rotateForWildcard rotates pattern∥EndOfWord so that the single '*' sits at
// the right end, then drops it, returning the resulting prefix to search the
// permuterm rotations with.
func rotateForWildcard(pattern string) string {
	full := pattern + string(rune(EndOfWord))
	star := strings.IndexByte(full, '*')
	if star == -1 {
		return full
	}
	return full[star+1:] + full[:star]
}

// matchesWildcard reports whether word is compatible with foldedPattern (at
// most one '*', already folded).
func matchesWildcard(word, foldedPattern string) bool {
	parts := strings.SplitN(foldedPattern, "*", 2)
	if len(parts) == 1 {
		return word == foldedPattern
	}
	prefix, suffix := parts[0], parts[1]
	if len(word) < len(prefix)+len(suffix) {
		return false
	}
	return strings.HasPrefix(word, prefix) && strings.HasSuffix(word, suffix)
}

// ResolveWildcard expands a token containing '*' into the set of stemmed
// dictionary tokens compatible with it (§4.3 wildcard resolution). Callers
// are expected to check for the presence of '*' before calling this — a
// pattern without one should go through a direct dictionary lookup instead.
func (p *PermutermIndex) ResolveWildcard(pattern string) []string {
	folded := foldWildcard(pattern)
	prefix := rotateForWildcard(folded)
	lo := sort.Search(len(p.rotations), func(i int) bool { return p.rotations[i] >= prefix })

	seen := make(map[string]bool)
	confirmed := make([]string, 0)
	for i := lo; i < len(p.rotations) && strings.HasPrefix(p.rotations[i], prefix); i++ {
		// Un-rotate back to the surface word: its stem may be shorter than
		// the pattern (running -> run for runn*).
		r := p.rotations[i]
		eow := strings.IndexByte(r, EndOfWord)
		surface := r[eow+1:] + r[:eow]
		if t := p.targets[i]; matchesWildcard(surface, folded) && !seen[t] {
			seen[t] = true
			confirmed = append(confirmed, t)
		}
	}
	return confirmed
}
