package boolidx

import "strings"

// ═══════════════════════════════════════════════════════════════════════════════
// SOUNDEX
// ═══════════════════════════════════════════════════════════════════════════════
// Soundex maps a token to a phonetic code: the first letter, followed by three
// digits derived from the remaining consonant groups, padded with zeroes. The
// phonetic index (§4.3, §5) groups tokens by this code so the corrector can
// propose candidates that sound alike even when they are spelled very
// differently.
// ═══════════════════════════════════════════════════════════════════════════════

// soundexCode maps a letter to its Soundex digit, 0 for letters that drop out
// (vowels and h, w, y).
var soundexCode = map[byte]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

// Soundex computes the classic four-character Soundex code for token: one
// letter followed by three digits, zero-padded. Non-letter input yields "".
func Soundex(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}

	first := token[0]
	if first < 'a' || first > 'z' {
		return ""
	}

	code := make([]byte, 0, 4)
	code = append(code, first-'a'+'A')

	lastDigit := soundexCode[first]
	for i := 1; i < len(token) && len(code) < 4; i++ {
		c := token[i]
		if c < 'a' || c > 'z' {
			continue
		}
		if c == 'h' || c == 'w' {
			// transparent: does not break coalescing of an identical code
			// on either side (Ashcraft -> A261, not A226).
			continue
		}
		if isVowelOrY(c) {
			lastDigit = 0
			continue
		}
		d := soundexCode[c]
		if d != lastDigit {
			code = append(code, d)
			lastDigit = d
		}
	}

	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}

func isVowelOrY(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	default:
		return false
	}
}
