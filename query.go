package boolidx

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY EXPRESSION TREE
// ═══════════════════════════════════════════════════════════════════════════════
// A tagged variant type (§9, dynamic dispatch over expression variants): every
// Expr carries a Kind, and Evaluate (in evaluator.go) switches on it exhaustively
// instead of relying on interface dispatch, keeping every case visible at one
// call site.
// ═══════════════════════════════════════════════════════════════════════════════

// ExprKind tags which fields of an Expr are meaningful.
type ExprKind int

const (
	KindValue ExprKind = iota
	KindPhrase
	KindUnary
	KindBinary
)

// UnaryOp is the operator of a KindUnary node.
type UnaryOp int

const (
	Identity UnaryOp = iota
	Not
)

// BinaryOp is the operator of a KindBinary node.
type BinaryOp int

const (
	And BinaryOp = iota
	Or
)

// Expr is one node of a parsed Boolean query.
type Expr struct {
	Kind ExprKind

	// KindValue
	Word string

	// KindPhrase
	Words     []string
	Distances []int // len(Words)-1; Distances[k] = required positions[k+1]-positions[0]

	// KindUnary
	Op    UnaryOp
	Child *Expr

	// KindBinary
	BinOp BinaryOp
	Left  *Expr
	Right *Expr

	// Corrected marks a leaf produced by spelling correction, so the
	// corrector never re-corrects its own output (§4.6).
	Corrected bool
}

// NewValue builds a single-word leaf.
func NewValue(word string) *Expr { return &Expr{Kind: KindValue, Word: word} }

// NewPhrase builds a phrase leaf. A single word degrades to a Value leaf, per
// §4.5 ("Single-word phrases degrade to posting_list(word)").
func NewPhrase(words []string, distances []int) *Expr {
	if len(words) <= 1 {
		if len(words) == 0 {
			return NewValue("")
		}
		return NewValue(words[0])
	}
	return &Expr{Kind: KindPhrase, Words: words, Distances: distances}
}

// NewUnary builds a unary node. Building NOT over a NOT child collapses to
// IDENTITY over the grandchild (NOT ∘ NOT = IDENTITY, §4.7).
func NewUnary(op UnaryOp, child *Expr) *Expr {
	if op == Not && child.Kind == KindUnary && child.Op == Not {
		return child.Child
	}
	return &Expr{Kind: KindUnary, Op: op, Child: child}
}

// NewBinary builds an AND/OR node.
func NewBinary(op BinaryOp, left, right *Expr) *Expr {
	return &Expr{Kind: KindBinary, BinOp: op, Left: left, Right: right}
}

// String renders the expression back to query-string surface syntax
// (§4.7 query_string()).
func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindValue:
		return e.Word
	case KindPhrase:
		var b strings.Builder
		b.WriteByte('"')
		for i, w := range e.Words {
			if i > 0 {
				if i-1 < len(e.Distances) && e.Distances[i-1] != i {
					b.WriteString(" \\d")
					b.WriteString(strconv.Itoa(e.Distances[i-1]))
				}
				b.WriteByte(' ')
			}
			b.WriteString(w)
		}
		b.WriteByte('"')
		return b.String()
	case KindUnary:
		if e.Op == Not {
			return "!" + wrapIfBinary(e.Child)
		}
		return e.Child.String()
	case KindBinary:
		op := "&"
		if e.BinOp == Or {
			op = "|"
		}
		return wrapIfBinary(e.Left) + op + wrapIfBinary(e.Right)
	default:
		return ""
	}
}

func wrapIfBinary(e *Expr) string {
	if e.Kind == KindBinary {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY PARSER
// ═══════════════════════════════════════════════════════════════════════════════
// Recursive descent with a text-rewriting placeholder stack (§4.4): phrases
// are extracted first, then balanced brackets innermost-out, then AND, then
// OR, each pass replacing the matched text with a placeholder codepoint that
// stands for an already-built Expr on the parser's stack.
//
// Failure semantics: ParseQuery never panics outward — any parsing error is
// recovered and logged, yielding a nil expression (ErrInvalidQuery, §7),
// which Evaluate treats as "no results".
// ═══════════════════════════════════════════════════════════════════════════════

// placeholderBase is the first of the reserved ASCII control codepoints used
// as placeholders during parsing. Control characters are not part of the
// query alphabet, so they are safe both as the placeholder and as the set of
// characters stripped from raw input before parsing begins.
const placeholderBase = 0x01
const placeholderMax = 0x1F

var distanceMarkerRe = regexp.MustCompile(`^\\d(-?\d+)$`)
var bracketRe = regexp.MustCompile(`\(([^()]*)\)`)
var atomPattern = `!*(?:[\x01-\x1F]|[A-Za-z0-9_*]+)`
var orRe = regexp.MustCompile(`(` + atomPattern + `)\s*\|\s*(` + atomPattern + `)`)
var andRe = regexp.MustCompile(`(` + atomPattern + `)\s*&\s*(` + atomPattern + `)`)
var dupOperatorRe = regexp.MustCompile(`([&|])\1+`)
var leadingNotsRe = regexp.MustCompile(`^!+`)
var notSpaceRe = regexp.MustCompile(`!\s+`)
var operatorSpaceRe = regexp.MustCompile(`\s*([&|()])\s*`)
var remainingSpaceRe = regexp.MustCompile(`\s+`)

type parser struct {
	stack []*Expr
}

func (p *parser) push(e *Expr) rune {
	p.stack = append(p.stack, e)
	idx := len(p.stack) - 1
	return rune(placeholderBase + idx)
}

func (p *parser) pop(r rune) *Expr {
	idx := int(r) - placeholderBase
	return p.stack[idx]
}

func (p *parser) isPlaceholder(r rune) bool {
	return r >= placeholderBase && r <= placeholderMax
}

// ParseQuery parses a Boolean query string into an Expr tree, recovering any
// parse failure into a nil expression (§4.4, §7: InvalidQuery).
func ParseQuery(query string) (expr *Expr) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("invalid query, returning empty expression", "query", query, "error", r)
			expr = nil
		}
	}()

	p := &parser{}
	text := stripInvalidQueryChars(query)
	text = p.extractPhrases(text)
	text = normalizeWhitespace(text)
	text = normalizeDuplicateOperators(text)
	text = p.resolveBrackets(text)
	// AND binds tighter than OR (the orExpr := andExpr ('|' andExpr)* grammar),
	// so AND chains must fold into atoms before the OR pass consumes them.
	text = p.resolveAnd(text)
	text = p.resolveOr(text)
	return p.finalize(text)
}

// stripInvalidQueryChars removes every codepoint outside the query alphabet
// (letters, digits, underscore, operators, phrase/backslash syntax,
// whitespace) or in the reserved placeholder range, silently (§4.4, §6).
func stripInvalidQueryChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= placeholderBase && r <= placeholderMax {
			continue
		}
		if isQueryAlphabetRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isQueryAlphabetRune(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return true
	case r == '_', r == '&', r == '|', r == '!', r == '"', r == '(', r == ')', r == '*', r == '\\', r == 'd':
		return true
	case unicode.IsSpace(r):
		return true
	}
	return false
}

// extractPhrases replaces every quoted phrase with a placeholder, pushing a
// Phrase (or degraded Value) Expr onto the stack for it.
func (p *parser) extractPhrases(s string) string {
	var b strings.Builder
	inQuote := false
	var content strings.Builder
	for _, r := range s {
		if r == '"' {
			if inQuote {
				words, distances := parsePhraseContent(content.String())
				ph := p.push(NewPhrase(words, distances))
				b.WriteRune(ph)
				content.Reset()
			}
			inQuote = !inQuote
			continue
		}
		if inQuote {
			content.WriteRune(r)
		} else {
			b.WriteRune(r)
		}
	}
	if inQuote {
		panic("unterminated phrase")
	}
	return b.String()
}

// parsePhraseContent splits quoted content into words and their distances
// from the first word. A `\dN` token overrides the default distance for the
// next word; absent an override, distances increase by one per word,
// matching simple consecutive phrase adjacency.
func parsePhraseContent(content string) ([]string, []int) {
	fields := strings.Fields(content)
	var words []string
	var distances []int
	override := -1
	for _, f := range fields {
		if m := distanceMarkerRe.FindStringSubmatch(f); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				override = n
			}
			continue
		}
		words = append(words, f)
		if len(words) > 1 {
			if override >= 0 {
				distances = append(distances, override)
				override = -1
			} else {
				distances = append(distances, len(words)-1)
			}
		}
	}
	return words, distances
}

// normalizeDuplicateOperators collapses runs of duplicated & or | into one,
// per "operators may be duplicated by user error" (§4.4).
func normalizeDuplicateOperators(s string) string {
	return dupOperatorRe.ReplaceAllString(s, "$1")
}

// normalizeWhitespace removes whitespace that carries no meaning (around '!'
// and around existing operators/parens) and turns whitespace that separates
// two bare atoms into an explicit '&', the implicit-AND rule (§4.4:
// "Adjacent words without operator are treated as AND").
func normalizeWhitespace(s string) string {
	s = notSpaceRe.ReplaceAllString(s, "!")
	s = operatorSpaceRe.ReplaceAllString(s, "$1")
	s = remainingSpaceRe.ReplaceAllString(s, "&")
	return s
}

// resolveBrackets repeatedly finds the innermost (...) group, parses its
// interior as an orExpr, and replaces the matched text with a placeholder.
func (p *parser) resolveBrackets(s string) string {
	for {
		loc := bracketRe.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		inner := s[loc[2]:loc[3]]
		withAnd := p.resolveAnd(inner)
		withOr := p.resolveOr(withAnd)
		sub := p.finalize(withOr)
		ph := p.push(sub)
		s = s[:loc[0]] + string(ph) + s[loc[1]:]
	}
}

// resolveOr repeatedly matches `X | Y` (X, Y each a placeholder or bare
// word, optionally preceded by a run of '!') and folds it into
// Binary(OR, ...), left to right.
func (p *parser) resolveOr(s string) string {
	for {
		loc := orRe.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		left := s[loc[2]:loc[3]]
		right := s[loc[4]:loc[5]]
		node := NewBinary(Or, p.resolveUnaryAtom(left), p.resolveUnaryAtom(right))
		ph := p.push(node)
		s = s[:loc[0]] + string(ph) + s[loc[1]:]
	}
}

// resolveAnd is resolveOr's analog for `X & Y`, honoring leading '!' runs
// on either atom the same way.
func (p *parser) resolveAnd(s string) string {
	for {
		loc := andRe.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		left := s[loc[2]:loc[3]]
		right := s[loc[4]:loc[5]]
		node := NewBinary(And, p.resolveUnaryAtom(left), p.resolveUnaryAtom(right))
		ph := p.push(node)
		s = s[:loc[0]] + string(ph) + s[loc[1]:]
	}
}

// resolveAtom turns a bare word or placeholder token into an Expr.
func (p *parser) resolveAtom(token string) *Expr {
	r := []rune(token)
	if len(r) == 1 && p.isPlaceholder(r[0]) {
		return p.pop(r[0])
	}
	return NewValue(token)
}

// resolveUnaryAtom is resolveAtom but first strips and applies any leading
// run of '!' (an odd count means NOT, an even count collapses to IDENTITY).
func (p *parser) resolveUnaryAtom(token string) *Expr {
	nots := leadingNotsRe.FindString(token)
	rest := token[len(nots):]
	e := p.resolveAtom(rest)
	if len(nots)%2 == 1 {
		e = NewUnary(Not, e)
	}
	return e
}

// finalize handles whatever text remains after the OR and AND passes: a bare
// placeholder, a bare word, or either preceded by a run of '!'.
func (p *parser) finalize(s string) *Expr {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return p.resolveUnaryAtom(s)
}
