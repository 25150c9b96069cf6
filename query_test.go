package boolidx

import (
	"reflect"
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY PARSER TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestParseQuerySingleWord(t *testing.T) {
	e := ParseQuery("cat")
	if e.Kind != KindValue || e.Word != "cat" {
		t.Fatalf("ParseQuery(cat) = %+v, want Value(cat)", e)
	}
}

func TestParseQueryAnd(t *testing.T) {
	e := ParseQuery("cat & dog")
	if e.Kind != KindBinary || e.BinOp != And {
		t.Fatalf("ParseQuery(cat & dog) = %+v, want Binary(AND)", e)
	}
	if e.Left.Word != "cat" || e.Right.Word != "dog" {
		t.Fatalf("operands = (%q, %q), want (cat, dog)", e.Left.Word, e.Right.Word)
	}
}

func TestParseQueryOr(t *testing.T) {
	e := ParseQuery("cat | dog")
	if e.Kind != KindBinary || e.BinOp != Or {
		t.Fatalf("ParseQuery(cat | dog) = %+v, want Binary(OR)", e)
	}
}

func TestParseQueryAndBindsTighterThanOr(t *testing.T) {
	// cat | dog & bird  ==  cat | (dog & bird)
	e := ParseQuery("cat | dog & bird")
	if e.Kind != KindBinary || e.BinOp != Or {
		t.Fatalf("top level = %+v, want Binary(OR)", e)
	}
	if e.Left.Kind != KindValue || e.Left.Word != "cat" {
		t.Fatalf("left = %+v, want Value(cat)", e.Left)
	}
	if e.Right.Kind != KindBinary || e.Right.BinOp != And {
		t.Fatalf("right = %+v, want Binary(AND)", e.Right)
	}
}

func TestParseQueryNot(t *testing.T) {
	e := ParseQuery("! cat")
	if e.Kind != KindUnary || e.Op != Not {
		t.Fatalf("ParseQuery(! cat) = %+v, want Unary(NOT)", e)
	}
	if e.Child.Word != "cat" {
		t.Fatalf("child = %+v, want Value(cat)", e.Child)
	}
}

func TestParseQueryDoubleNotCollapsesToIdentity(t *testing.T) {
	e := ParseQuery("!! cat")
	if e.Kind != KindValue || e.Word != "cat" {
		t.Fatalf("ParseQuery(!! cat) = %+v, want Value(cat)", e)
	}
}

func TestParseQueryDuplicateOperatorsNormalized(t *testing.T) {
	e := ParseQuery("cat || dog")
	if e.Kind != KindBinary || e.BinOp != Or {
		t.Fatalf("ParseQuery(cat || dog) = %+v, want Binary(OR)", e)
	}
}

func TestParseQueryParentheses(t *testing.T) {
	e := ParseQuery("(cat | dog) & bird")
	if e.Kind != KindBinary || e.BinOp != And {
		t.Fatalf("top level = %+v, want Binary(AND)", e)
	}
	if e.Left.Kind != KindBinary || e.Left.BinOp != Or {
		t.Fatalf("left = %+v, want Binary(OR)", e.Left)
	}
	if e.Right.Word != "bird" {
		t.Fatalf("right = %+v, want Value(bird)", e.Right)
	}
}

func TestParseQueryPhraseWithDefaultDistances(t *testing.T) {
	e := ParseQuery(`"cat is"`)
	if e.Kind != KindPhrase {
		t.Fatalf("ParseQuery(phrase) = %+v, want KindPhrase", e)
	}
	if !reflect.DeepEqual(e.Words, []string{"cat", "is"}) {
		t.Fatalf("Words = %v, want [cat is]", e.Words)
	}
	if !reflect.DeepEqual(e.Distances, []int{1}) {
		t.Fatalf("Distances = %v, want [1]", e.Distances)
	}
}

func TestParseQueryPhraseWithExplicitDistance(t *testing.T) {
	e := ParseQuery(`"cat \d2 table"`)
	if e.Kind != KindPhrase {
		t.Fatalf("ParseQuery(phrase) = %+v, want KindPhrase", e)
	}
	if !reflect.DeepEqual(e.Distances, []int{2}) {
		t.Fatalf("Distances = %v, want [2]", e.Distances)
	}
}

func TestParseQuerySingleWordPhraseDegradesToValue(t *testing.T) {
	e := ParseQuery(`"cat"`)
	if e.Kind != KindValue || e.Word != "cat" {
		t.Fatalf("ParseQuery(\"cat\") = %+v, want Value(cat)", e)
	}
}

func TestParseQueryWildcard(t *testing.T) {
	e := ParseQuery("ca*")
	if e.Kind != KindValue || e.Word != "ca*" {
		t.Fatalf("ParseQuery(ca*) = %+v, want Value(ca*)", e)
	}
}

func TestParseQueryStripsInvalidCharacters(t *testing.T) {
	e := ParseQuery("cat@@@")
	if e.Kind != KindValue || e.Word != "cat" {
		t.Fatalf("ParseQuery(cat@@@) = %+v, want Value(cat)", e)
	}
}

func TestParseQueryUnterminatedPhraseRecoversToNil(t *testing.T) {
	e := ParseQuery(`"cat`)
	if e != nil {
		t.Fatalf("ParseQuery(unterminated phrase) = %+v, want nil", e)
	}
}

func TestExprStringRoundTrip(t *testing.T) {
	cases := []string{"cat", "cat&dog", "cat|dog"}
	for _, q := range cases {
		e := ParseQuery(q)
		reparsed := ParseQuery(e.String())
		if !exprEqual(e, reparsed) {
			t.Errorf("round trip for %q: %+v != %+v", q, e, reparsed)
		}
	}
}

func exprEqual(a, b *Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindValue:
		return a.Word == b.Word
	case KindPhrase:
		return reflect.DeepEqual(a.Words, b.Words) && reflect.DeepEqual(a.Distances, b.Distances)
	case KindUnary:
		return a.Op == b.Op && exprEqual(a.Child, b.Child)
	case KindBinary:
		return a.BinOp == b.BinOp && exprEqual(a.Left, b.Left) && exprEqual(a.Right, b.Right)
	}
	return false
}
