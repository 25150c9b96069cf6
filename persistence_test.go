package boolidx

import (
	"bytes"
	"errors"
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PERSISTENCE ENVELOPE TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestEnvelopeRoundTrip(t *testing.T) {
	idx, _ := setupTestIndex(t)
	want := NewEnvelope(idx)

	var buf bytes.Buffer
	if err := WriteEnvelope(&buf, want); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	got, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	if got != want {
		t.Fatalf("ReadEnvelope() = %+v, want %+v", got, want)
	}
}

func TestReadEnvelopeBadMagic(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 15))
	_, err := ReadEnvelope(buf)
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("ReadEnvelope(zeroed) err = %v, want ErrBadMagic", err)
	}
}

func TestReadEnvelopeTruncatedStream(t *testing.T) {
	_, err := ReadEnvelope(bytes.NewReader([]byte{1, 2, 3}))
	if !errors.Is(err, ErrIOError) {
		t.Fatalf("ReadEnvelope(truncated) err = %v, want ErrIOError", err)
	}
}

func TestReadEnvelopeUnsupportedVersion(t *testing.T) {
	idx, _ := setupTestIndex(t)
	e := NewEnvelope(idx)
	e.Version = formatVersion + 1

	var buf bytes.Buffer
	if err := WriteEnvelope(&buf, e); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	_, err := ReadEnvelope(&buf)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("ReadEnvelope(future version) err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestCheckStemmerCompatibilityNoPanicOnMatch(t *testing.T) {
	idx, _ := setupTestIndex(t)
	CheckStemmerCompatibility(idx, NewEnvelope(idx))
}

func TestCheckStemmerCompatibilityNoPanicOnMismatch(t *testing.T) {
	idx, _ := setupTestIndex(t)
	mismatched := NewEnvelope(idx)
	if idx.stemmer == PorterStemming {
		mismatched.Stemmer = NoStemming
	} else {
		mismatched.Stemmer = PorterStemming
	}
	CheckStemmerCompatibility(idx, mismatched)
}
