package boolidx

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PERSISTED-STATE ENVELOPE
// ═══════════════════════════════════════════════════════════════════════════════
// §6 describes a persisted-index layout: a magic number, a format version, the
// stemmer the index was built with, and the document-identifier counter's
// current value. Full index (de)serialization — writing every posting list
// and permuterm rotation back out — is an external-collaborator concern the
// spec marks out of scope; what's implemented here is the envelope contract
// itself, adapted from the teacher's serialization framing (magic + version
// header, fixed-width fields, explicit byte order), plus the diagnostic the
// spec calls for: detecting a stemmer mismatch between a snapshot and the
// index about to consume it.
// ═══════════════════════════════════════════════════════════════════════════════

// magicNumber tags a byte stream as a boolidx snapshot envelope.
const magicNumber uint32 = 0xB0011D15

// formatVersion is the current envelope layout version.
const formatVersion uint16 = 1

// Envelope is the fixed-size header every persisted index snapshot carries
// ahead of its (out-of-scope) body.
type Envelope struct {
	Magic         uint32
	Version       uint16
	Stemmer       StemmerKind
	DocumentCount int64 // DocumentIDGenerator.Current() at snapshot time
}

// NewEnvelope captures idx's build-time metadata into a fresh envelope.
func NewEnvelope(idx *InvertedIndex) Envelope {
	return Envelope{
		Magic:         magicNumber,
		Version:       formatVersion,
		Stemmer:       idx.stemmer,
		DocumentCount: idx.corpus.Counter().Current(),
	}
}

// stemmerCodes fixes a stable on-wire byte per StemmerKind, independent of
// the string's length, matching the teacher's tag-byte convention for enum
// fields in its binary framing.
var stemmerCodes = map[StemmerKind]byte{
	NoStemming:     0,
	PorterStemming: 1,
}

var stemmerFromCode = map[byte]StemmerKind{
	0: NoStemming,
	1: PorterStemming,
}

// WriteEnvelope writes e's fixed-width header to w: magic, version, stemmer
// tag byte, document count — all big-endian, matching the teacher's wire
// convention.
func WriteEnvelope(w io.Writer, e Envelope) error {
	code, ok := stemmerCodes[e.Stemmer]
	if !ok {
		return fmt.Errorf("%w: unrecognized stemmer %q", ErrConfigError, e.Stemmer)
	}
	buf := make([]byte, 4+2+1+8)
	binary.BigEndian.PutUint32(buf[0:4], e.Magic)
	binary.BigEndian.PutUint16(buf[4:6], e.Version)
	buf[6] = code
	binary.BigEndian.PutUint64(buf[7:15], uint64(e.DocumentCount))
	_, err := w.Write(buf)
	return err
}

// ErrBadMagic marks a stream that doesn't start with the envelope's magic
// number.
var ErrBadMagic = fmt.Errorf("%w: bad magic number", ErrIOError)

// ErrUnsupportedVersion marks an envelope whose format version this build
// doesn't know how to read.
var ErrUnsupportedVersion = fmt.Errorf("%w: unsupported envelope version", ErrIOError)

// ReadEnvelope reads and validates a fixed-width header from r.
func ReadEnvelope(r io.Reader) (Envelope, error) {
	buf := make([]byte, 4+2+1+8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrIOError, err)
	}

	magic := binary.BigEndian.Uint32(buf[0:4])
	if magic != magicNumber {
		return Envelope{}, ErrBadMagic
	}
	version := binary.BigEndian.Uint16(buf[4:6])
	if version != formatVersion {
		return Envelope{}, ErrUnsupportedVersion
	}
	stemmer, ok := stemmerFromCode[buf[6]]
	if !ok {
		return Envelope{}, fmt.Errorf("%w: unrecognized stemmer tag %d", ErrConfigError, buf[6])
	}
	count := int64(binary.BigEndian.Uint64(buf[7:15]))

	return Envelope{
		Magic:         magic,
		Version:       version,
		Stemmer:       stemmer,
		DocumentCount: count,
	}, nil
}

// CheckStemmerCompatibility logs a warning when a loaded snapshot's stemmer
// disagrees with the stemmer idx was actually built with — query words
// normalized under one and postings built under the other silently
// stop matching (§6, §7).
func CheckStemmerCompatibility(idx *InvertedIndex, snapshot Envelope) {
	if idx.stemmer != snapshot.Stemmer {
		slog.Warn("snapshot stemmer does not match index stemmer, postings may not match normalized query terms",
			"snapshotStemmer", snapshot.Stemmer, "indexStemmer", idx.stemmer)
	}
}
