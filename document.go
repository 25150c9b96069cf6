package boolidx

import "strings"

// ═══════════════════════════════════════════════════════════════════════════════
// DOCUMENT
// ═══════════════════════════════════════════════════════════════════════════════
// A Document has an optional title and content made of text blocks. Equality is
// by (title, content) — two documents with identical text are equal regardless
// of the identifier a corpus later assigns them.
// ═══════════════════════════════════════════════════════════════════════════════

// Document is the external contract a corpus producer must satisfy (§6): a
// nullable title and a content accessor. Content is a sequence of internal
// "subcontents" (paragraphs, fields, ranked chunks) concatenated for indexing.
type Document struct {
	Title   string
	Content []string
}

// NewDocument builds a Document from a title and one or more content blocks.
func NewDocument(title string, content ...string) Document {
	return Document{Title: title, Content: content}
}

// Text concatenates the document's content blocks into a single string, the
// form the normalizer consumes.
func (d Document) Text() string {
	return strings.Join(d.Content, " ")
}

// Equals implements the (title, content) equality the data model requires.
func (d Document) Equals(other Document) bool {
	if d.Title != other.Title || len(d.Content) != len(other.Content) {
		return false
	}
	for i := range d.Content {
		if d.Content[i] != other.Content[i] {
			return false
		}
	}
	return true
}

// CompareTo breaks ties between documents the host needs to order, satisfying
// the "Documents are Comparable" clause of the corpus producer contract (§6).
// Order is by title, then by number of content blocks, then lexicographically
// by text.
func (d Document) CompareTo(other Document) int {
	if d.Title != other.Title {
		return strings.Compare(d.Title, other.Title)
	}
	if len(d.Content) != len(other.Content) {
		if len(d.Content) < len(other.Content) {
			return -1
		}
		return 1
	}
	return strings.Compare(d.Text(), other.Text())
}
