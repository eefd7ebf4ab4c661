// Package document provides the immutable line-addressable document view
// that the editing core operates on. A Snapshot is valid for exactly one
// revision of the host document; the core borrows it and never mutates it.
package document

// Snapshot is an immutable view of the document at a specific revision.
// It holds the raw content and line metadata.
type Snapshot struct {
	// Content is the full document bytes.
	Content []byte

	// Lines contains metadata for each line in the document.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of document).
	EndOffset int
}

// NewSnapshot creates a Snapshot from content, building the line index.
func NewSnapshot(content []byte) *Snapshot {
	return &Snapshot{
		Content: content,
		Lines:   BuildLines(content),
	}
}

// Len returns the content length in bytes.
func (s *Snapshot) Len() int {
	return len(s.Content)
}

// Range is a half-open byte range [From, To) into a Snapshot.
type Range struct {
	From int
	To   int
}

// Empty returns true if the range covers no bytes.
func (r Range) Empty() bool {
	return r.To <= r.From
}
