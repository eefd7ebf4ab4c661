package document

import (
	"errors"
	"sort"
)

// ErrOffsetOutOfRange is returned when an offset does not resolve to a line.
var ErrOffsetOutOfRange = errors.New("offset out of range")

// BuildLines constructs line metadata from document content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the document.
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// LineIndexAt returns the 0-based line index containing the byte offset.
// An offset equal to the content length resolves to the last line.
func (s *Snapshot) LineIndexAt(offset int) (int, error) {
	if offset < 0 || offset > len(s.Content) || len(s.Lines) == 0 {
		return 0, ErrOffsetOutOfRange
	}

	if offset == len(s.Content) {
		return len(s.Lines) - 1, nil
	}

	// Binary search for the line containing the offset.
	lineIdx := sort.Search(len(s.Lines), func(i int) bool {
		return s.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(s.Lines) || offset < s.Lines[lineIdx].StartOffset {
		return 0, ErrOffsetOutOfRange
	}

	return lineIdx, nil
}

// LineContent returns the content of the 0-based line index, excluding the newline.
// Returns nil if the index is out of range.
func (s *Snapshot) LineContent(idx int) []byte {
	if idx < 0 || idx >= len(s.Lines) {
		return nil
	}

	line := s.Lines[idx]
	return s.Content[line.StartOffset:line.NewlineStart]
}

// LineRange returns the byte range of the 0-based line index, including the newline.
func (s *Snapshot) LineRange(idx int) (Range, bool) {
	if idx < 0 || idx >= len(s.Lines) {
		return Range{}, false
	}
	line := s.Lines[idx]
	return Range{From: line.StartOffset, To: line.EndOffset}, true
}

// Slice returns the content bytes in [from, to), clamped to document bounds.
func (s *Snapshot) Slice(from, to int) []byte {
	if from < 0 {
		from = 0
	}
	if to > len(s.Content) {
		to = len(s.Content)
	}
	if from >= to {
		return nil
	}
	return s.Content[from:to]
}
