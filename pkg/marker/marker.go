// Package marker recognizes Markdown list markers on single lines of text.
// All matchers operate on one line only; multi-line context is supplied by
// the callers (the impact classifier and the renumbering engine).
package marker

import "strconv"

// Configuration constants for list rendering. Exposed as named constants so
// tests can reference them directly.
const (
	// IndentUnitSize is the number of indentation columns per nesting level.
	IndentUnitSize = 2

	// BulletStyleCount is the cycle length of the bullet glyph set.
	BulletStyleCount = 3
)

// LineParts is the decomposition of a line into its leading blockquote
// prefix, indentation whitespace, and remaining text.
type LineParts struct {
	// Quote is the leading blockquote prefix ("> " runs), possibly empty.
	Quote string

	// Indent is the indentation whitespace following the quote prefix.
	Indent string

	// Rest is the remainder of the line.
	Rest string
}

// Decompose splits a line into blockquote prefix, indentation, and rest.
func Decompose(line string) LineParts {
	quoteEnd := 0
	i := 0
	for {
		j := i
		// Up to three spaces may precede each blockquote marker.
		spaces := 0
		for j < len(line) && line[j] == ' ' && spaces < 3 {
			j++
			spaces++
		}
		if j >= len(line) || line[j] != '>' {
			break
		}
		j++
		// One space after '>' belongs to the marker.
		if j < len(line) && line[j] == ' ' {
			j++
		}
		i = j
		quoteEnd = i
	}

	indentEnd := quoteEnd
	for indentEnd < len(line) && (line[indentEnd] == ' ' || line[indentEnd] == '\t') {
		indentEnd++
	}

	return LineParts{
		Quote:  line[:quoteEnd],
		Indent: line[quoteEnd:indentEnd],
		Rest:   line[indentEnd:],
	}
}

// IsUnorderedMarkerLine returns true if the line opens an unordered list
// item: optional blockquote prefix, indentation, one of '-', '*', '+',
// then a space.
func IsUnorderedMarkerLine(line string) bool {
	return isUnorderedRest(Decompose(line).Rest)
}

// IsOrderedMarkerLine returns true if the line opens an ordered list item:
// optional blockquote prefix, indentation, one or more digits, '.' or ')',
// then a space.
func IsOrderedMarkerLine(line string) bool {
	return isOrderedRest(Decompose(line).Rest)
}

// IsAnyListMarkerLine returns true if the line opens either list item kind.
func IsAnyListMarkerLine(line string) bool {
	rest := Decompose(line).Rest
	return isUnorderedRest(rest) || isOrderedRest(rest)
}

// ContainsMarkerText tests a whole text blob (possibly multi-line) for a
// list marker at the blob start or immediately following any newline.
func ContainsMarkerText(blob string) bool {
	if blob == "" {
		return false
	}
	if IsAnyListMarkerLine(blob) {
		return true
	}
	for i := 0; i+1 < len(blob); i++ {
		if blob[i] == '\n' && IsAnyListMarkerLine(blob[i+1:]) {
			return true
		}
	}
	return false
}

func isUnorderedRest(rest string) bool {
	if len(rest) < 2 {
		return false
	}
	switch rest[0] {
	case '-', '*', '+':
		return rest[1] == ' '
	default:
		return false
	}
}

func isOrderedRest(rest string) bool {
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(rest) {
		return false
	}
	if rest[i] != '.' && rest[i] != ')' {
		return false
	}
	return i+1 < len(rest) && rest[i+1] == ' '
}

// UnorderedMarker describes a matched unordered list marker line.
type UnorderedMarker struct {
	// Quote is the blockquote prefix, possibly empty.
	Quote string

	// Indent is the raw indentation whitespace, preserved verbatim.
	Indent string

	// Bullet is the marker character: '-', '*', or '+'.
	Bullet byte

	// IndentStart is the byte offset within the line where indentation begins.
	IndentStart int

	// MarkerEnd is the byte offset just past the marker's trailing space.
	MarkerEnd int
}

// ParseUnorderedMarker matches an unordered marker line and returns its parts.
func ParseUnorderedMarker(line string) (UnorderedMarker, bool) {
	parts := Decompose(line)
	if !isUnorderedRest(parts.Rest) {
		return UnorderedMarker{}, false
	}

	indentStart := len(parts.Quote)
	markerStart := indentStart + len(parts.Indent)
	return UnorderedMarker{
		Quote:       parts.Quote,
		Indent:      parts.Indent,
		Bullet:      parts.Rest[0],
		IndentStart: indentStart,
		MarkerEnd:   markerStart + 2, // marker character plus its space
	}, true
}

// OrderedMarker describes a matched ordered list marker line.
type OrderedMarker struct {
	// Quote is the blockquote prefix, possibly empty.
	Quote string

	// Indent is the raw indentation whitespace.
	Indent string

	// Number is the parsed ordinal.
	Number int

	// Delim is the delimiter character: '.' or ')'.
	Delim byte

	// NumberStart is the byte offset within the line where the digits begin.
	NumberStart int

	// DelimEnd is the byte offset just past the delimiter.
	DelimEnd int
}

// ParseOrderedMarker matches an ordered marker line and returns its parts.
func ParseOrderedMarker(line string) (OrderedMarker, bool) {
	parts := Decompose(line)
	rest := parts.Rest
	if !isOrderedRest(rest) {
		return OrderedMarker{}, false
	}

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}

	num, err := strconv.Atoi(rest[:digits])
	if err != nil {
		// Digits too large to represent; treat as no match.
		return OrderedMarker{}, false
	}

	numberStart := len(parts.Quote) + len(parts.Indent)
	return OrderedMarker{
		Quote:       parts.Quote,
		Indent:      parts.Indent,
		Number:      num,
		Delim:       rest[digits],
		NumberStart: numberStart,
		DelimEnd:    numberStart + digits + 1,
	}, true
}

// IndentWidth returns the column width of indentation whitespace.
// Tabs advance one full indent unit.
func IndentWidth(indent string) int {
	width := 0
	for i := 0; i < len(indent); i++ {
		if indent[i] == '\t' {
			width += IndentUnitSize
		} else {
			width++
		}
	}
	return width
}

// IndentLevel returns the nesting level for the given indentation whitespace.
func IndentLevel(indent string) int {
	return IndentWidth(indent) / IndentUnitSize
}

// StyleSlot returns the bullet style slot for a nesting level, cycling
// through BulletStyleCount styles.
func StyleSlot(level int) int {
	return level % BulletStyleCount
}
