// Package decoration provides the read-side visual projections of the
// editing core: replacement widgets and style marks over document byte
// ranges, collected into ordered, non-overlapping sets for the host to
// render. Decorations never alter the underlying text.
package decoration

import "sort"

// Widget is a host-rendered replacement for a byte range.
type Widget interface {
	// Render returns the text the widget displays in place of the range.
	Render() string

	// Eq reports whether two widgets are interchangeable, letting the host
	// skip redundant DOM churn.
	Eq(other Widget) bool
}

// Decoration annotates a byte range, either replacing it with a widget or
// marking it with a style class.
type Decoration struct {
	// From is the start byte offset (inclusive).
	From int

	// To is the end byte offset (exclusive).
	To int

	// Widget replaces the range when non-nil.
	Widget Widget

	// Class styles the range when Widget is nil.
	Class string
}

// Set is a sequence of decorations ordered by start offset, non-overlapping.
type Set []Decoration

// NewSet sorts decorations by start offset and drops overlaps, keeping the
// earlier decoration when two collide.
func NewSet(decorations []Decoration) Set {
	if len(decorations) == 0 {
		return nil
	}

	sorted := make([]Decoration, len(decorations))
	copy(sorted, decorations)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].To < sorted[j].To
	})

	out := sorted[:1]
	for _, d := range sorted[1:] {
		if d.From < out[len(out)-1].To {
			continue
		}
		out = append(out, d)
	}

	return Set(out)
}

// Merge combines two sets into one ordered, non-overlapping set.
func (s Set) Merge(other Set) Set {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	combined := make([]Decoration, 0, len(s)+len(other))
	combined = append(combined, s...)
	combined = append(combined, other...)
	return NewSet(combined)
}
