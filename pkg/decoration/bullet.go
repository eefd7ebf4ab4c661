package decoration

import (
	"fmt"

	"github.com/moondown/moondown/pkg/marker"
)

// bulletGlyphs is the fixed symbol set cycled by nesting depth.
//
//nolint:gochecknoglobals // Fixed glyph table, never mutated
var bulletGlyphs = [marker.BulletStyleCount]rune{'●', '○', '■'}

// BulletWidget replaces an unordered list marker with a depth-styled glyph.
// The original indentation is preserved verbatim so horizontal alignment is
// unchanged.
type BulletWidget struct {
	// Indent is the raw indentation whitespace from the source line.
	Indent string

	// Level is the indent nesting level.
	Level int

	// Class is the style class derived from the level's style slot.
	Class string
}

// NewBulletWidget builds the widget for an unordered item at the given
// indentation.
func NewBulletWidget(indent string) BulletWidget {
	level := marker.IndentLevel(indent)
	return BulletWidget{
		Indent: indent,
		Level:  level,
		Class:  fmt.Sprintf("md-bullet-%d", marker.StyleSlot(level)),
	}
}

// Glyph returns the bullet symbol for this widget's nesting level.
func (w BulletWidget) Glyph() rune {
	return bulletGlyphs[marker.StyleSlot(w.Level)]
}

// Render returns the replacement text: indentation, glyph, one space.
func (w BulletWidget) Render() string {
	return w.Indent + string(w.Glyph()) + " "
}

// Eq reports widget interchangeability. Two bullet widgets are
// interchangeable only if style class, indent level, and indentation string
// all match exactly.
func (w BulletWidget) Eq(other Widget) bool {
	o, ok := other.(BulletWidget)
	if !ok {
		return false
	}
	return w.Class == o.Class && w.Level == o.Level && w.Indent == o.Indent
}
