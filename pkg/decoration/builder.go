package decoration

import (
	"github.com/charmbracelet/log"

	"github.com/moondown/moondown/internal/logging"
	"github.com/moondown/moondown/pkg/document"
	"github.com/moondown/moondown/pkg/marker"
	"github.com/moondown/moondown/pkg/syntax"
)

// BulletBuilder projects unordered list markers in the visible viewport onto
// replacement bullet widgets. It is a pure read-side projection: it never
// mutates the document, and every call rebuilds the set from scratch bounded
// by the visible ranges.
type BulletBuilder struct {
	logger *log.Logger
}

// NewBulletBuilder creates a builder using the default logger.
func NewBulletBuilder() *BulletBuilder {
	return &BulletBuilder{logger: logging.Default()}
}

// WithLogger replaces the builder's logger.
func (b *BulletBuilder) WithLogger(logger *log.Logger) *BulletBuilder {
	b.logger = logger
	return b
}

// Build returns the bullet decoration set for the visible ranges of one
// snapshot. Ordered list items keep their numeric markers and are not
// decorated. A failing syntax query yields an empty set; the worst case is a
// bullet glyph that does not update until the next rebuild.
func (b *BulletBuilder) Build(snap *document.Snapshot, visible []document.Range, q syntax.Query) Set {
	var decorations []Decoration
	seen := make(map[int]bool)

	for _, r := range visible {
		if r.Empty() {
			continue
		}

		items, err := q.ListItemsIn(r.From, r.To)
		if err != nil {
			b.logger.Debug("list item query failed", logging.FieldError, err)
			continue
		}

		for _, item := range items {
			lineIdx, err := snap.LineIndexAt(item.Start)
			if err != nil {
				continue
			}
			lineRange, ok := snap.LineRange(lineIdx)
			if !ok || seen[lineRange.From] {
				continue
			}
			seen[lineRange.From] = true

			line := string(snap.LineContent(lineIdx))
			um, ok := marker.ParseUnorderedMarker(line)
			if !ok {
				continue
			}

			decorations = append(decorations, Decoration{
				From:   lineRange.From + um.IndentStart,
				To:     lineRange.From + um.MarkerEnd,
				Widget: NewBulletWidget(um.Indent),
			})
		}
	}

	return NewSet(decorations)
}
