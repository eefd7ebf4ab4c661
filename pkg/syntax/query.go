// Package syntax defines the neutral syntax-tree query surface the editing
// core uses. Concrete hosts supply an implementation; this module ships a
// goldmark-backed one in the goldmarkquery subpackage.
package syntax

import "github.com/moondown/moondown/pkg/document"

// NodeSpan is the byte range occupied by a syntax node.
type NodeSpan struct {
	Start int
	End   int
}

// Query answers range-scoped questions about one document revision.
type Query interface {
	// ListItemsIn returns spans for list-item nodes intersecting [from, to).
	ListItemsIn(from, to int) ([]NodeSpan, error)

	// FencedCodeSpans returns spans covering fenced code block content.
	FencedCodeSpans() ([]NodeSpan, error)
}

// Provider builds a Query for a document snapshot.
type Provider interface {
	QueryFor(snap *document.Snapshot) Query
}
