// Package goldmarkquery implements the syntax.Query interface using the
// goldmark library.
package goldmarkquery

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/moondown/moondown/pkg/document"
	"github.com/moondown/moondown/pkg/syntax"
)

// Flavor identifies the Markdown flavor supported by the provider.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Provider implements syntax.Provider using goldmark.
type Provider struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a goldmark-based provider for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Provider {
	f := flavorOrDefault(flavor)
	return &Provider{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Provider) Flavor() string {
	return p.flavor
}

// QueryFor parses the snapshot and returns a Query over its syntax tree.
// The query is valid only for the given revision.
func (p *Provider) QueryFor(snap *document.Snapshot) syntax.Query {
	reader := text.NewReader(snap.Content)
	doc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))
	return &query{doc: doc, content: snap.Content}
}

type query struct {
	doc     ast.Node
	content []byte
}

// ListItemsIn returns spans for list items whose content intersects [from, to).
func (q *query) ListItemsIn(from, to int) ([]syntax.NodeSpan, error) {
	var spans []syntax.NodeSpan

	err := ast.Walk(q.doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.ListItem); !ok {
			return ast.WalkContinue, nil
		}

		span, ok := blockSpan(n)
		if !ok {
			return ast.WalkContinue, nil
		}
		if span.Start < to && span.End > from {
			spans = append(spans, span)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk list items: %w", err)
	}

	return spans, nil
}

// FencedCodeSpans returns spans covering fenced code block content.
func (q *query) FencedCodeSpans() ([]syntax.NodeSpan, error) {
	var spans []syntax.NodeSpan

	err := ast.Walk(q.doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.FencedCodeBlock); !ok {
			return ast.WalkContinue, nil
		}

		if span, ok := blockSpan(n); ok {
			spans = append(spans, span)
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk code blocks: %w", err)
	}

	return spans, nil
}

// blockSpan computes the byte span of a block node from its line segments,
// recursing into children when the node itself carries no lines.
func blockSpan(n ast.Node) (syntax.NodeSpan, bool) {
	start, end := -1, -1

	var visit func(node ast.Node)
	visit = func(node ast.Node) {
		if node.Type() == ast.TypeBlock {
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				if start < 0 || seg.Start < start {
					start = seg.Start
				}
				if seg.Stop > end {
					end = seg.Stop
				}
			}
		}
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			visit(child)
		}
	}
	visit(n)

	if start < 0 {
		return syntax.NodeSpan{}, false
	}
	return syntax.NodeSpan{Start: start, End: end}, true
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}

	return goldmark.New(opts...)
}
