// Package renumber recomputes the visible ordinal numbers of ordered list
// items to match their logical position, emitting a minimal patch.
package renumber

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/moondown/moondown/internal/logging"
	"github.com/moondown/moondown/pkg/document"
	"github.com/moondown/moondown/pkg/edit"
	"github.com/moondown/moondown/pkg/marker"
	"github.com/moondown/moondown/pkg/syntax"
)

// Engine computes ordered-list renumbering patches for a document snapshot.
type Engine struct {
	logger   *log.Logger
	provider syntax.Provider
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSyntaxProvider supplies a syntax provider used to exclude fenced code
// block content from renumbering. Without one, every line is considered.
func WithSyntaxProvider(provider syntax.Provider) Option {
	return func(e *Engine) {
		e.provider = provider
	}
}

// NewEngine creates a renumbering engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: logging.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// openList tracks one ordered list whose numbering run is still open.
type openList struct {
	// level is the indent nesting level of the list's items.
	level int

	// quote is the blockquote prefix the list lives under. Items under a
	// different prefix belong to a different list.
	quote string

	// next is the expected number for the next item at this level.
	next int
}

// Compute scans the snapshot and returns the changes needed to make every
// ordered list item's visible number match its logical position. Lines whose
// numbers already match produce no change, keeping cursor position and undo
// history stable.
func (e *Engine) Compute(snap *document.Snapshot) []edit.Change {
	skip := e.skipSpans(snap)

	patch := edit.NewBuilder()
	var stack []openList

	for idx := 0; idx < snap.LineCount(); idx++ {
		lineRange, ok := snap.LineRange(idx)
		if !ok {
			continue
		}
		if spanContains(skip, lineRange.From) {
			// Fenced code content neither opens nor closes lists.
			continue
		}

		line := string(snap.LineContent(idx))
		parts := marker.Decompose(line)

		// A blank line closes every open list.
		if isBlank(parts.Rest) {
			stack = stack[:0]
			continue
		}

		om, isOrdered := marker.ParseOrderedMarker(line)
		level := marker.IndentLevel(parts.Indent)

		if !isOrdered {
			// A dedent closes every list deeper than this line. Content at
			// or below the open list's level is a lazy continuation and
			// leaves the run open.
			stack = popToLevel(stack, level+1)
			if marker.IsUnorderedMarkerLine(line) {
				// An unordered item at the same level ends the ordered run.
				stack = popAtLevel(stack, level, parts.Quote)
			}
			continue
		}

		stack = popToLevel(stack, level+1)

		var expected int
		top := len(stack) - 1
		if top >= 0 && stack[top].level == level && stack[top].quote == om.Quote {
			expected = stack[top].next
			stack[top].next++
		} else {
			if top >= 0 && stack[top].level == level {
				// Same level but different blockquote context.
				stack = stack[:top]
			}
			// The first item's explicit number seeds the list.
			expected = om.Number
			stack = append(stack, openList{level: level, quote: om.Quote, next: om.Number + 1})
		}

		if om.Number != expected {
			patch.ReplaceRange(
				lineRange.From+om.NumberStart,
				lineRange.From+om.DelimEnd,
				fmt.Sprintf("%d%c", expected, om.Delim),
			)
		}
	}

	if len(patch.Changes) > 0 {
		e.logger.Debug("computed renumbering patch", logging.FieldChanges, len(patch.Changes))
	}

	return patch.Changes
}

// Transaction wraps the computed patch in a transaction tagged with the
// renumber effect. Returns nil when the document already has correct numbers,
// guaranteeing convergence in at most one extra pass.
func (e *Engine) Transaction(snap *document.Snapshot) (*edit.Transaction, error) {
	changes := e.Compute(snap)
	if len(changes) == 0 {
		return nil, nil
	}

	tx, err := edit.NewTransaction(snap, changes, edit.RenumberEffect())
	if err != nil {
		return nil, fmt.Errorf("build renumber transaction: %w", err)
	}
	return tx, nil
}

// skipSpans returns fenced code spans to exclude. A failed syntax query skips
// nothing and logs; the scan itself never touches fence marker lines, so the
// degraded behavior is bounded to numbers inside code samples.
func (e *Engine) skipSpans(snap *document.Snapshot) []syntax.NodeSpan {
	if e.provider == nil {
		return nil
	}

	spans, err := e.provider.QueryFor(snap).FencedCodeSpans()
	if err != nil {
		e.logger.Debug("syntax query failed, renumbering without code exclusion",
			logging.FieldError, err)
		return nil
	}
	return spans
}

func spanContains(spans []syntax.NodeSpan, offset int) bool {
	for _, s := range spans {
		if offset >= s.Start && offset < s.End {
			return true
		}
	}
	return false
}

func isBlank(rest string) bool {
	return rest == ""
}

// popToLevel closes lists nested at or deeper than level.
func popToLevel(stack []openList, level int) []openList {
	for len(stack) > 0 && stack[len(stack)-1].level >= level {
		stack = stack[:len(stack)-1]
	}
	return stack
}

// popAtLevel closes a list at exactly the given level and quote context.
func popAtLevel(stack []openList, level int, quote string) []openList {
	top := len(stack) - 1
	if top >= 0 && stack[top].level == level && stack[top].quote == quote {
		return stack[:top]
	}
	return stack
}
