// Package impact decides whether a batch of edits could have disturbed
// ordered-list numbering anywhere in the affected region, without
// re-scanning the whole document.
package impact

import (
	"github.com/charmbracelet/log"

	"github.com/moondown/moondown/internal/logging"
	"github.com/moondown/moondown/pkg/edit"
	"github.com/moondown/moondown/pkg/marker"
)

// Result is the outcome of classifying one notification's transactions.
type Result struct {
	// NeedsRenumber is true if list numbering may be stale.
	NeedsRenumber bool

	// Forced is true when a renumber effect demanded the run outright,
	// bypassing impact analysis.
	Forced bool
}

// Classifier inspects transactions for potential list-numbering impact.
type Classifier struct {
	logger *log.Logger
}

// NewClassifier creates a classifier using the default logger.
func NewClassifier() *Classifier {
	return &Classifier{logger: logging.Default()}
}

// WithLogger replaces the classifier's logger.
func (c *Classifier) WithLogger(logger *log.Logger) *Classifier {
	c.logger = logger
	return c
}

// Classify inspects all transactions applied in one notification.
//
// A transaction carrying the renumber effect forces the run unconditionally:
// it is the programmatic follow-up to a prior renumber, and an explicit
// request must always execute. Otherwise each change's removed and inserted
// text is tested as a whole blob for list markers, and failing that, the
// change's destination window (one line above and below, clamped) is scanned
// line by line. Any failure to resolve lines is treated as "needs renumber".
func (c *Classifier) Classify(txs []*edit.Transaction) Result {
	for _, tx := range txs {
		if tx.HasEffect(edit.EffectRenumber) {
			c.logger.Debug("renumber effect present, forcing renumber pass")
			return Result{NeedsRenumber: true, Forced: true}
		}
	}

	docChanged := false
	for _, tx := range txs {
		if tx.DocChanged() {
			docChanged = true
			break
		}
	}
	if !docChanged {
		return Result{}
	}

	for _, tx := range txs {
		for _, change := range tx.Changes {
			if c.changeAffectsLists(tx, change) {
				c.logger.Debug("edit may affect list numbering",
					logging.FieldFrom, change.From,
					logging.FieldTo, change.To,
				)
				return Result{NeedsRenumber: true}
			}
		}
	}

	return Result{}
}

// changeAffectsLists tests a single change for list-numbering impact.
func (c *Classifier) changeAffectsLists(tx *edit.Transaction, change edit.Change) bool {
	deleted := string(tx.Before.Slice(change.From, change.To))
	if marker.ContainsMarkerText(deleted) || marker.ContainsMarkerText(change.Insert) {
		return true
	}

	// Expand the destination range by one line in each direction and test
	// every line in the window. Renumbering is non-local: inserting a blank
	// line between two items carries no marker text itself.
	after := tx.After
	destFrom := tx.MapOffset(change.From, edit.BiasBackward)
	destTo := tx.MapOffset(change.To, edit.BiasForward)

	startLine, err := after.LineIndexAt(destFrom)
	if err != nil {
		// Correctness over precision when uncertain.
		return true
	}
	endLine, err := after.LineIndexAt(destTo)
	if err != nil {
		return true
	}

	startLine--
	endLine++
	if startLine < 0 {
		startLine = 0
	}
	if endLine > after.LineCount()-1 {
		endLine = after.LineCount() - 1
	}

	// Both bounds are clamped into [0, LineCount-1], so every index here
	// resolves to a line.
	for idx := startLine; idx <= endLine; idx++ {
		if marker.IsAnyListMarkerLine(string(after.LineContent(idx))) {
			return true
		}
	}

	return false
}
