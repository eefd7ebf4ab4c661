package edit

import (
	"fmt"
	"sort"

	"github.com/moondown/moondown/pkg/document"
)

// Transaction is an atomic batch of changes applied to a document, producing
// a new immutable revision, plus any marker effects for this edit cycle.
type Transaction struct {
	// Before is the document snapshot the changes were computed against.
	Before *document.Snapshot

	// After is the snapshot produced by applying Changes to Before.
	// For effect-only transactions, After is the same revision as Before.
	After *document.Snapshot

	// Changes is the sorted, non-overlapping change list, with offsets
	// addressing Before.
	Changes []Change

	// Effects holds the marker effects attached to this transaction.
	Effects []Effect
}

// ChangeError is returned by NewTransaction when a change in the batch
// cannot be applied to the Before revision.
type ChangeError struct {
	Change Change

	// Conflict is the earlier change this one overlaps, or nil when the
	// change itself is malformed.
	Conflict *Change

	Reason string
}

func (e *ChangeError) Error() string {
	if e.Conflict != nil {
		return fmt.Sprintf("change [%d:%d) overlaps [%d:%d)",
			e.Change.From, e.Change.To, e.Conflict.From, e.Conflict.To)
	}
	return fmt.Sprintf("change [%d:%d): %s", e.Change.From, e.Change.To, e.Reason)
}

// NewTransaction applies changes against before, returning the complete
// transaction. Changes may be given in any order; the batch is rejected with
// a ChangeError if any change falls outside the document or overlaps another.
func NewTransaction(before *document.Snapshot, changes []Change, effects ...Effect) (*Transaction, error) {
	normalized, err := normalize(changes, before.Len())
	if err != nil {
		return nil, err
	}

	after := before
	if len(normalized) > 0 {
		after = document.NewSnapshot(splice(before.Content, normalized))
	}

	return &Transaction{
		Before:  before,
		After:   after,
		Changes: normalized,
		Effects: effects,
	}, nil
}

// normalize sorts a copy of the batch and rejects out-of-range or
// overlapping changes. The input slice is left untouched so callers can
// retry or report with their original ordering.
func normalize(changes []Change, docLen int) ([]Change, error) {
	if len(changes) == 0 {
		return nil, nil
	}

	sorted := make([]Change, len(changes))
	copy(sorted, changes)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].To < sorted[j].To
	})

	for i, c := range sorted {
		switch {
		case c.From < 0:
			return nil, &ChangeError{Change: c, Reason: "negative start offset"}
		case c.To < c.From:
			return nil, &ChangeError{Change: c, Reason: "end offset before start"}
		case c.To > docLen:
			return nil, &ChangeError{
				Change: c,
				Reason: fmt.Sprintf("end offset past document length %d", docLen),
			}
		}
		if i > 0 && c.From < sorted[i-1].To {
			prev := sorted[i-1]
			return nil, &ChangeError{Change: c, Conflict: &prev}
		}
	}

	return sorted, nil
}

// splice rebuilds the document content with every change applied, in one
// left-to-right pass over the sorted batch.
func splice(content []byte, changes []Change) []byte {
	size := len(content)
	for _, c := range changes {
		size += len(c.Insert) - (c.To - c.From)
	}

	out := make([]byte, 0, size)
	cursor := 0
	for _, c := range changes {
		out = append(out, content[cursor:c.From]...)
		out = append(out, c.Insert...)
		cursor = c.To
	}
	return append(out, content[cursor:]...)
}

// NoOpTransaction creates a transaction that changes nothing. It exists so a
// host can be poked into re-running its render projections.
func NoOpTransaction(snap *document.Snapshot, effects ...Effect) *Transaction {
	return &Transaction{
		Before:  snap,
		After:   snap,
		Effects: effects,
	}
}

// DocChanged returns true if the transaction modified the document.
func (tx *Transaction) DocChanged() bool {
	return len(tx.Changes) > 0
}

// HasEffect returns true if any attached effect has the given kind.
func (tx *Transaction) HasEffect(kind EffectKind) bool {
	for _, e := range tx.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// FindEffect returns the first attached effect of the given kind.
func (tx *Transaction) FindEffect(kind EffectKind) (Effect, bool) {
	for _, e := range tx.Effects {
		if e.Kind == kind {
			return e, true
		}
	}
	return Effect{}, false
}
