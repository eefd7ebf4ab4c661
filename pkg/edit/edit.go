// Package edit provides the transaction model for the editing core: atomic
// batches of text changes, marker effects for inter-component signaling, and
// position mapping across revisions.
package edit

// Change represents a single text replacement in a document.
// It deletes the bytes in [From, To) and inserts Insert in their place.
type Change struct {
	// From is the byte index where the change begins (inclusive).
	From int

	// To is the byte index where the change ends (exclusive).
	To int

	// Insert is the replacement text.
	Insert string
}

// Builder accumulates changes for a single transaction.
type Builder struct {
	Changes []Change
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ReplaceRange adds a change that replaces bytes [from, to) with text.
func (b *Builder) ReplaceRange(from, to int, text string) {
	b.Changes = append(b.Changes, Change{
		From:   from,
		To:     to,
		Insert: text,
	})
}

// Insert adds a change that inserts text at the given offset.
func (b *Builder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds a change that deletes bytes [from, to).
func (b *Builder) Delete(from, to int) {
	b.ReplaceRange(from, to, "")
}
