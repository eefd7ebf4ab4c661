package edit

// EffectKind classifies a marker effect attached to a transaction.
type EffectKind uint8

const (
	// EffectRenumber tags a transaction produced by the renumbering engine.
	// It carries no payload; its presence lets the impact classifier
	// distinguish programmatic renumbering from user edits.
	EffectRenumber EffectKind = iota + 1

	// EffectSetHighlight installs a transient reference highlight over a range.
	EffectSetHighlight
)

// Effect is a tag attached to a transaction carrying no document mutation,
// used purely for inter-component signaling within the same edit cycle.
type Effect struct {
	Kind EffectKind

	// From and To carry the range for EffectSetHighlight. Unused otherwise.
	From int
	To   int
}

// RenumberEffect creates the payload-free renumbering marker.
func RenumberEffect() Effect {
	return Effect{Kind: EffectRenumber}
}

// SetHighlightEffect creates a highlight request over [from, to).
func SetHighlightEffect(from, to int) Effect {
	return Effect{Kind: EffectSetHighlight, From: from, To: to}
}
