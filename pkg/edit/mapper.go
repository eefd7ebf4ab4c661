package edit

// Bias resolves the ambiguity when an offset is mapped through a change that
// touches it exactly.
type Bias uint8

const (
	// BiasBackward keeps the mapped offset at the start of the changed
	// region: an insertion at the offset leaves it in place, and an offset
	// at the end of a replaced range is pulled to the start of the
	// inserted text.
	BiasBackward Bias = iota

	// BiasForward pushes the mapped offset past the inserted text: an
	// insertion at the offset moves it to the end of the insertion.
	BiasForward
)

// MapOffset maps a byte offset in the Before document to the corresponding
// offset in the After document. Offsets strictly inside a replaced range
// collapse onto the replacement according to bias.
//
// Changes must be sorted and non-overlapping, which NewTransaction guarantees.
func (tx *Transaction) MapOffset(pos int, bias Bias) int {
	delta := 0
	for _, c := range tx.Changes {
		if pos < c.From {
			break
		}

		inserted := len(c.Insert)
		if pos <= c.To {
			if bias == BiasForward {
				return c.From + delta + inserted
			}
			return c.From + delta
		}

		delta += inserted - (c.To - c.From)
	}
	return pos + delta
}

// MapRange maps a [from, to) range through the transaction. The start tracks
// forward past insertions at its position and the end stays behind them, so
// text inserted exactly at either boundary is not absorbed into the range.
// A range whose content was entirely deleted collapses to an empty range.
func (tx *Transaction) MapRange(from, to int) (int, int) {
	mappedFrom := tx.MapOffset(from, BiasForward)
	mappedTo := tx.MapOffset(to, BiasBackward)
	if mappedTo < mappedFrom {
		mappedTo = mappedFrom
	}
	return mappedFrom, mappedTo
}
