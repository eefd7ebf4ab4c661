package editor

import "github.com/moondown/moondown/pkg/edit"

// Host is the text-editing surface the extension is loaded into.
type Host interface {
	// Dispatch applies a transaction to the document. The host delivers it
	// back as a fresh notification; it must never re-enter HandleUpdate
	// synchronously from inside a notification that is still processing.
	Dispatch(tx *edit.Transaction)
}

// Update is one notification from the host: the transactions applied since
// the last notification, in application order.
type Update struct {
	Transactions []*edit.Transaction
}
