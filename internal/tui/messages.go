package tui

import "github.com/MKhiriev/go-storefront/internal/store"

// storeChangedMsg is sent from store listeners into the program loop.
type storeChangedMsg struct {
	event store.Event
}

// opDoneMsg reports the outcome of a remote operation started from a key.
type opDoneMsg struct {
	label string
	err   error
}

type copiedMsg struct {
	id  string
	err error
}
