// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"sync"
)

// EventKind tells a listener which part of the state changed.
type EventKind int

const (
	// EventLoading fires when the loading flag flips.
	EventLoading EventKind = iota + 1
	// EventMembers fires when the local mirror changed.
	EventMembers
	// EventError fires when the last-error message was set or cleared.
	EventError
	// EventUser fires when the authenticated identity changed.
	EventUser
)

func (k EventKind) String() string {
	switch k {
	case EventLoading:
		return "loading"
	case EventMembers:
		return "members"
	case EventError:
		return "error"
	case EventUser:
		return "user"
	}
	return "unknown"
}

// Event describes a state change of one store.
type Event struct {
	// Source is the name of the store that changed ("cart", "identity", ...).
	Source string
	Kind   EventKind
}

// Listener receives events synchronously, after the change is applied and
// outside of any internal lock. It may read the store that notified it.
type Listener func(Event)

type notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is safe.
func (n *notifier) Subscribe(fn Listener) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.listeners == nil {
		n.listeners = make(map[int]Listener)
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// notify calls every listener in subscription order.
func (n *notifier) notify(source string, kinds ...EventKind) {
	if len(kinds) == 0 {
		return
	}

	n.mu.Lock()
	ids := make([]int, 0, len(n.listeners))
	for id := range n.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, n.listeners[id])
	}
	n.mu.Unlock()

	for _, kind := range kinds {
		for _, fn := range listeners {
			fn(Event{Source: source, Kind: kind})
		}
	}
}
