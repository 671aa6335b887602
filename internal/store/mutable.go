// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"
)

// MutableCollection is a Collection that also supports per-item mutations.
// The mirror is changed only after the server confirmed the mutation.
type MutableCollection[ID comparable] struct {
	*Collection[ID]

	mutable MutableSource[ID]
}

// NewMutableCollection returns an empty mutable collection backed by source.
func NewMutableCollection[ID comparable](name string, source MutableSource[ID], messages Messages, opts ...Option) *MutableCollection[ID] {
	return &MutableCollection[ID]{
		Collection: NewCollection[ID](name, source, messages, opts...),
		mutable:    source,
	}
}

// Add inserts id on the server and then in the mirror. The loading flag is
// not touched.
func (m *MutableCollection[ID]) Add(ctx context.Context, id ID) error {
	if isZero(id) {
		return ErrInvalidID
	}
	m.notify(m.name, m.status.clearError()...)

	started := time.Now()
	err := m.mutable.Add(ctx, id)
	m.metrics.observe(m.name, opAdd, err, started)
	if err != nil {
		m.logger.Err(err).Any("id", id).Msg("failed to add item")
		m.notify(m.name, m.status.fail(m.messages.Add)...)
		return fmt.Errorf("add %v to %s: %w", id, m.name, err)
	}

	if m.members.insert(id) {
		m.notify(m.name, EventMembers)
	}
	return nil
}

// Remove erases id on the server and then from the mirror.
func (m *MutableCollection[ID]) Remove(ctx context.Context, id ID) error {
	if isZero(id) {
		return ErrInvalidID
	}
	m.notify(m.name, m.status.clearError()...)

	started := time.Now()
	err := m.mutable.Remove(ctx, id)
	m.metrics.observe(m.name, opRemove, err, started)
	if err != nil {
		m.logger.Err(err).Any("id", id).Msg("failed to remove item")
		m.notify(m.name, m.status.fail(m.messages.Remove)...)
		return fmt.Errorf("remove %v from %s: %w", id, m.name, err)
	}

	if m.members.erase(id) {
		m.notify(m.name, EventMembers)
	}
	return nil
}

// Toggle removes id when the mirror holds it and adds it otherwise. The
// decision uses the mirror as of the call; it is not re-checked against the
// server.
func (m *MutableCollection[ID]) Toggle(ctx context.Context, id ID) error {
	if m.Has(id) {
		return m.Remove(ctx, id)
	}
	return m.Add(ctx, id)
}

func isZero[ID comparable](id ID) bool {
	var zero ID
	return id == zero
}
