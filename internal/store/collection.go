// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

// Collection is a read-only synchronized membership set. Its mirror changes
// only through UpdateStore.
type Collection[ID comparable] struct {
	notifier

	name     string
	source   Source[ID]
	members  *memberSet[ID]
	status   status
	messages Messages

	logger  *logger.Logger
	metrics *Metrics
}

// NewCollection returns an empty collection named name backed by source.
func NewCollection[ID comparable](name string, source Source[ID], messages Messages, opts ...Option) *Collection[ID] {
	o := buildOptions(opts)

	return &Collection[ID]{
		name:     name,
		source:   source,
		members:  newMemberSet[ID](),
		messages: messages,
		logger:   o.logger.WithStr("store", name),
		metrics:  o.metrics,
	}
}

// Name returns the collection name used in events, logs and metrics.
func (c *Collection[ID]) Name() string {
	return c.name
}

// UpdateStore replaces the mirror with the server listing. On failure the
// mirror is left untouched, the refresh message is recorded and the
// underlying error is returned.
func (c *Collection[ID]) UpdateStore(ctx context.Context) error {
	c.notify(c.name, c.status.begin()...)
	defer func() {
		c.notify(c.name, c.status.end()...)
	}()

	started := time.Now()
	ids, err := c.source.Fetch(ctx)
	c.metrics.observe(c.name, opRefresh, err, started)
	if err != nil {
		c.logger.Err(err).Msg("failed to update store")
		c.notify(c.name, c.status.fail(c.messages.Refresh)...)
		return fmt.Errorf("update %s: %w", c.name, err)
	}

	c.members.replace(ids)
	c.logger.Debug().Int("members", len(ids)).Msg("store updated")
	c.notify(c.name, EventMembers)
	return nil
}

// Has reports whether id is in the local mirror. It never contacts the server.
func (c *Collection[ID]) Has(id ID) bool {
	return c.members.has(id)
}

// Members returns a snapshot of the mirror in no particular order.
func (c *Collection[ID]) Members() []ID {
	return c.members.snapshot()
}

// Len returns the mirror size.
func (c *Collection[ID]) Len() int {
	return c.members.len()
}

// Status returns the loading flag and last error together.
func (c *Collection[ID]) Status() Status {
	return c.status.get()
}

// Loading reports whether a refresh is in flight.
func (c *Collection[ID]) Loading() bool {
	return c.status.get().Loading
}

// LastError returns the message of the most recent failure, or "".
func (c *Collection[ID]) LastError() string {
	return c.status.get().Error
}
