// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// collectionSource exposes one collection of a StorefrontAdapter as a
// MutableSource of book identifiers.
type collectionSource struct {
	adapter    adapter.StorefrontAdapter
	collection models.Collection
	logger     *logger.Logger
}

// NewCollectionSource binds the adapter to collection c. Only WithLogger
// applies to a source.
func NewCollectionSource(a adapter.StorefrontAdapter, c models.Collection, opts ...Option) MutableSource[string] {
	o := buildOptions(opts)
	return &collectionSource{
		adapter:    a,
		collection: c,
		logger:     o.logger.WithStr("source", c.String()),
	}
}

func (s *collectionSource) Fetch(ctx context.Context) ([]string, error) {
	items, err := s.adapter.FetchCollection(ctx, s.collection)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for i, item := range items {
		if item.BookID == "" {
			s.logger.Debug().Int("index", i).Msg("skipping listing record without book_id")
			continue
		}
		ids = append(ids, item.BookID)
	}
	return ids, nil
}

func (s *collectionSource) Add(ctx context.Context, id string) error {
	return s.adapter.AddToCollection(ctx, s.collection, id)
}

func (s *collectionSource) Remove(ctx context.Context, id string) error {
	return s.adapter.RemoveFromCollection(ctx, s.collection, id)
}
