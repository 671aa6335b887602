// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []models.CollectionItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.BookID)
	}
	return out
}

func TestStorefrontService_AddListRemove(t *testing.T) {
	svc := NewStorefrontService(validators.NewCollectionValidator(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 1, models.CollectionCart, "b"))
	require.NoError(t, svc.Add(ctx, 1, models.CollectionCart, "a"))
	require.NoError(t, svc.Add(ctx, 1, models.CollectionCart, "b"))

	items, err := svc.List(ctx, 1, models.CollectionCart)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(items), "insertion order, no duplicates")

	require.NoError(t, svc.Remove(ctx, 1, models.CollectionCart, "b"))
	require.NoError(t, svc.Remove(ctx, 1, models.CollectionCart, "missing"))

	items, err = svc.List(ctx, 1, models.CollectionCart)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(items))
}

func TestStorefrontService_EmptyListIsNotNil(t *testing.T) {
	svc := NewStorefrontService(validators.NewCollectionValidator(), logger.Nop())

	items, err := svc.List(context.Background(), 9, models.CollectionWishlist)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestStorefrontService_UsersAreIsolated(t *testing.T) {
	svc := NewStorefrontService(validators.NewCollectionValidator(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 1, models.CollectionWishlist, "x"))

	items, err := svc.List(ctx, 2, models.CollectionWishlist)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorefrontService_MutationErrors(t *testing.T) {
	svc := NewStorefrontService(validators.NewCollectionValidator(), logger.Nop())
	ctx := context.Background()

	tests := []struct {
		name       string
		collection models.Collection
		bookID     string
		wantErr    error
	}{
		{name: "bought is read-only", collection: models.CollectionBought, bookID: "a", wantErr: ErrReadOnlyCollection},
		{name: "unknown collection", collection: models.Collection("saved"), bookID: "a", wantErr: ErrUnknownCollection},
		{name: "empty id", collection: models.CollectionCart, bookID: "", wantErr: ErrEmptyItemID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Add(ctx, 1, tt.collection, tt.bookID), tt.wantErr)
			assert.ErrorIs(t, svc.Remove(ctx, 1, tt.collection, tt.bookID), tt.wantErr)
		})
	}

	_, err := svc.List(ctx, 1, models.Collection("saved"))
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestStorefrontService_Checkout(t *testing.T) {
	svc := NewStorefrontService(validators.NewCollectionValidator(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 1, models.CollectionCart, "a"))
	require.NoError(t, svc.Add(ctx, 1, models.CollectionCart, "b"))

	moved, err := svc.Checkout(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(moved))

	cart, _ := svc.List(ctx, 1, models.CollectionCart)
	bought, _ := svc.List(ctx, 1, models.CollectionBought)
	assert.Empty(t, cart)
	assert.Equal(t, []string{"a", "b"}, ids(bought))

	moved, err = svc.Checkout(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, moved)
}

func TestStorefrontService_Concurrent(t *testing.T) {
	svc := NewStorefrontService(validators.NewCollectionValidator(), logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Add(ctx, 1, models.CollectionCart, "a")
			_, _ = svc.List(ctx, 1, models.CollectionCart)
			_ = svc.Remove(ctx, 1, models.CollectionCart, "a")
		}()
	}
	wg.Wait()
}
