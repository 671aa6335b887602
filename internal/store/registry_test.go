// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRegistry(t *testing.T, ctrl *gomock.Controller) (*Registry, *mock.MockStorefrontAdapter, *mock.MockCredentialStore) {
	t.Helper()
	a := mock.NewMockStorefrontAdapter(ctrl)
	creds := mock.NewMockCredentialStore(ctrl)
	a.EXPECT().LoginURL().Return(testLoginURL)

	return NewRegistry(a, creds), a, creds
}

func items(ids ...string) []models.CollectionItem {
	out := make([]models.CollectionItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.CollectionItem{BookID: id})
	}
	return out
}

func TestRegistry_Refresh_SignedOutSkipsCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, a, _ := newTestRegistry(t, ctrl)

	a.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)

	require.NoError(t, reg.Refresh(context.Background()))
	assert.False(t, reg.Identity.Authenticated())
	assert.False(t, reg.Identity.Loading())
}

func TestRegistry_Refresh_SignedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, a, _ := newTestRegistry(t, ctrl)

	a.EXPECT().CurrentUser(gomock.Any()).Return(models.User{ID: 1}, nil)
	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionWishlist).Return(items("w1"), nil)
	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionCart).Return(items("a", "b"), nil)
	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionBought).Return(items(), nil)

	require.NoError(t, reg.Refresh(context.Background()))
	assert.Equal(t, []string{"w1"}, reg.Wishlist.Members())
	assert.ElementsMatch(t, []string{"a", "b"}, reg.Cart.Members())
	assert.Zero(t, reg.Bought.Len())
}

func TestRegistry_Refresh_JoinsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, a, _ := newTestRegistry(t, ctrl)

	a.EXPECT().CurrentUser(gomock.Any()).Return(models.User{ID: 1}, nil)
	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionWishlist).Return(nil, adapter.ErrInternalServerError)
	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionCart).Return(items("a"), nil)
	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionBought).Return(nil, adapter.ErrBadGateway)

	err := reg.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)

	assert.Equal(t, []string{"a"}, reg.Cart.Members(), "collections are independent")
	assert.NotEmpty(t, reg.Wishlist.LastError())
	assert.Empty(t, reg.Cart.LastError())
}

func TestRegistry_Mutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, a, _ := newTestRegistry(t, ctrl)
	ctx := context.Background()

	a.EXPECT().AddToCollection(gomock.Any(), models.CollectionCart, "42").Return(nil)
	a.EXPECT().RemoveFromCollection(gomock.Any(), models.CollectionWishlist, "7").Return(nil)

	require.NoError(t, reg.Cart.Toggle(ctx, "42"))
	require.NoError(t, reg.Wishlist.Remove(ctx, "7"))
	assert.True(t, reg.Cart.Has("42"))
	assert.False(t, reg.Wishlist.Has("42"))
}

func TestRegistry_SignInAndOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, a, creds := newTestRegistry(t, ctrl)

	a.EXPECT().Navigate(gomock.Any(), testLoginURL).Return(nil)
	creds.EXPECT().Invalidate()

	require.NoError(t, reg.Identity.SignInWithGoogle(context.Background()))
	reg.Identity.SignOut()
}

func TestRegistry_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, _, _ := newTestRegistry(t, ctrl)

	m, ok := reg.Mutable(models.CollectionCart)
	require.True(t, ok)
	assert.Same(t, reg.Cart, m)

	_, ok = reg.Mutable(models.CollectionBought)
	assert.False(t, ok)

	c, ok := reg.Collection(models.CollectionBought)
	require.True(t, ok)
	assert.Same(t, reg.Bought, c)

	c, ok = reg.Collection(models.CollectionWishlist)
	require.True(t, ok)
	assert.Same(t, reg.Wishlist.Collection, c)

	_, ok = reg.Collection(models.Collection("saved"))
	assert.False(t, ok)
}

func TestRegistry_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, a, _ := newTestRegistry(t, ctrl)

	sources := map[string]bool{}
	cancel := reg.Subscribe(func(e Event) { sources[e.Source] = true })

	a.EXPECT().CurrentUser(gomock.Any()).Return(models.User{ID: 1}, nil)
	a.EXPECT().FetchCollection(gomock.Any(), gomock.Any()).Return(items("x"), nil).Times(3)
	require.NoError(t, reg.Refresh(context.Background()))

	assert.Equal(t, map[string]bool{"identity": true, "wishlist": true, "cart": true, "bought": true}, sources)

	cancel()
	clear(sources)
	a.EXPECT().AddToCollection(gomock.Any(), models.CollectionCart, "y").Return(nil)
	require.NoError(t, reg.Cart.Add(context.Background(), "y"))
	assert.Empty(t, sources)
}

func TestCollectionSource_Fetch_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockStorefrontAdapter(ctrl)
	src := NewCollectionSource(a, models.CollectionCart)

	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionCart).Return(nil, errors.New("boom"))

	ids, err := src.Fetch(context.Background())
	assert.Error(t, err)
	assert.Nil(t, ids)
}

func TestCollectionSource_Fetch_SkipsEmptyIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockStorefrontAdapter(ctrl)
	src := NewCollectionSource(a, models.CollectionWishlist)

	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionWishlist).Return(items("a", "", "b", ""), nil)

	ids, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestRegistry_Refresh_EmptyIDsNeverReachTheMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, a, _ := newTestRegistry(t, ctrl)
	ctx := context.Background()

	a.EXPECT().CurrentUser(gomock.Any()).Return(models.User{ID: 1}, nil)
	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionWishlist).Return(items(""), nil)
	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionCart).Return(items("", "c"), nil)
	a.EXPECT().FetchCollection(gomock.Any(), models.CollectionBought).Return(nil, nil)

	require.NoError(t, reg.Refresh(ctx))

	assert.Equal(t, 0, reg.Wishlist.Len())
	assert.False(t, reg.Cart.Has(""))
	assert.Equal(t, []string{"c"}, reg.Cart.Members())

	a.EXPECT().RemoveFromCollection(gomock.Any(), models.CollectionCart, "c").Return(nil)
	require.NoError(t, reg.Cart.Toggle(ctx, "c"))
	assert.Equal(t, 0, reg.Cart.Len())
}

func TestRegistry_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, a, _ := newTestRegistry(t, ctrl)
	ctx := context.Background()

	a.EXPECT().AddToCollection(gomock.Any(), models.CollectionCart, "a").Return(nil)
	require.NoError(t, reg.Cart.Add(ctx, "a"))

	gomock.InOrder(
		a.EXPECT().Checkout(gomock.Any()).Return(nil),
		a.EXPECT().FetchCollection(gomock.Any(), models.CollectionCart).Return(nil, nil),
		a.EXPECT().FetchCollection(gomock.Any(), models.CollectionBought).Return(items("a"), nil),
	)

	require.NoError(t, reg.Checkout(ctx))
	assert.Equal(t, 0, reg.Cart.Len())
	assert.Equal(t, []string{"a"}, reg.Bought.Members())
}

func TestRegistry_Checkout_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg, a, _ := newTestRegistry(t, ctrl)
	ctx := context.Background()

	a.EXPECT().AddToCollection(gomock.Any(), models.CollectionCart, "a").Return(nil)
	require.NoError(t, reg.Cart.Add(ctx, "a"))

	a.EXPECT().Checkout(gomock.Any()).Return(adapter.ErrUnauthorized)

	err := reg.Checkout(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, []string{"a"}, reg.Cart.Members())
	assert.Equal(t, 0, reg.Bought.Len())
}
