// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/models"
)

// Registry owns one instance of every store for the lifetime of the client.
// Stores are independent; the registry only groups them.
type Registry struct {
	Wishlist *MutableCollection[string]
	Cart     *MutableCollection[string]
	Bought   *Collection[string]
	Identity *Identity

	adapter adapter.StorefrontAdapter
}

// NewRegistry builds every store on top of a single adapter.
func NewRegistry(a adapter.StorefrontAdapter, credentials CredentialStore, opts ...Option) *Registry {
	return &Registry{
		Wishlist: NewMutableCollection(
			models.CollectionWishlist.String(),
			NewCollectionSource(a, models.CollectionWishlist, opts...),
			MessagesFor(models.CollectionWishlist),
			opts...,
		),
		Cart: NewMutableCollection(
			models.CollectionCart.String(),
			NewCollectionSource(a, models.CollectionCart, opts...),
			MessagesFor(models.CollectionCart),
			opts...,
		),
		Bought: NewCollection[string](
			models.CollectionBought.String(),
			NewCollectionSource(a, models.CollectionBought, opts...),
			MessagesFor(models.CollectionBought),
			opts...,
		),
		Identity: NewIdentity(a, a, credentials, a.LoginURL(), opts...),
		adapter:  a,
	}
}

// Checkout asks the backend to move the cart into bought and, once it has,
// reloads Cart and Bought. A failed checkout leaves both mirrors untouched.
func (r *Registry) Checkout(ctx context.Context) error {
	if err := r.adapter.Checkout(ctx); err != nil {
		return fmt.Errorf("checkout: %w", err)
	}

	return errors.Join(r.Cart.UpdateStore(ctx), r.Bought.UpdateStore(ctx))
}

// Refresh determines the current user and, when one is signed in, reloads
// every collection. Collection failures are joined; identity failures are
// not errors.
func (r *Registry) Refresh(ctx context.Context) error {
	r.Identity.CheckAuth(ctx)
	if !r.Identity.Authenticated() {
		return nil
	}

	var errs []error
	for _, c := range []interface{ UpdateStore(context.Context) error }{r.Wishlist, r.Cart, r.Bought} {
		if err := c.UpdateStore(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Mutable returns the mutable collection for c.
func (r *Registry) Mutable(c models.Collection) (*MutableCollection[string], bool) {
	switch c {
	case models.CollectionWishlist:
		return r.Wishlist, true
	case models.CollectionCart:
		return r.Cart, true
	}
	return nil, false
}

// Collection returns the read side of c.
func (r *Registry) Collection(c models.Collection) (*Collection[string], bool) {
	if m, ok := r.Mutable(c); ok {
		return m.Collection, true
	}
	if c == models.CollectionBought {
		return r.Bought, true
	}
	return nil, false
}

// Subscribe registers fn on every store. The returned function removes it
// from all of them.
func (r *Registry) Subscribe(fn Listener) (cancel func()) {
	cancels := []func(){
		r.Wishlist.Subscribe(fn),
		r.Cart.Subscribe(fn),
		r.Bought.Subscribe(fn),
		r.Identity.Subscribe(fn),
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}
