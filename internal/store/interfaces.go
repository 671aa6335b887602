// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps small server-held membership sets (wishlist, cart,
// purchases) and the signed-in identity consistent between an in-memory
// local mirror and the storefront API.
//
// Every collection follows one pattern: a full refresh that replaces the
// mirror with the server listing, and, for mutable collections, per-item
// mutations that update the mirror only after the server confirms them.
// Operations on one collection are not serialized against each other; only
// individual reads and writes of the mirror are atomic.
package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Source is the remote read side of a collection.
type Source[ID comparable] interface {
	// Fetch returns the identifiers of every member the server holds.
	Fetch(ctx context.Context) ([]ID, error)
}

// MutableSource is a Source whose membership can be changed per item.
type MutableSource[ID comparable] interface {
	Source[ID]

	// Add asks the server to insert id. Success means the server accepted it.
	Add(ctx context.Context, id ID) error

	// Remove asks the server to erase id.
	Remove(ctx context.Context, id ID) error
}

// IdentitySource is the remote "who am I" read.
type IdentitySource interface {
	CurrentUser(ctx context.Context) (models.User, error)
}

// Navigator performs the browser-style redirect of the sign-in flow.
type Navigator interface {
	Navigate(ctx context.Context, rawURL string) error
}

// CredentialStore is the session credential material held by the client.
type CredentialStore interface {
	// Invalidate expires every credential the client has access to.
	Invalidate()
}
