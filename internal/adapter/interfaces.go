// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the storefront API.
//
// The primary abstraction is [StorefrontAdapter], which decouples the
// synchronization layer from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPStorefrontAdapter]) built on resty.
//
// Every failed call wraps [ErrTransport]; status-specific sentinels such as
// [ErrUnauthorized] are joined to it by mapHTTPError so that callers can use
// [errors.Is] for either the general or the specific case.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storefront_adapter_mock.go -package=mock

// StorefrontAdapter defines transport-agnostic communication with the
// storefront API. All requests carry the ambient session credentials.
type StorefrontAdapter interface {
	// FetchCollection reads the full listing of collection c.
	FetchCollection(ctx context.Context, c models.Collection) ([]models.CollectionItem, error)

	// AddToCollection asks the server to insert bookID into c. The response
	// body is ignored; any non-2xx status is a failure.
	// Returns [ErrReadOnlyCollection] for collections the client can't mutate.
	AddToCollection(ctx context.Context, c models.Collection, bookID string) error

	// RemoveFromCollection asks the server to erase bookID from c.
	// Returns [ErrReadOnlyCollection] for collections the client can't mutate.
	RemoveFromCollection(ctx context.Context, c models.Collection, bookID string) error

	// Checkout asks the server to move every cart member into bought. The
	// response body is ignored.
	Checkout(ctx context.Context) error

	// CurrentUser reads the authenticated identity ("who am I").
	CurrentUser(ctx context.Context) (models.User, error)

	// LoginURL returns the absolute URL of the identity provider's sign-in
	// entry point.
	LoginURL() string

	// Navigate follows rawURL the way a browser would, with the session
	// credentials attached and redirects followed, so that cookies set
	// along the way land in the shared jar.
	Navigate(ctx context.Context, rawURL string) error
}
