// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// IdentityName is the event source name of the identity store.
const IdentityName = "identity"

// Identity holds the signed-in user, if any. It starts in the loading state
// until the first CheckAuth completes.
type Identity struct {
	notifier

	source      IdentitySource
	navigator   Navigator
	credentials CredentialStore
	loginURL    string

	mu       sync.RWMutex
	user     *models.User
	inflight int
	loading  bool

	logger  *logger.Logger
	metrics *Metrics
}

// NewIdentity returns an identity with no user and loading set.
func NewIdentity(source IdentitySource, navigator Navigator, credentials CredentialStore, loginURL string, opts ...Option) *Identity {
	o := buildOptions(opts)

	return &Identity{
		source:      source,
		navigator:   navigator,
		credentials: credentials,
		loginURL:    loginURL,
		loading:     true,
		logger:      o.logger.WithStr("store", IdentityName),
		metrics:     o.metrics,
	}
}

// CheckAuth asks the server who the current user is. Any failure means "not
// signed in": the user is cleared and nothing is returned to the caller.
func (i *Identity) CheckAuth(ctx context.Context) {
	i.notify(IdentityName, i.begin()...)
	defer func() {
		i.notify(IdentityName, i.end()...)
	}()

	started := time.Now()
	user, err := i.source.CurrentUser(ctx)
	i.metrics.observe(IdentityName, opCheckAuth, err, started)
	if err != nil {
		i.logger.Debug().Err(err).Msg("no authenticated user")
		i.notify(IdentityName, i.setUser(nil)...)
		return
	}

	i.notify(IdentityName, i.setUser(&user)...)
}

// SignInWithGoogle navigates to the OAuth entry point. The backend owns the
// rest of the flow; the identity is populated by a later CheckAuth.
func (i *Identity) SignInWithGoogle(ctx context.Context) error {
	if err := i.navigator.Navigate(ctx, i.loginURL); err != nil {
		i.logger.Err(err).Str("url", i.loginURL).Msg("failed to navigate to sign-in")
		return fmt.Errorf("sign in: %w", err)
	}
	return nil
}

// SignOut clears the user and expires every locally held credential. It does
// not contact the server.
func (i *Identity) SignOut() {
	i.notify(IdentityName, i.setUser(nil)...)
	i.credentials.Invalidate()
	i.logger.Info().Msg("signed out")
}

// User returns the signed-in user and true, or the zero user and false.
func (i *Identity) User() (models.User, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.user == nil {
		return models.User{}, false
	}
	return *i.user, true
}

// Authenticated reports whether a user is present.
func (i *Identity) Authenticated() bool {
	_, ok := i.User()
	return ok
}

// Loading reports whether the identity is still being determined.
func (i *Identity) Loading() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.loading
}

func (i *Identity) begin() []EventKind {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.inflight++
	if i.loading {
		return nil
	}
	i.loading = true
	return []EventKind{EventLoading}
}

func (i *Identity) end() []EventKind {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.inflight > 0 {
		i.inflight--
	}
	if i.inflight == 0 && i.loading {
		i.loading = false
		return []EventKind{EventLoading}
	}
	return nil
}

func (i *Identity) setUser(user *models.User) []EventKind {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.user == nil && user == nil {
		return nil
	}
	i.user = user
	return []EventKind{EventUser}
}
