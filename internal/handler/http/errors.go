// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session middleware. Callers can match against
// them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the request carries no session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrEmptySessionCookie is returned when the session cookie is present
	// but has an empty value.
	ErrEmptySessionCookie = errors.New("empty session cookie")
)
