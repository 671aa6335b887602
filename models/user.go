// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the authenticated identity returned by the "who am I" endpoint.
// A zero User is never stored by the client; absence is modelled by the
// Identity store itself.
type User struct {
	// ID is the server-assigned numeric identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// Email is the address the identity provider reported for the user.
	Email string `json:"email"`

	// Avatar is an optional URL of the user's profile picture.
	Avatar *string `json:"avatar,omitempty"`
}
