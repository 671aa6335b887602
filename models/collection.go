// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidBookID is returned when a listing record's book_id is neither a
// JSON string nor a JSON number.
var ErrInvalidBookID = errors.New("book_id must be a string or a number")

// Collection names one of the server-held membership sets.
// Its string value is the path segment used by the storefront API.
type Collection string

const (
	// CollectionWishlist is the set of items the user has wishlisted.
	CollectionWishlist Collection = "wishlist"
	// CollectionCart is the set of items currently in the user's cart.
	CollectionCart Collection = "cart"
	// CollectionBought is the read-only set of items the user has purchased.
	CollectionBought Collection = "bought"
)

// String implements [fmt.Stringer].
func (c Collection) String() string {
	return string(c)
}

// Mutable reports whether members can be added to or removed from c by the
// client. Purchases are recorded by checkout only.
func (c Collection) Mutable() bool {
	return c == CollectionWishlist || c == CollectionCart
}

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	switch c {
	case CollectionWishlist, CollectionCart, CollectionBought:
		return true
	}
	return false
}

// CollectionItem is a single record of a collection listing. Only the item
// identifier carries meaning for membership.
type CollectionItem struct {
	BookID string `json:"book_id"`
}

// UnmarshalJSON accepts book_id as a JSON string or a JSON number. Numbers
// keep their literal text, so 42 becomes "42". A missing or null book_id
// leaves BookID empty.
func (i *CollectionItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		BookID json.RawMessage `json:"book_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := bookIDFromJSON(raw.BookID)
	if err != nil {
		return err
	}
	i.BookID = id
	return nil
}

func bookIDFromJSON(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidBookID, raw)
	}
	return n.String(), nil
}

// CollectionMutation asks the backend to add or remove one member of a
// user's collection.
type CollectionMutation struct {
	UserID     int64
	Collection Collection
	BookID     string
}
