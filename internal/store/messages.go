// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-storefront/models"

// Messages are the fixed user-facing texts recorded when an operation fails.
type Messages struct {
	Refresh string
	Add     string
	Remove  string
}

// MessagesFor returns the messages shown for failures on c.
func MessagesFor(c models.Collection) Messages {
	switch c {
	case models.CollectionWishlist:
		return Messages{
			Refresh: "Failed to fetch wishlist. Please try again.",
			Add:     "Failed to add to wishlist. Please try again.",
			Remove:  "Failed to remove from wishlist. Please try again.",
		}
	case models.CollectionCart:
		return Messages{
			Refresh: "Failed to fetch cart. Please try again.",
			Add:     "Failed to add to cart. Please try again.",
			Remove:  "Failed to remove from cart. Please try again.",
		}
	case models.CollectionBought:
		return Messages{
			Refresh: "Failed to fetch bought. Please try again.",
		}
	}
	return Messages{
		Refresh: "Failed to fetch " + c.String() + ". Please try again.",
		Add:     "Failed to add to " + c.String() + ". Please try again.",
		Remove:  "Failed to remove from " + c.String() + ". Please try again.",
	}
}
