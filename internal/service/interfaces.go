package service

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

// StorefrontService owns the per-user membership sets served by the
// development backend.
type StorefrontService interface {
	// List returns the members of c in insertion order.
	List(ctx context.Context, userID int64, c models.Collection) ([]models.CollectionItem, error)

	// Add inserts bookID into a mutable collection. Adding a member twice is
	// not an error.
	Add(ctx context.Context, userID int64, c models.Collection, bookID string) error

	// Remove erases bookID from a mutable collection. Removing an absent
	// member is not an error.
	Remove(ctx context.Context, userID int64, c models.Collection, bookID string) error

	// Checkout moves every cart member into bought and returns what moved.
	Checkout(ctx context.Context, userID int64) ([]models.CollectionItem, error)
}

// AuthService signs in the development account and manages session tokens.
type AuthService interface {
	// DevUser returns the account every sign-in resolves to.
	DevUser(ctx context.Context) models.User
	// User resolves a user ID carried by a session.
	User(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
