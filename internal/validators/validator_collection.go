package validators

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

const (
	FieldUserID     = "user_id"
	FieldCollection = "collection"
	FieldMutable    = "mutable"
	FieldBookID     = "book_id"
)

type CollectionValidator struct {
}

func NewCollectionValidator() Validator {
	return &CollectionValidator{}
}

// Validate accepts a [models.Collection] or a [models.CollectionMutation].
// A bare collection is only checked for being known.
func (v *CollectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Collection:
		return v.validateCollection(value)

	case models.CollectionMutation:
		return v.validateMutation(ctx, value, fields...)
	case *models.CollectionMutation:
		return v.validateMutation(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CollectionValidator) validateCollection(c models.Collection) error {
	if !c.Valid() {
		return ErrUnknownCollection
	}
	return nil
}

func (v *CollectionValidator) validateMutation(_ context.Context, m models.CollectionMutation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCollection, FieldMutable, FieldBookID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if m.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldCollection:
			if err := v.validateCollection(m.Collection); err != nil {
				return err
			}
		case FieldMutable:
			if !m.Collection.Mutable() {
				return ErrReadOnlyCollection
			}
		case FieldBookID:
			if m.BookID == "" {
				return ErrEmptyItemID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
