// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
)

func validMutation() models.CollectionMutation {
	return models.CollectionMutation{UserID: 1, Collection: models.CollectionCart, BookID: "42"}
}

func TestCollectionValidator_Validate(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid mutation", obj: validMutation()},
		{name: "valid mutation pointer", obj: func() *models.CollectionMutation { m := validMutation(); return &m }()},
		{name: "known collection", obj: models.CollectionBought},
		{name: "unknown collection", obj: models.Collection("saved"), wantErr: ErrUnknownCollection},
		{
			name:    "zero user",
			obj:     models.CollectionMutation{Collection: models.CollectionCart, BookID: "42"},
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "unknown collection in mutation",
			obj:     models.CollectionMutation{UserID: 1, Collection: "saved", BookID: "42"},
			wantErr: ErrUnknownCollection,
		},
		{
			name:    "bought is read-only",
			obj:     models.CollectionMutation{UserID: 1, Collection: models.CollectionBought, BookID: "42"},
			wantErr: ErrReadOnlyCollection,
		},
		{
			name:    "empty book id",
			obj:     models.CollectionMutation{UserID: 1, Collection: models.CollectionWishlist},
			wantErr: ErrEmptyItemID,
		},
		{
			name:   "fields restrict the checks",
			obj:    models.CollectionMutation{Collection: models.CollectionBought, BookID: "42"},
			fields: []string{FieldCollection, FieldBookID},
		},
		{name: "unknown field", obj: validMutation(), fields: []string{"price"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
