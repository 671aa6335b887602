// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Mutable(t *testing.T) {
	assert.True(t, CollectionWishlist.Mutable())
	assert.True(t, CollectionCart.Mutable())
	assert.False(t, CollectionBought.Mutable())
	assert.False(t, Collection("orders").Mutable())
}

func TestCollection_Valid(t *testing.T) {
	for _, c := range []Collection{CollectionWishlist, CollectionCart, CollectionBought} {
		assert.True(t, c.Valid(), c.String())
	}
	assert.False(t, Collection("").Valid())
	assert.False(t, Collection("orders").Valid())
}

func TestCollectionItem_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []CollectionItem
		wantErr error
	}{
		{name: "strings", body: `[{"book_id":"a"},{"book_id":"b"}]`, want: []CollectionItem{{BookID: "a"}, {BookID: "b"}}},
		{name: "numbers", body: `[{"book_id":42},{"book_id":"b"}]`, want: []CollectionItem{{BookID: "42"}, {BookID: "b"}}},
		{name: "large and fractional numbers", body: `[{"book_id":9007199254740993},{"book_id":1.5}]`, want: []CollectionItem{{BookID: "9007199254740993"}, {BookID: "1.5"}}},
		{name: "extra fields ignored", body: `[{"book_id":7,"title":"x"}]`, want: []CollectionItem{{BookID: "7"}}},
		{name: "missing and null", body: `[{},{"book_id":null}]`, want: []CollectionItem{{}, {}}},
		{name: "bool", body: `[{"book_id":true}]`, wantErr: ErrInvalidBookID},
		{name: "object", body: `[{"book_id":{"id":1}}]`, wantErr: ErrInvalidBookID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []CollectionItem
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectionItem_MarshalKeepsString(t *testing.T) {
	out, err := json.Marshal(CollectionItem{BookID: "42"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"book_id":"42"}`, string(out))
}
