package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/store"
)

func snapshot(id string) models.ProductSnapshot {
	return models.ProductSnapshot{ID: id, Title: "상품 " + id, OriginalPrice: 10000}
}

func TestWishlistAddDedupes(t *testing.T) {
	w := NewWishlist(store.NewMemory())

	assert.True(t, w.Add(snapshot("prod-001")))
	assert.False(t, w.Add(snapshot("prod-001")), "duplicate id is a no-op")
	assert.Len(t, w.Items(), 1)

	assert.True(t, w.Add(snapshot("prod-002")))
	assert.Len(t, w.Items(), 2)
	assert.True(t, w.Contains("prod-001"))
	assert.True(t, w.Contains("prod-002"))
}

func TestWishlistRemove(t *testing.T) {
	w := NewWishlist(store.NewMemory())
	w.Add(snapshot("prod-001"))

	assert.False(t, w.Remove("prod-999"), "removing a non-member is a no-op")
	assert.Len(t, w.Items(), 1)

	assert.True(t, w.Remove("prod-001"))
	assert.Empty(t, w.Items())
	assert.False(t, w.Contains("prod-001"))
}

func TestWishlistClear(t *testing.T) {
	w := NewWishlist(store.NewMemory())
	w.Add(snapshot("prod-001"))
	w.Add(snapshot("prod-002"))

	w.Clear()
	assert.Empty(t, w.Items())
}

func TestWishlistPersistsAcrossRestart(t *testing.T) {
	kv := store.NewMemory()

	first := NewWishlist(kv)
	first.Add(snapshot("prod-001"))
	first.Add(snapshot("prod-002"))

	second := NewWishlist(kv)
	items := second.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "prod-001", items[0].ID)
	assert.Equal(t, "prod-002", items[1].ID)
}

func TestWishlistCorruptStateYieldsEmpty(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set("wishlist", "not json"))

	w := NewWishlist(kv)
	assert.Empty(t, w.Items())

	_, ok := kv.Get("wishlist")
	assert.False(t, ok, "corrupt entry removed")
}
