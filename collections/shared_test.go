package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/store"
)

func TestSharedItemsPrependWithFreshIDs(t *testing.T) {
	sh := NewSharedItems(store.NewMemory())

	first := sh.Add("무선 이어폰", "https://item.taobao.com/1", "Taobao")
	second := sh.Add("무선 이어폰", "https://item.taobao.com/1", "Taobao")

	// Sharing the same product twice still records two entries.
	items := sh.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, second.ID, items[0].ID, "newest first")
	assert.False(t, items[0].SharedAt.Before(items[1].SharedAt))
}

func TestSharedItemsRemoveAndClear(t *testing.T) {
	sh := NewSharedItems(store.NewMemory())
	item := sh.Add("상품", "https://example.com/1", "기타 쇼핑몰")

	assert.False(t, sh.Remove("missing"))
	assert.True(t, sh.Remove(item.ID))
	assert.Empty(t, sh.Items())

	sh.Add("상품", "https://example.com/1", "기타 쇼핑몰")
	sh.Clear()
	assert.Empty(t, sh.Items())
}

func TestSharedItemsPersistAcrossRestart(t *testing.T) {
	kv := store.NewMemory()

	first := NewSharedItems(kv)
	item := first.Add("상품", "https://example.com/1", "Alibaba")

	second := NewSharedItems(kv)
	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "Alibaba", items[0].Platform)
}

func TestSharedItemsCorruptStateYieldsEmpty(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set("shared-items", "[broken"))

	sh := NewSharedItems(kv)
	assert.Empty(t, sh.Items())
	_, ok := kv.Get("shared-items")
	assert.False(t, ok)
}
