// Package collections holds the user-attached ordered collections (wishlist,
// share history, recent searches). Every mutation writes the full collection
// through to the durable store; construction restores it.
package collections

import (
	"sync"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/store"
)

const wishlistKey = "wishlist"

// Wishlist is an ordered set of product snapshots, unique by snapshot id.
// Scoped per process rather than per principal, matching the shipped behavior.
type Wishlist struct {
	mu    sync.Mutex
	store store.Store
	items []models.ProductSnapshot
}

// NewWishlist restores the collection from the store. A corrupt entry yields
// an empty wishlist and the entry is discarded.
func NewWishlist(s store.Store) *Wishlist {
	w := &Wishlist{store: s}
	store.ReadJSON(s, wishlistKey, &w.items)
	return w
}

// Add appends the snapshot unless its id is already present.
// Returns false on a duplicate; the collection is unchanged then.
func (w *Wishlist) Add(item models.ProductSnapshot) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, it := range w.items {
		if it.ID == item.ID {
			return false
		}
	}
	w.items = append(w.items, item)
	w.persist()
	return true
}

// Remove deletes the entry with the given id. Absent ids are a no-op.
func (w *Wishlist) Remove(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, it := range w.items {
		if it.ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persist()
			return true
		}
	}
	return false
}

// Clear empties the collection.
func (w *Wishlist) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
	w.persist()
}

// Contains reports whether the id is wishlisted.
func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, it := range w.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Items returns the collection in insertion order.
func (w *Wishlist) Items() []models.ProductSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.ProductSnapshot, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wishlist) persist() {
	if err := store.WriteJSON(w.store, wishlistKey, w.items); err != nil {
		logPersistFailure(wishlistKey, err)
	}
}
