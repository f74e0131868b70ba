package collections

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/store"
)

const sharedKey = "shared-items"

// SharedItems is the share-history log, newest first. Unlike the wishlist,
// every Add creates a fresh entry; the id and timestamp are assigned here,
// not by the caller.
type SharedItems struct {
	mu    sync.Mutex
	store store.Store
	items []models.SharedItem
}

func NewSharedItems(s store.Store) *SharedItems {
	sh := &SharedItems{store: s}
	store.ReadJSON(s, sharedKey, &sh.items)
	return sh
}

// Add prepends a new entry and returns it.
func (sh *SharedItems) Add(title, url, platform string) models.SharedItem {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	item := models.SharedItem{
		ID:       uuid.NewString(),
		Title:    title,
		URL:      url,
		Platform: platform,
		SharedAt: time.Now(),
	}
	sh.items = append([]models.SharedItem{item}, sh.items...)
	sh.persist()
	return item
}

// Remove deletes the entry with the given id. Absent ids are a no-op.
func (sh *SharedItems) Remove(id string) bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	for i, it := range sh.items {
		if it.ID == id {
			sh.items = append(sh.items[:i], sh.items[i+1:]...)
			sh.persist()
			return true
		}
	}
	return false
}

// Clear empties the log.
func (sh *SharedItems) Clear() {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.items = nil
	sh.persist()
}

// Items returns the log, newest first.
func (sh *SharedItems) Items() []models.SharedItem {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	out := make([]models.SharedItem, len(sh.items))
	copy(out, sh.items)
	return out
}

func (sh *SharedItems) persist() {
	if err := store.WriteJSON(sh.store, sharedKey, sh.items); err != nil {
		logPersistFailure(sharedKey, err)
	}
}

func logPersistFailure(key string, err error) {
	log.Printf("❌ Failed to persist %s: %v", key, err)
}
