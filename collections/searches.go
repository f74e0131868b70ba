package collections

import (
	"strings"
	"sync"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/store"
)

const (
	searchesKey = "recent-search-terms"
	maxSearches = 10
)

// RecentSearches keeps the latest analyzed URLs/terms, most recent first,
// deduplicated, capped at maxSearches.
type RecentSearches struct {
	mu    sync.Mutex
	store store.Store
	terms []string
}

func NewRecentSearches(s store.Store) *RecentSearches {
	r := &RecentSearches{store: s}
	store.ReadJSON(s, searchesKey, &r.terms)
	return r
}

// Add moves an existing term to the front, or prepends a new one and trims
// the tail past the cap. Blank terms are ignored.
func (r *RecentSearches) Add(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.terms {
		if t == term {
			r.terms = append(r.terms[:i], r.terms[i+1:]...)
			break
		}
	}
	r.terms = append([]string{term}, r.terms...)
	if len(r.terms) > maxSearches {
		r.terms = r.terms[:maxSearches]
	}
	r.persist()
}

// Clear empties the history.
func (r *RecentSearches) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = nil
	r.persist()
}

// Terms returns the history, most recent first.
func (r *RecentSearches) Terms() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.terms))
	copy(out, r.terms)
	return out
}

func (r *RecentSearches) persist() {
	if err := store.WriteJSON(r.store, searchesKey, r.terms); err != nil {
		logPersistFailure(searchesKey, err)
	}
}
