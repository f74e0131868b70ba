// Package store is the durable key-value layer behind sessions and
// collections. It mirrors per-origin browser storage: string keys, string
// values, absence on first run, and automatic discarding of corrupt entries.
package store

import "encoding/json"

// Store is the adapter contract. Implementations must tolerate being called
// before the backing medium is ready by reporting absence instead of failing.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
}

// ReadJSON decodes the value at key into v. A missing key returns false. A
// value that fails to decode is treated as absent and the corrupt entry is
// removed so subsequent reads don't keep failing on it.
func ReadJSON(s Store, key string, v any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.Remove(key)
		return false
	}
	return true
}

// WriteJSON encodes v and writes it through to key.
func WriteJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
