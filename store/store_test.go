package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBasics(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("missing")
	assert.False(t, ok, "first run reads report absence")

	require.NoError(t, m.Set("k", "v"))
	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	m.Remove("k")
	_, ok = m.Get("k")
	assert.False(t, ok)

	// Removing an absent key is a no-op
	m.Remove("k")
}

func TestReadJSONRoundTrip(t *testing.T) {
	m := NewMemory()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, WriteJSON(m, "p", payload{Name: "이어폰", Count: 3}))

	var got payload
	require.True(t, ReadJSON(m, "p", &got))
	assert.Equal(t, payload{Name: "이어폰", Count: 3}, got)
}

func TestReadJSONMissingKey(t *testing.T) {
	m := NewMemory()
	var got map[string]string
	assert.False(t, ReadJSON(m, "nope", &got))
}

func TestReadJSONDiscardsCorruptEntry(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("bad", "{not json"))

	var got map[string]string
	assert.False(t, ReadJSON(m, "bad", &got))

	// The corrupt entry is cleared so the next read doesn't fail again.
	_, ok := m.Get("bad")
	assert.False(t, ok)
}
