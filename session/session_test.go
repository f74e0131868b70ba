package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/store"
)

func TestLoginSuccess(t *testing.T) {
	m := NewManager(store.NewMemory(), models.RoleBuyer)

	p, err := m.Login("test@test.com", "test12!")
	require.NoError(t, err)
	assert.Equal(t, "test@test.com", p.Email)
	assert.Equal(t, models.RoleBuyer, p.Role)
	assert.True(t, m.Authenticated())
}

func TestLoginMismatchLeavesStateUnchanged(t *testing.T) {
	m := NewManager(store.NewMemory(), models.RoleBuyer)

	_, err := m.Login("test@test.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, m.Authenticated())

	_, err = m.Login("other@test.com", "test12!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, m.Authenticated())
}

func TestSessionSurvivesRestart(t *testing.T) {
	kv := store.NewMemory()

	first := NewManager(kv, models.RoleBuyer)
	logged, err := first.Login("test@test.com", "test12!")
	require.NoError(t, err)

	// A fresh manager over the same store restores the principal.
	second := NewManager(kv, models.RoleBuyer)
	restored, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, logged.ID, restored.ID)
	assert.Equal(t, logged.Email, restored.Email)
	assert.Equal(t, logged.Name, restored.Name)
}

func TestLogoutIsIdempotent(t *testing.T) {
	kv := store.NewMemory()
	m := NewManager(kv, models.RoleBuyer)

	_, err := m.Login("test@test.com", "test12!")
	require.NoError(t, err)

	m.Logout()
	assert.False(t, m.Authenticated())
	_, ok := kv.Get("buyer-session")
	assert.False(t, ok, "store entry removed on logout")

	// Second logout while anonymous is a no-op
	m.Logout()
	assert.False(t, m.Authenticated())
}

func TestRolesAreIndependent(t *testing.T) {
	kv := store.NewMemory()
	buyer := NewManager(kv, models.RoleBuyer)
	admin := NewManager(kv, models.RoleAdmin)

	_, err := buyer.Login("test@test.com", "test12!")
	require.NoError(t, err)
	assert.False(t, admin.Authenticated(), "buyer login must not touch admin session")

	buyer.Logout()
	_, err = admin.Login("admin@test.com", "admin12!")
	require.NoError(t, err)
	assert.True(t, admin.Authenticated())
	assert.False(t, buyer.Authenticated())
}

func TestVendorLoginEnrichedFromCatalog(t *testing.T) {
	m := NewManager(store.NewMemory(), models.RoleVendor)

	p, err := m.Login("vendor@test.com", "vendor12!")
	require.NoError(t, err)
	require.NotNil(t, p.Vendor)
	assert.Equal(t, "vendor-001", p.ID)
	assert.Equal(t, "글로벌 익스프레스", p.Vendor.Name)
	assert.True(t, p.Vendor.Verified)
}

func TestCorruptSessionEntryIsDiscarded(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set("buyer-session", "{{{"))

	m := NewManager(kv, models.RoleBuyer)
	assert.False(t, m.Authenticated())

	_, ok := kv.Get("buyer-session")
	assert.False(t, ok, "corrupt entry removed")
}
