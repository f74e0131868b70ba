// Package session keeps the authenticated principal for one role and mirrors
// it into the durable store, so a restart restores the same login.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/mockdata"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/store"
)

// ErrInvalidCredentials is returned on a login mismatch. The session state is
// left untouched in that case.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Manager is the session context for a single role. Each role gets its own
// store key, so buyer, vendor and admin logins are independent.
type Manager struct {
	mu        sync.Mutex
	store     store.Store
	key       string
	role      models.Role
	cred      mockdata.Credential
	principal *models.Principal
}

// NewManager restores the session from the store exactly once, at
// construction. A present, parseable entry means Authenticated; anything else
// means Anonymous.
func NewManager(s store.Store, role models.Role) *Manager {
	m := &Manager{
		store: s,
		key:   string(role) + "-session",
		role:  role,
		cred:  mockdata.Credentials[role],
	}
	var p models.Principal
	if store.ReadJSON(s, m.key, &p) {
		m.principal = &p
	}
	return m
}

// Login checks the pair against the role's known-good credential. On match it
// builds the principal, writes it through to the store and returns it. A
// mismatch returns ErrInvalidCredentials; any other error is a store failure.
func (m *Manager) Login(email, password string) (models.Principal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if email != m.cred.Email || password != m.cred.Password {
		return models.Principal{}, ErrInvalidCredentials
	}

	p := models.Principal{
		ID:      fmt.Sprintf("%s-001", m.role),
		Email:   m.cred.Email,
		Name:    m.cred.Name,
		Phone:   m.cred.Phone,
		Role:    m.role,
		LoginAt: time.Now(),
	}
	if m.cred.VendorID != "" {
		if v := mockdata.VendorByID(m.cred.VendorID); v != nil {
			vendor := *v
			p.ID = vendor.ID
			p.Vendor = &vendor
		}
	}

	if err := store.WriteJSON(m.store, m.key, p); err != nil {
		return models.Principal{}, fmt.Errorf("persist session: %w", err)
	}
	m.principal = &p
	return p, nil
}

// Logout clears the session. Calling it while anonymous is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.principal == nil {
		return
	}
	m.principal = nil
	m.store.Remove(m.key)
}

// Current returns the active principal, if any.
func (m *Manager) Current() (models.Principal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.principal == nil {
		return models.Principal{}, false
	}
	return *m.principal, true
}

// Authenticated reports whether a principal is active.
func (m *Manager) Authenticated() bool {
	_, ok := m.Current()
	return ok
}
