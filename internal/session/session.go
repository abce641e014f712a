// Package session manages the signed-cookie session backing user logins.
// There is no server-side session store: the cookie itself carries the
// identity, integrity-protected by the server-held signing secret. Anyone
// holding that secret can forge any identity.
package session

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/voltpoint/voltpoint/internal/model"
)

// Cookie value keys.
const (
	keyID    = "id"
	keyRole  = "role"
	keyEmail = "email"
	keyName  = "name"
)

// DefaultTTL is the sliding session lifetime.
const DefaultTTL = 24 * time.Hour

// Manager issues, reads, refreshes and clears signed-cookie sessions.
type Manager struct {
	store *sessions.CookieStore
	name  string
	ttl   time.Duration
}

// NewManager creates a Manager signing cookies with the given secret.
// secure controls the cookie Secure flag and should be true outside
// development.
func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store: store,
		name:  "voltpoint_session",
		ttl:   ttl,
	}
}

// Issue writes a fresh session cookie carrying the given identity.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request, id *model.Identity) error {
	// Get never fails fatally for cookie stores; a bad existing cookie
	// yields a new empty session, which is what we want on login.
	s, _ := m.store.Get(r, m.name)

	s.Values[keyID] = id.ID
	s.Values[keyRole] = string(id.Role)
	s.Values[keyEmail] = id.Email
	s.Values[keyName] = id.Name
	s.Options.MaxAge = int(m.ttl.Seconds())

	return s.Save(r, w)
}

// Read extracts the caller identity from the request cookie.
// Returns nil when the cookie is absent, malformed, or tampered with.
func (m *Manager) Read(r *http.Request) *model.Identity {
	s, err := m.store.Get(r, m.name)
	if err != nil || s.IsNew {
		return nil
	}

	id, ok := s.Values[keyID].(string)
	if !ok || id == "" {
		return nil
	}
	roleStr, ok := s.Values[keyRole].(string)
	if !ok {
		return nil
	}
	role := model.Role(roleStr)
	if !role.IsValid() {
		return nil
	}

	email, _ := s.Values[keyEmail].(string)
	name, _ := s.Values[keyName].(string)

	return &model.Identity{
		ID:    id,
		Role:  role,
		Email: email,
		Name:  name,
	}
}

// Refresh re-saves the session cookie, sliding its expiry forward by the
// full TTL. No-op for requests without a valid session.
func (m *Manager) Refresh(w http.ResponseWriter, r *http.Request) error {
	if m.Read(r) == nil {
		return nil
	}

	s, err := m.store.Get(r, m.name)
	if err != nil {
		return nil
	}
	s.Options.MaxAge = int(m.ttl.Seconds())
	return s.Save(r, w)
}

// Clear invalidates the session immediately by expiring the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, m.name)
	s.Options.MaxAge = -1
	for k := range s.Values {
		delete(s.Values, k)
	}
	return s.Save(r, w)
}
