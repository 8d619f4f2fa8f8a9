// Package session holds the authenticated state shared by the API client and
// the services that depend on it. It replaces ad-hoc global credential access
// with one object threaded through constructors; Expire is the single place
// the credential is cleared.
package session

import "sync"

// TokenStore persists the bearer token across runs.
type TokenStore interface {
	Store(token string) error
	Fetch() (string, error)
	Delete() error
}

// MemoryStore is a TokenStore for tests and for running without persistence.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryStore) Store(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Fetch() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Session is the current authentication context.
type Session struct {
	mu       sync.Mutex
	token    string
	store    TokenStore
	expired  bool
	onExpire []func()
}

// New restores any persisted token from store. A nil store behaves like an
// empty MemoryStore.
func New(store TokenStore) *Session {
	if store == nil {
		store = &MemoryStore{}
	}
	s := &Session{store: store}
	if tok, err := store.Fetch(); err == nil {
		s.token = tok
	}
	return s
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool { return s.Token() != "" }

// SetToken installs a fresh credential (after login) and persists it.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.expired = false
	s.mu.Unlock()
	return s.store.Store(token)
}

// Expire clears the credential. Repeated calls between logins are no-ops, so
// a burst of 401s clears the stored token and notifies listeners exactly
// once. Listeners run outside the lock.
func (s *Session) Expire() {
	s.mu.Lock()
	if s.expired || s.token == "" {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.expired = true
	listeners := make([]func(), len(s.onExpire))
	copy(listeners, s.onExpire)
	s.mu.Unlock()

	_ = s.store.Delete()
	for _, fn := range listeners {
		fn()
	}
}

// OnExpire registers a callback invoked once per expiry (UI login redirect).
func (s *Session) OnExpire(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpire = append(s.onExpire, fn)
}
