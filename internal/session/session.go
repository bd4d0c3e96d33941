// Package session holds the ambient state the client carries between
// requests: a bearer credential and the customer identity it belongs to.
// It replaces implicit global lookup with an explicit object passed into
// the gateway and composer, populated at login and cleared at logout.
package session

import "sync"

// Identity describes the authenticated customer.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is a concurrency-safe holder for the bearer token and identity.
// An empty token is a valid state: unauthenticated requests are allowed
// and authorization is enforced by the backend.
type Session struct {
	mu       sync.RWMutex
	token    string
	identity Identity
}

// New returns an empty, unauthenticated session.
func New() *Session {
	return &Session{}
}

// Login stores the bearer token and identity for subsequent requests.
func (s *Session) Login(token string, id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.identity = id
}

// Logout clears the token and identity.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = Identity{}
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns the current customer identity.
func (s *Session) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Authenticated reports whether a bearer token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
