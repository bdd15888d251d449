package client

import "sync"

// Identity is the minimal cached admin identity held alongside the token.
type Identity struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	NamaLengkap string `json:"nama_lengkap"`
	Role        string `json:"role"`
}

// Session holds the bearer token and cached identity for one operator. It
// is the explicit object injected into the gateway and the console — there
// is no ambient/global session state. Login begins a session, Clear ends
// it.
type Session struct {
	mu       sync.RWMutex
	token    string
	identity *Identity
}

func NewSession() *Session {
	return &Session{}
}

// Begin installs a fresh token and identity, replacing whatever was held.
func (s *Session) Begin(token string, identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.identity = &identity
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns the cached identity, or nil when none is held.
func (s *Session) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	copied := *s.identity
	return &copied
}

// UpdateIdentity refreshes the cached identity without touching the token.
func (s *Session) UpdateIdentity(identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Clear drops the token and identity (logout or rejected session).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = nil
}
