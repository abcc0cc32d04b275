package auth

import "sync"

// Session holds the zero-or-one currently authenticated Identity. The two
// states are {anonymous, authenticated}; Login is the only conditional
// transition, Logout is unconditional and idempotent. The mutex keeps the
// single-writer invariant when the host is multi-threaded.
type Session struct {
	svc *Service

	mu      sync.RWMutex
	current *Identity
}

func NewSession(svc *Service) *Session {
	return &Session{svc: svc}
}

// Login authenticates against the registry. On success the Identity becomes
// current and true is returned; on failure the session is left unchanged.
func (s *Session) Login(email, pwd string) bool {
	ident, err := s.svc.Authenticate(email, pwd)
	if err != nil {
		return false
	}
	s.mu.Lock()
	s.current = &ident
	s.mu.Unlock()
	return true
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Current returns the authenticated Identity, if any.
func (s *Session) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Identity{}, false
	}
	return *s.current, true
}
