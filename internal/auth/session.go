package auth

import (
	"sync"

	"github.com/niranjan-18-25/WorkOrbit/internal/user"
)

// Session holds at most one authenticated identity for the process
// lifetime. States are LoggedOut and LoggedIn(user); a fresh successful
// login replaces the identity directly. Nothing survives a restart.
type Session struct {
	mu      sync.RWMutex
	current *user.User
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Set(u user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &u
}

// Clear is idempotent.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *Session) Current() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return user.User{}, false
	}
	return *s.current, true
}
