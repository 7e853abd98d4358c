// Package session holds runtime state for the connected controller.
package session

import (
	"sync"
	"time"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	InputEnabled  bool
	Commands      uint64
	LastCommand   time.Time
}

// Session holds authentication and input gating for the controller.
type Session struct {
	mu            sync.RWMutex
	password      string
	passwordMode  bool
	authenticated bool
	inputEnabled  bool
	commands      uint64
	lastCommand   time.Time
	now           func() time.Time
}

// New returns a session protected by password when passwordMode is set.
// With passwordMode off, or an empty password, every caller is authenticated.
func New(password string, passwordMode bool) *Session {
	return &Session{
		password:     password,
		passwordMode: passwordMode && password != "",
		inputEnabled: true,
		now:          time.Now,
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.passwordMode {
		s.authenticated = true
		return true
	}
	s.authenticated = pass != "" && pass == s.password
	return s.authenticated
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated || !s.passwordMode
}

// SetInputEnabled toggles whether commands are forwarded to the target.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether commands are forwarded to the target.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// RecordCommand counts an applied input command.
func (s *Session) RecordCommand() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands++
	s.lastCommand = s.now()
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated || !s.passwordMode,
		InputEnabled:  s.inputEnabled,
		Commands:      s.commands,
		LastCommand:   s.lastCommand,
	}
}
