// Package session owns the authentication state of the client: who is logged
// in, the persisted credential pair, and the gateway that mutates both.
package session

import (
	"sync"

	"github.com/nominapp/nominacli/internal/models"
)

// Session is the process-wide authentication state. It has exactly one writer
// (the Gateway, including its 401-hook path) and any number of readers.
// Readers always see either the previous or the new state, never a torn one.
type Session struct {
	mu      sync.RWMutex
	user    *models.User
	loading bool
	subs    []func(*models.User)
}

// NewSession returns a session in the loading state. No authorization
// decision may be made until Initialize finishes.
func NewSession() *Session {
	return &Session{loading: true}
}

// Loading reports whether startup validation is still in progress.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Current returns a copy of the signed-in user, or nil when unauthenticated.
func (s *Session) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Subscribe registers fn to be called after every change of the current user
// (including teardown, with nil). Subscribers run on the mutating goroutine
// and must not block.
func (s *Session) Subscribe(fn func(*models.User)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// set publishes a new current user. Gateway-only.
func (s *Session) set(u *models.User) {
	s.mu.Lock()
	s.user = u
	subs := make([]func(*models.User), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		var snapshot *models.User
		if u != nil {
			c := *u
			snapshot = &c
		}
		fn(snapshot)
	}
}

// finishLoading marks startup validation as complete. Called exactly once,
// as the terminal step of Initialize.
func (s *Session) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}
