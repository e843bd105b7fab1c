// Package auth holds the in-process session, the authentication collaborator
// observed by the sync coordinator.
package auth

import (
	"sync"

	"streamtube/domain/model"
	"streamtube/domain/repository"
)

// Session tracks the current user and notifies listeners on every
// transition. Listeners run synchronously on the goroutine that changed the
// state, so a login is fully observed before the call returns.
type Session struct {
	mu        sync.RWMutex
	state     repository.AuthState
	listeners []func(repository.AuthState)
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Current() repository.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) OnChange(fn func(repository.AuthState)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// SetUser marks the session authenticated as user and notifies listeners.
func (s *Session) SetUser(user *model.User) {
	s.mu.Lock()
	s.state = repository.AuthState{User: user, IsAuthenticated: user != nil}
	state := s.state
	listeners := append([]func(repository.AuthState){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

// Clear signs the session out and notifies listeners.
func (s *Session) Clear() {
	s.SetUser(nil)
}

var _ repository.IAuthProvider = (*Session)(nil)
