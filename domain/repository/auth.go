package repository

import "streamtube/domain/model"

// AuthState is a point-in-time view of the auth collaborator.
type AuthState struct {
	User            *model.User
	IsAuthenticated bool
}

// UserID returns the current user id, or "" when signed out.
func (s AuthState) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

// IAuthProvider is the authentication collaborator consumed by the sync
// coordinator. OnChange registers a listener invoked on every auth state
// transition; listeners run on the goroutine performing the transition.
type IAuthProvider interface {
	Current() AuthState
	OnChange(fn func(AuthState))
}
