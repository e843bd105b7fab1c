package repository

import "context"

// IActivity publishes user-activity events (watch, like, subscribe, ...) to
// a message broker. Publishing is fire-and-forget from the caller's side.
type IActivity interface {
	Publish(ctx context.Context, payload []byte) error
}
