package model

import "time"

// Channel is a creator channel. Subscribers is the locally tracked counter
// adjusted by subscribe/unsubscribe transitions.
type Channel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Banner      string    `json:"banner"`
	Subscribers int       `json:"subscribers"`
	VideoCount  int       `json:"videoCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `json:"userId"`
}
