package model

import "time"

// Playlist is a user playlist. VideoIDs is an ordered list and may contain
// the same video more than once.
type Playlist struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	VideoIDs     []string  `json:"videoIds"`
	UserID       string    `json:"userId"`
	IsPublic     bool      `json:"isPublic"`
	CreatedAt    time.Time `json:"createdAt"`
}
