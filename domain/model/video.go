package model

import "time"

// Categories is the fixed set of video categories known to the client.
// "All" is a pseudo-category meaning no filter.
var Categories = []string{
	"All",
	"Music",
	"Gaming",
	"Sports",
	"News",
	"Technology",
	"Education",
	"Entertainment",
	"Travel",
}

const MaxTags = 20

// Video is a catalog entry. ChannelName and ChannelAvatar are a denormalized
// snapshot taken at upload time and are not updated on later channel edits.
type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	VideoURL      string    `json:"videoUrl"`
	Duration      int       `json:"duration"` // seconds
	Views         int       `json:"views"`
	Likes         int       `json:"likes"`
	Dislikes      int       `json:"dislikes"`
	CreatedAt     time.Time `json:"createdAt"`
	ChannelID     string    `json:"channelId"`
	ChannelName   string    `json:"channelName"`
	ChannelAvatar string    `json:"channelAvatar"`
	Tags          []string  `json:"tags"`
	Category      string    `json:"category"`
}

// ValidCategory reports whether category is one of the known categories
// (excluding the "All" pseudo-category).
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c != "All" && c == category {
			return true
		}
	}
	return false
}
