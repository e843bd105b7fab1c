package model

// PersistedState is the subset of the application store written to the
// durable local slot on every mutation and read back at startup.
type PersistedState struct {
	WatchHistory  []string   `json:"watchHistory"`
	LikedVideos   []string   `json:"likedVideos"`
	Subscriptions []string   `json:"subscriptions"`
	Playlists     []Playlist `json:"playlists"`
}

// UserData is the composite result of fetching the three user-owned
// relations from the remote store.
type UserData struct {
	WatchHistory  []string `json:"watchHistory"`
	LikedVideos   []string `json:"likedVideos"`
	Subscriptions []string `json:"subscriptions"`
}
