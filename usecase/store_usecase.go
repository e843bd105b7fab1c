package usecase

import (
	"sync"

	"streamtube/domain/model"
	"streamtube/domain/repository"
	"streamtube/infrastructure/logger"
)

// WatchHistoryLimit caps the recency list; the oldest entry is evicted first.
const WatchHistoryLimit = 100

// IStoreUsecase is the local application store: the single source of truth
// for videos, channels, comments, playlists, the per-user lists and the
// ephemeral UI state. Mutations are atomic and synchronous; the persisted
// subset (watch history, liked videos, subscriptions, playlists) is written
// to the durable local slot on every change.
//
// Mutations assume pre-validated input and absorb unknown ids as no-ops.
type IStoreUsecase interface {
	// Videos
	Videos() []model.Video
	VideoByID(videoID string) (model.Video, bool)
	AddVideo(video model.Video)
	UpdateVideoViews(videoID string)
	LikeVideo(videoID string)
	DislikeVideo(videoID string)

	// Channels
	Channels() []model.Channel
	ChannelByID(channelID string) (model.Channel, bool)
	Subscriptions() []string
	SetSubscriptions(subscriptions []string)
	Subscribe(channelID string)
	Unsubscribe(channelID string)

	// Comments
	Comments() []model.Comment
	AddComment(comment model.Comment)

	// Watch history
	WatchHistory() []string
	SetWatchHistory(history []string)
	AddToWatchHistory(videoID string)

	// Liked videos
	LikedVideos() []string
	SetLikedVideos(likedVideos []string)

	// Playlists
	Playlists() []model.Playlist
	CreatePlaylist(playlist model.Playlist)
	AddToPlaylist(playlistID, videoID string)

	// UI state (process lifetime only, never persisted)
	SearchQuery() string
	SetSearchQuery(query string)
	SelectedCategory() string
	SetSelectedCategory(category string)
	SidebarOpen() bool
	SetSidebarOpen(open bool)
}

type storeUsecase struct {
	mu sync.Mutex

	videos        []model.Video
	channels      []model.Channel
	comments      []model.Comment
	playlists     []model.Playlist
	watchHistory  []string
	likedVideos   []string
	subscriptions []string

	searchQuery      string
	selectedCategory string
	sidebarOpen      bool

	snapshot repository.ISnapshot
}

// NewStoreUsecase builds a store seeded from the built-in catalog, then
// overlays the persisted subset from the durable local slot when present.
func NewStoreUsecase(snapshot repository.ISnapshot) IStoreUsecase {
	s := &storeUsecase{
		videos:           SeedVideos(),
		channels:         SeedChannels(),
		comments:         SeedComments(),
		playlists:        []model.Playlist{},
		watchHistory:     []string{},
		likedVideos:      []string{},
		subscriptions:    []string{},
		selectedCategory: "All",
		sidebarOpen:      true,
		snapshot:         snapshot,
	}
	if snapshot != nil {
		state, err := snapshot.Load()
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Failed to load persisted state, starting empty")
		} else if state != nil {
			if state.WatchHistory != nil {
				s.watchHistory = state.WatchHistory
			}
			if state.LikedVideos != nil {
				s.likedVideos = state.LikedVideos
			}
			if state.Subscriptions != nil {
				s.subscriptions = state.Subscriptions
			}
			if state.Playlists != nil {
				s.playlists = state.Playlists
			}
		}
	}
	return s
}

// persist writes the persisted subset to the local slot. Callers hold the lock.
func (s *storeUsecase) persist() {
	if s.snapshot == nil {
		return
	}
	state := &model.PersistedState{
		WatchHistory:  append([]string{}, s.watchHistory...),
		LikedVideos:   append([]string{}, s.likedVideos...),
		Subscriptions: append([]string{}, s.subscriptions...),
		Playlists:     append([]model.Playlist{}, s.playlists...),
	}
	if err := s.snapshot.Save(state); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to persist state")
	}
}

func (s *storeUsecase) Videos() []model.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Video{}, s.videos...)
}

func (s *storeUsecase) VideoByID(videoID string) (model.Video, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.videos {
		if v.ID == videoID {
			return v, true
		}
	}
	return model.Video{}, false
}

// AddVideo prepends so the catalog stays most-recent-first.
func (s *storeUsecase) AddVideo(video model.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = append([]model.Video{video}, s.videos...)
}

func (s *storeUsecase) UpdateVideoViews(videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID == videoID {
			s.videos[i].Views++
			return
		}
	}
}

// LikeVideo is idempotent per user: liking an already-liked video touches
// neither the counter nor the list.
func (s *storeUsecase) LikeVideo(videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.likedVideos {
		if id == videoID {
			return
		}
	}
	for i := range s.videos {
		if s.videos[i].ID == videoID {
			s.videos[i].Likes++
			break
		}
	}
	s.likedVideos = append(s.likedVideos, videoID)
	s.persist()
}

// DislikeVideo has no idempotence guard: repeated dislikes keep counting.
// Intentional asymmetry with LikeVideo, carried over from the product.
func (s *storeUsecase) DislikeVideo(videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videos {
		if s.videos[i].ID == videoID {
			s.videos[i].Dislikes++
			return
		}
	}
}

func (s *storeUsecase) Channels() []model.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Channel{}, s.channels...)
}

func (s *storeUsecase) ChannelByID(channelID string) (model.Channel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.channels {
		if c.ID == channelID {
			return c, true
		}
	}
	return model.Channel{}, false
}

func (s *storeUsecase) Subscriptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.subscriptions...)
}

// SetSubscriptions replaces the list wholesale. Used by the sync coordinator
// to hydrate from the remote store; the payload must already be free of
// duplicates.
func (s *storeUsecase) SetSubscriptions(subscriptions []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions = append([]string{}, subscriptions...)
	s.persist()
}

// Subscribe appends the channel and bumps its subscriber counter. The list
// mutation happens even when the channel id is unknown; only the counter
// update is skipped then.
func (s *storeUsecase) Subscribe(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.subscriptions {
		if id == channelID {
			return
		}
	}
	s.subscriptions = append(s.subscriptions, channelID)
	for i := range s.channels {
		if s.channels[i].ID == channelID {
			s.channels[i].Subscribers++
			break
		}
	}
	s.persist()
}

func (s *storeUsecase) Unsubscribe(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.subscriptions[:0]
	removed := false
	for _, id := range s.subscriptions {
		if id == channelID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	s.subscriptions = kept
	if removed {
		for i := range s.channels {
			if s.channels[i].ID == channelID {
				s.channels[i].Subscribers--
				break
			}
		}
	}
	s.persist()
}

func (s *storeUsecase) Comments() []model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Comment{}, s.comments...)
}

func (s *storeUsecase) AddComment(comment model.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment.ClampReplies(model.MaxReplyDepth)
	s.comments = append([]model.Comment{comment}, s.comments...)
}

func (s *storeUsecase) WatchHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.watchHistory...)
}

func (s *storeUsecase) SetWatchHistory(history []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchHistory = append([]string{}, history...)
	s.persist()
}

// AddToWatchHistory moves the video to the front, dropping any earlier
// occurrence, and truncates to WatchHistoryLimit entries.
func (s *storeUsecase) AddToWatchHistory(videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]string, 0, len(s.watchHistory)+1)
	next = append(next, videoID)
	for _, id := range s.watchHistory {
		if id != videoID {
			next = append(next, id)
		}
	}
	if len(next) > WatchHistoryLimit {
		next = next[:WatchHistoryLimit]
	}
	s.watchHistory = next
	s.persist()
}

func (s *storeUsecase) LikedVideos() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.likedVideos...)
}

func (s *storeUsecase) SetLikedVideos(likedVideos []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likedVideos = append([]string{}, likedVideos...)
	s.persist()
}

func (s *storeUsecase) Playlists() []model.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Playlist{}, s.playlists...)
}

func (s *storeUsecase) CreatePlaylist(playlist model.Playlist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playlists = append(s.playlists, playlist)
	s.persist()
}

// AddToPlaylist appends without de-duplicating: a playlist is an ordered
// multiset of video ids.
func (s *storeUsecase) AddToPlaylist(playlistID, videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.playlists {
		if s.playlists[i].ID == playlistID {
			s.playlists[i].VideoIDs = append(s.playlists[i].VideoIDs, videoID)
			s.persist()
			return
		}
	}
}

func (s *storeUsecase) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

func (s *storeUsecase) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

func (s *storeUsecase) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

func (s *storeUsecase) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
}

func (s *storeUsecase) SidebarOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarOpen
}

func (s *storeUsecase) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}
