package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"streamtube/domain/model"
)

// memorySnapshot keeps the persisted subset in memory for test assertions.
type memorySnapshot struct {
	state *model.PersistedState
	saves int
}

func (m *memorySnapshot) Load() (*model.PersistedState, error) {
	return m.state, nil
}

func (m *memorySnapshot) Save(state *model.PersistedState) error {
	m.state = state
	m.saves++
	return nil
}

func TestLikeVideoIsIdempotent(t *testing.T) {
	store := NewStoreUsecase(nil)
	video, ok := store.VideoByID("video-1")
	require.True(t, ok)
	baseline := video.Likes

	store.LikeVideo("video-1")
	store.LikeVideo("video-1")
	store.LikeVideo("video-1")

	video, _ = store.VideoByID("video-1")
	require.Equal(t, baseline+1, video.Likes)
	require.Equal(t, []string{"video-1"}, store.LikedVideos())
}

func TestDislikeVideoCountsEveryCall(t *testing.T) {
	store := NewStoreUsecase(nil)
	video, ok := store.VideoByID("video-1")
	require.True(t, ok)
	baseline := video.Dislikes

	store.DislikeVideo("video-1")
	store.DislikeVideo("video-1")

	video, _ = store.VideoByID("video-1")
	require.Equal(t, baseline+2, video.Dislikes)
}

func TestWatchHistoryMovesRewatchedVideoToFront(t *testing.T) {
	store := NewStoreUsecase(nil)

	store.AddToWatchHistory("video-1")
	store.AddToWatchHistory("video-2")
	store.AddToWatchHistory("video-1")

	require.Equal(t, []string{"video-1", "video-2"}, store.WatchHistory())
}

func TestWatchHistoryEvictsBeyondLimit(t *testing.T) {
	store := NewStoreUsecase(nil)

	for i := 0; i < WatchHistoryLimit+20; i++ {
		store.AddToWatchHistory(fmt.Sprintf("video-%d", i))
	}

	history := store.WatchHistory()
	require.Len(t, history, WatchHistoryLimit)
	require.Equal(t, fmt.Sprintf("video-%d", WatchHistoryLimit+19), history[0])
	require.Equal(t, fmt.Sprintf("video-%d", 20), history[WatchHistoryLimit-1])
}

func TestSubscribeThenUnsubscribeRestoresCounter(t *testing.T) {
	store := NewStoreUsecase(nil)
	channel, ok := store.ChannelByID("channel-1")
	require.True(t, ok)
	baseline := channel.Subscribers

	store.Subscribe("channel-1")
	channel, _ = store.ChannelByID("channel-1")
	require.Equal(t, baseline+1, channel.Subscribers)
	require.Equal(t, []string{"channel-1"}, store.Subscriptions())

	store.Unsubscribe("channel-1")
	channel, _ = store.ChannelByID("channel-1")
	require.Equal(t, baseline, channel.Subscribers)
	require.Empty(t, store.Subscriptions())
}

func TestSubscribeTwiceBumpsCounterOnce(t *testing.T) {
	store := NewStoreUsecase(nil)
	channel, _ := store.ChannelByID("channel-2")
	baseline := channel.Subscribers

	store.Subscribe("channel-2")
	store.Subscribe("channel-2")

	channel, _ = store.ChannelByID("channel-2")
	require.Equal(t, baseline+1, channel.Subscribers)
	require.Equal(t, []string{"channel-2"}, store.Subscriptions())
}

func TestUnsubscribeUnknownChannelLeavesCountersAlone(t *testing.T) {
	store := NewStoreUsecase(nil)
	channel, _ := store.ChannelByID("channel-1")
	baseline := channel.Subscribers

	store.Unsubscribe("channel-1")

	channel, _ = store.ChannelByID("channel-1")
	require.Equal(t, baseline, channel.Subscribers)
}

func TestAddToPlaylistAllowsDuplicates(t *testing.T) {
	store := NewStoreUsecase(nil)
	store.CreatePlaylist(model.Playlist{ID: "playlist-1", Title: "Favorites"})

	store.AddToPlaylist("playlist-1", "video-1")
	store.AddToPlaylist("playlist-1", "video-1")

	playlists := store.Playlists()
	require.Len(t, playlists, 1)
	require.Equal(t, []string{"video-1", "video-1"}, playlists[0].VideoIDs)
}

func TestAddVideoPrepends(t *testing.T) {
	store := NewStoreUsecase(nil)

	store.AddVideo(model.Video{ID: "video-new", Title: "Fresh Upload"})

	require.Equal(t, "video-new", store.Videos()[0].ID)
}

func TestUpdateVideoViewsIncrements(t *testing.T) {
	store := NewStoreUsecase(nil)
	video, _ := store.VideoByID("video-3")
	baseline := video.Views

	store.UpdateVideoViews("video-3")

	video, _ = store.VideoByID("video-3")
	require.Equal(t, baseline+1, video.Views)
}

func TestAddCommentPrependsAndClampsDepth(t *testing.T) {
	store := NewStoreUsecase(nil)

	deep := model.Comment{ID: "c-0", VideoID: "video-1", Content: "level 0"}
	node := &deep
	for i := 1; i <= model.MaxReplyDepth+3; i++ {
		node.Replies = []model.Comment{{ID: fmt.Sprintf("c-%d", i), VideoID: "video-1", Content: "reply"}}
		node = &node.Replies[0]
	}
	store.AddComment(deep)

	comments := store.Comments()
	require.Equal(t, "c-0", comments[0].ID)

	depth := 0
	cur := comments[0]
	for len(cur.Replies) > 0 {
		depth++
		cur = cur.Replies[0]
	}
	require.Equal(t, model.MaxReplyDepth, depth)
}

func TestPersistedSubsetRoundTrip(t *testing.T) {
	snapshot := &memorySnapshot{}

	store := NewStoreUsecase(snapshot)
	store.AddToWatchHistory("video-2")
	store.LikeVideo("video-5")
	store.Subscribe("channel-3")
	store.CreatePlaylist(model.Playlist{ID: "playlist-1", Title: "Late Night", VideoIDs: []string{"video-5"}})
	store.SetSearchQuery("lofi")
	store.SetSelectedCategory("Music")
	store.SetSidebarOpen(false)

	reloaded := NewStoreUsecase(snapshot)
	require.Equal(t, []string{"video-2"}, reloaded.WatchHistory())
	require.Equal(t, []string{"video-5"}, reloaded.LikedVideos())
	require.Equal(t, []string{"channel-3"}, reloaded.Subscriptions())
	require.Len(t, reloaded.Playlists(), 1)
	require.Equal(t, "Late Night", reloaded.Playlists()[0].Title)

	// UI state never survives a restart.
	require.Empty(t, reloaded.SearchQuery())
	require.Equal(t, "All", reloaded.SelectedCategory())
	require.True(t, reloaded.SidebarOpen())
}

func TestUISettersDoNotPersist(t *testing.T) {
	snapshot := &memorySnapshot{}
	store := NewStoreUsecase(snapshot)

	store.SetSearchQuery("kyoto")
	store.SetSelectedCategory("Travel")
	store.SetSidebarOpen(false)

	require.Zero(t, snapshot.saves)
	require.Equal(t, "kyoto", store.SearchQuery())
	require.Equal(t, "Travel", store.SelectedCategory())
	require.False(t, store.SidebarOpen())
}

func TestHydrationSettersReplaceWholesale(t *testing.T) {
	store := NewStoreUsecase(nil)
	store.AddToWatchHistory("video-1")
	store.SetLikedVideos([]string{"video-9"})

	store.SetWatchHistory([]string{"video-7", "video-8"})
	store.SetSubscriptions([]string{"channel-4"})

	require.Equal(t, []string{"video-7", "video-8"}, store.WatchHistory())
	require.Equal(t, []string{"video-9"}, store.LikedVideos())
	require.Equal(t, []string{"channel-4"}, store.Subscriptions())
}

func TestGettersReturnCopies(t *testing.T) {
	store := NewStoreUsecase(nil)
	store.AddToWatchHistory("video-1")

	history := store.WatchHistory()
	history[0] = "tampered"

	require.Equal(t, []string{"video-1"}, store.WatchHistory())
}
