package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"streamtube/domain/model"
	"streamtube/infrastructure/auth"
)

// fakeUserData records gateway calls and lets tests force failures.
type fakeUserData struct {
	mu         sync.Mutex
	fetchCalls int
	writes     []string
	failWrites bool

	watchHistory  []string
	likedVideos   []string
	subscriptions []string
}

func (f *fakeUserData) record(op string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, op)
	return !f.failWrites
}

func (f *fakeUserData) AddToWatchHistory(ctx context.Context, userID, videoID string) bool {
	return f.record("watch:" + videoID)
}

func (f *fakeUserData) GetWatchHistory(ctx context.Context, userID string) []string {
	return append([]string{}, f.watchHistory...)
}

func (f *fakeUserData) LikeVideo(ctx context.Context, userID, videoID string) bool {
	return f.record("like:" + videoID)
}

func (f *fakeUserData) UnlikeVideo(ctx context.Context, userID, videoID string) bool {
	return f.record("unlike:" + videoID)
}

func (f *fakeUserData) GetLikedVideos(ctx context.Context, userID string) []string {
	return append([]string{}, f.likedVideos...)
}

func (f *fakeUserData) IsVideoLiked(ctx context.Context, userID, videoID string) bool {
	for _, id := range f.likedVideos {
		if id == videoID {
			return true
		}
	}
	return false
}

func (f *fakeUserData) Subscribe(ctx context.Context, userID, channelID string) bool {
	return f.record("subscribe:" + channelID)
}

func (f *fakeUserData) Unsubscribe(ctx context.Context, userID, channelID string) bool {
	return f.record("unsubscribe:" + channelID)
}

func (f *fakeUserData) GetSubscriptions(ctx context.Context, userID string) []string {
	return append([]string{}, f.subscriptions...)
}

func (f *fakeUserData) IsSubscribed(ctx context.Context, userID, channelID string) bool {
	for _, id := range f.subscriptions {
		if id == channelID {
			return true
		}
	}
	return false
}

func (f *fakeUserData) FetchAllUserData(ctx context.Context, userID string) model.UserData {
	f.mu.Lock()
	f.fetchCalls++
	f.mu.Unlock()
	return model.UserData{
		WatchHistory:  append([]string{}, f.watchHistory...),
		LikedVideos:   append([]string{}, f.likedVideos...),
		Subscriptions: append([]string{}, f.subscriptions...),
	}
}

func (f *fakeUserData) fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}

func demoUser(id string) *model.User {
	return &model.User{ID: id, Username: id, Email: id + "@example.com"}
}

func TestLoginRehydratesStoreOnce(t *testing.T) {
	gateway := &fakeUserData{
		watchHistory:  []string{"video-3", "video-1"},
		likedVideos:   []string{"video-5"},
		subscriptions: []string{"channel-2"},
	}
	store := NewStoreUsecase(nil)
	session := auth.NewSession()
	NewSyncUsecase(store, gateway, session, nil)

	session.SetUser(demoUser("user-a"))

	require.Equal(t, 1, gateway.fetches())
	require.Equal(t, []string{"video-3", "video-1"}, store.WatchHistory())
	require.Equal(t, []string{"video-5"}, store.LikedVideos())
	require.Equal(t, []string{"channel-2"}, store.Subscriptions())

	// Same user again: no second fetch.
	session.SetUser(demoUser("user-a"))
	require.Equal(t, 1, gateway.fetches())
}

func TestAccountSwitchTriggersFreshRehydration(t *testing.T) {
	gateway := &fakeUserData{}
	store := NewStoreUsecase(nil)
	session := auth.NewSession()
	NewSyncUsecase(store, gateway, session, nil)

	session.SetUser(demoUser("user-a"))
	session.SetUser(demoUser("user-b"))

	require.Equal(t, 2, gateway.fetches())
}

func TestLogoutThenLoginRehydratesAgain(t *testing.T) {
	gateway := &fakeUserData{}
	store := NewStoreUsecase(nil)
	session := auth.NewSession()
	NewSyncUsecase(store, gateway, session, nil)

	session.SetUser(demoUser("user-a"))
	session.Clear()
	session.SetUser(demoUser("user-a"))

	require.Equal(t, 2, gateway.fetches())
}

func TestWriteThroughRequiresAuthentication(t *testing.T) {
	gateway := &fakeUserData{}
	store := NewStoreUsecase(nil)
	session := auth.NewSession()
	coordinator := NewSyncUsecase(store, gateway, session, nil)

	ctx := context.Background()
	require.False(t, coordinator.AddToWatchHistoryDb(ctx, "video-1"))
	require.False(t, coordinator.LikeVideoDb(ctx, "video-1"))
	require.False(t, coordinator.SubscribeDb(ctx, "channel-1"))
	require.Empty(t, gateway.writes)
}

func TestWriteThroughForwardsToGateway(t *testing.T) {
	gateway := &fakeUserData{}
	store := NewStoreUsecase(nil)
	session := auth.NewSession()
	coordinator := NewSyncUsecase(store, gateway, session, nil)
	session.SetUser(demoUser("user-a"))

	ctx := context.Background()
	require.True(t, coordinator.AddToWatchHistoryDb(ctx, "video-1"))
	require.True(t, coordinator.LikeVideoDb(ctx, "video-2"))
	require.True(t, coordinator.UnlikeVideoDb(ctx, "video-2"))
	require.True(t, coordinator.SubscribeDb(ctx, "channel-1"))
	require.True(t, coordinator.UnsubscribeDb(ctx, "channel-1"))

	require.Equal(t, []string{
		"watch:video-1",
		"like:video-2",
		"unlike:video-2",
		"subscribe:channel-1",
		"unsubscribe:channel-1",
	}, gateway.writes)
}

func TestRemoteFailureDoesNotRollBackLocalState(t *testing.T) {
	gateway := &fakeUserData{failWrites: true}
	store := NewStoreUsecase(nil)
	session := auth.NewSession()
	coordinator := NewSyncUsecase(store, gateway, session, nil)
	session.SetUser(demoUser("user-a"))

	store.LikeVideo("video-1")
	ok := coordinator.LikeVideoDb(context.Background(), "video-1")

	require.False(t, ok)
	require.Equal(t, []string{"video-1"}, store.LikedVideos())
}
