package localstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"streamtube/domain/model"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "streamtube-storage")
	require.NoError(t, err)

	state := &model.PersistedState{
		WatchHistory:  []string{"v2", "v1"},
		LikedVideos:   []string{"v1"},
		Subscriptions: []string{"c1", "c3"},
		Playlists: []model.Playlist{
			{
				ID:        "p1",
				Title:     "Favorites",
				VideoIDs:  []string{"v1", "v1", "v2"},
				UserID:    "u1",
				IsPublic:  true,
				CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			},
		},
	}
	require.NoError(t, store.Save(state))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, state, loaded)
}

func TestFileStoreLoadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "streamtube-storage")
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "streamtube-storage")
	require.NoError(t, err)

	require.NoError(t, store.Save(&model.PersistedState{WatchHistory: []string{"v1"}}))
	require.NoError(t, store.Save(&model.PersistedState{WatchHistory: []string{"v2", "v1"}}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"v2", "v1"}, loaded.WatchHistory)
}
