package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterByCategory(t *testing.T) {
	videos := SeedVideos()

	all := FilterByCategory(videos, "All")
	require.Len(t, all, len(videos))

	travel := FilterByCategory(videos, "Travel")
	require.Len(t, travel, 2)
	for _, v := range travel {
		require.Equal(t, "Travel", v.Category)
	}

	require.Empty(t, FilterByCategory(videos, "Cooking"))
}

func TestSearchVideosMatchesTitleDescriptionAndTags(t *testing.T) {
	videos := SeedVideos()

	byTitle := SearchVideos(videos, "kyoto")
	require.Len(t, byTitle, 1)
	require.Equal(t, "video-3", byTitle[0].ID)

	byTag := SearchVideos(videos, "speedrun")
	require.Len(t, byTag, 1)
	require.Equal(t, "video-7", byTag[0].ID)

	byDescription := SearchVideos(videos, "query plans")
	require.Len(t, byDescription, 1)
	require.Equal(t, "video-2", byDescription[0].ID)

	require.Empty(t, SearchVideos(videos, ""))
	require.Empty(t, SearchVideos(videos, "   "))
}

func TestVideosByIDsPreservesRequestedOrder(t *testing.T) {
	videos := SeedVideos()

	out := VideosByIDs(videos, []string{"video-5", "video-1", "video-unknown", "video-3"})

	require.Len(t, out, 3)
	require.Equal(t, "video-5", out[0].ID)
	require.Equal(t, "video-1", out[1].ID)
	require.Equal(t, "video-3", out[2].ID)
}

func TestSubscriptionFeed(t *testing.T) {
	videos := SeedVideos()

	feed := SubscriptionFeed(videos, []string{"channel-3"})
	require.Len(t, feed, 2)
	for _, v := range feed {
		require.Equal(t, "channel-3", v.ChannelID)
	}

	require.Empty(t, SubscriptionFeed(videos, nil))
}

func TestTrendingVideosSortsByViewsDescending(t *testing.T) {
	videos := SeedVideos()

	trending := TrendingVideos(videos)

	require.Len(t, trending, len(videos))
	for i := 1; i < len(trending); i++ {
		require.GreaterOrEqual(t, trending[i-1].Views, trending[i].Views)
	}
	// Input order untouched.
	require.Equal(t, "video-1", videos[0].ID)
}

func TestRelatedVideosExcludesCurrentAndHonorsLimit(t *testing.T) {
	videos := SeedVideos()

	related := RelatedVideos(videos, "video-1", 3)

	require.Len(t, related, 3)
	for _, v := range related {
		require.NotEqual(t, "video-1", v.ID)
	}
}

func TestCommentsForVideo(t *testing.T) {
	comments := SeedComments()

	out := CommentsForVideo(comments, "video-1")
	require.Len(t, out, 1)
	require.Equal(t, "comment-1", out[0].ID)

	require.Empty(t, CommentsForVideo(comments, "video-99"))
}

func TestMembershipSelectors(t *testing.T) {
	require.True(t, IsSubscribed([]string{"channel-1", "channel-2"}, "channel-2"))
	require.False(t, IsSubscribed([]string{"channel-1"}, "channel-3"))
	require.True(t, IsLiked([]string{"video-4"}, "video-4"))
	require.False(t, IsLiked(nil, "video-4"))
}
