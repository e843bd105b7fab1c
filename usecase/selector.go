package usecase

import (
	"sort"
	"strings"

	"streamtube/domain/model"
)

// Selectors are pure query functions over store snapshots, consumed by the
// presentation layer. None of them mutate their inputs.

// FilterByCategory returns videos in category; "All" or "" means no filter.
func FilterByCategory(videos []model.Video, category string) []model.Video {
	if category == "" || category == "All" {
		return append([]model.Video{}, videos...)
	}
	out := []model.Video{}
	for _, v := range videos {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

// SearchVideos matches the query against title, description and tags,
// case-insensitively.
func SearchVideos(videos []model.Video, query string) []model.Video {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.Video{}
	}
	out := []model.Video{}
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), q) ||
			strings.Contains(strings.ToLower(v.Description), q) ||
			anyTagContains(v.Tags, q) {
			out = append(out, v)
		}
	}
	return out
}

func anyTagContains(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// VideosByChannel returns the channel's uploads in catalog order.
func VideosByChannel(videos []model.Video, channelID string) []model.Video {
	out := []model.Video{}
	for _, v := range videos {
		if v.ChannelID == channelID {
			out = append(out, v)
		}
	}
	return out
}

// VideosByIDs resolves ids against the catalog preserving the ids' order;
// unknown ids are skipped. Used for history and liked views.
func VideosByIDs(videos []model.Video, ids []string) []model.Video {
	byID := make(map[string]model.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	out := []model.Video{}
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}
	return out
}

// SubscriptionFeed returns videos from subscribed channels in catalog order.
func SubscriptionFeed(videos []model.Video, subscriptions []string) []model.Video {
	subscribed := make(map[string]struct{}, len(subscriptions))
	for _, id := range subscriptions {
		subscribed[id] = struct{}{}
	}
	out := []model.Video{}
	for _, v := range videos {
		if _, ok := subscribed[v.ChannelID]; ok {
			out = append(out, v)
		}
	}
	return out
}

// TrendingVideos sorts a copy by view count, highest first. Deterministic:
// equal view counts keep catalog order.
func TrendingVideos(videos []model.Video) []model.Video {
	out := append([]model.Video{}, videos...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	return out
}

// RelatedVideos returns up to limit videos other than the one being watched.
func RelatedVideos(videos []model.Video, videoID string, limit int) []model.Video {
	out := []model.Video{}
	for _, v := range videos {
		if v.ID == videoID {
			continue
		}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}

// CommentsForVideo returns the video's comments, newest first (store order).
func CommentsForVideo(comments []model.Comment, videoID string) []model.Comment {
	out := []model.Comment{}
	for _, c := range comments {
		if c.VideoID == videoID {
			out = append(out, c)
		}
	}
	return out
}

// IsSubscribed reports membership of channelID in the subscriptions list.
func IsSubscribed(subscriptions []string, channelID string) bool {
	for _, id := range subscriptions {
		if id == channelID {
			return true
		}
	}
	return false
}

// IsLiked reports membership of videoID in the liked list.
func IsLiked(likedVideos []string, videoID string) bool {
	for _, id := range likedVideos {
		if id == videoID {
			return true
		}
	}
	return false
}
