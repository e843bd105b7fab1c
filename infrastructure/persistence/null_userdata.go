package persistence

import (
	"context"

	"streamtube/domain/model"
	"streamtube/domain/repository"
)

// NullUserData stands in for the gateway when no remote store is reachable.
// Writes report failure, reads report empty; callers keep working on local
// state only.
type NullUserData struct{}

func NewNullUserData() repository.IUserData { return NullUserData{} }

func (NullUserData) AddToWatchHistory(ctx context.Context, userID, videoID string) bool { return false }

func (NullUserData) GetWatchHistory(ctx context.Context, userID string) []string { return []string{} }

func (NullUserData) LikeVideo(ctx context.Context, userID, videoID string) bool { return false }

func (NullUserData) UnlikeVideo(ctx context.Context, userID, videoID string) bool { return false }

func (NullUserData) GetLikedVideos(ctx context.Context, userID string) []string { return []string{} }

func (NullUserData) IsVideoLiked(ctx context.Context, userID, videoID string) bool { return false }

func (NullUserData) Subscribe(ctx context.Context, userID, channelID string) bool { return false }

func (NullUserData) Unsubscribe(ctx context.Context, userID, channelID string) bool { return false }

func (NullUserData) GetSubscriptions(ctx context.Context, userID string) []string { return []string{} }

func (NullUserData) IsSubscribed(ctx context.Context, userID, channelID string) bool { return false }

func (NullUserData) FetchAllUserData(ctx context.Context, userID string) model.UserData {
	return model.UserData{
		WatchHistory:  []string{},
		LikedVideos:   []string{},
		Subscriptions: []string{},
	}
}
