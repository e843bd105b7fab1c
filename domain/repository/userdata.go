package repository

import (
	"context"

	"streamtube/domain/model"
)

// IUserData is the remote data gateway for the three user-owned relations:
// watch_history, liked_videos, subscriptions.
//
// Every write returns a plain success flag and every read degrades to an
// empty result on failure. Implementations log transport/storage errors and
// never surface them to callers; duplicate-key conflicts on insert are
// reported as success.
type IUserData interface {
	AddToWatchHistory(ctx context.Context, userID, videoID string) bool
	GetWatchHistory(ctx context.Context, userID string) []string

	LikeVideo(ctx context.Context, userID, videoID string) bool
	UnlikeVideo(ctx context.Context, userID, videoID string) bool
	GetLikedVideos(ctx context.Context, userID string) []string
	IsVideoLiked(ctx context.Context, userID, videoID string) bool

	Subscribe(ctx context.Context, userID, channelID string) bool
	Unsubscribe(ctx context.Context, userID, channelID string) bool
	GetSubscriptions(ctx context.Context, userID string) []string
	IsSubscribed(ctx context.Context, userID, channelID string) bool

	// FetchAllUserData runs the three reads concurrently. A failed read
	// degrades that field to an empty list; the other fields are unaffected.
	FetchAllUserData(ctx context.Context, userID string) model.UserData
}
