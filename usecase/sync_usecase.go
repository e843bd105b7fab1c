package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"streamtube/domain/repository"
	"streamtube/infrastructure/logger"
)

// ISyncUsecase bridges auth transitions to the store and the remote gateway.
//
// On login it rehydrates the per-user lists from the remote store, exactly
// once per authenticated user id. The *Db methods are write-through wrappers:
// presentation code calls them after the matching synchronous store mutation,
// and a remote failure never rolls the local mutation back.
type ISyncUsecase interface {
	AddToWatchHistoryDb(ctx context.Context, videoID string) bool
	LikeVideoDb(ctx context.Context, videoID string) bool
	UnlikeVideoDb(ctx context.Context, videoID string) bool
	SubscribeDb(ctx context.Context, channelID string) bool
	UnsubscribeDb(ctx context.Context, channelID string) bool
}

// ActivityEvent is the payload published to the activity broker on
// write-through operations.
type ActivityEvent struct {
	Action    string    `json:"action"`
	UserID    string    `json:"userId"`
	TargetID  string    `json:"targetId"`
	Timestamp time.Time `json:"timestamp"`
}

type syncUsecase struct {
	store    IStoreUsecase
	userData repository.IUserData
	auth     repository.IAuthProvider
	activity repository.IActivity // optional

	mu               sync.Mutex
	lastSyncedUserID string
}

// NewSyncUsecase wires the coordinator and registers it with the auth
// provider. activity may be nil when no broker is configured.
func NewSyncUsecase(store IStoreUsecase, userData repository.IUserData, auth repository.IAuthProvider, activity repository.IActivity) ISyncUsecase {
	u := &syncUsecase{
		store:    store,
		userData: userData,
		auth:     auth,
		activity: activity,
	}
	auth.OnChange(u.onAuthChange)
	return u
}

// onAuthChange rehydrates local state once per (authenticated, userId) pair.
// Comparing against the last synced user id means unrelated auth
// notifications don't re-fetch, while an account switch does.
func (u *syncUsecase) onAuthChange(state repository.AuthState) {
	userID := state.UserID()
	if !state.IsAuthenticated || userID == "" {
		u.mu.Lock()
		u.lastSyncedUserID = ""
		u.mu.Unlock()
		return
	}

	u.mu.Lock()
	if u.lastSyncedUserID == userID {
		u.mu.Unlock()
		return
	}
	u.lastSyncedUserID = userID
	u.mu.Unlock()

	data := u.userData.FetchAllUserData(context.Background(), userID)
	u.store.SetWatchHistory(data.WatchHistory)
	u.store.SetLikedVideos(data.LikedVideos)
	u.store.SetSubscriptions(data.Subscriptions)
	logger.GetLogger().WithField("user_id", userID).Info("User data rehydrated from remote store")
}

func (u *syncUsecase) currentUserID() (string, bool) {
	state := u.auth.Current()
	if !state.IsAuthenticated || state.UserID() == "" {
		return "", false
	}
	return state.UserID(), true
}

func (u *syncUsecase) AddToWatchHistoryDb(ctx context.Context, videoID string) bool {
	userID, ok := u.currentUserID()
	if !ok {
		return false
	}
	ok = u.userData.AddToWatchHistory(ctx, userID, videoID)
	u.publishActivity(userID, "watch", videoID)
	return ok
}

func (u *syncUsecase) LikeVideoDb(ctx context.Context, videoID string) bool {
	userID, ok := u.currentUserID()
	if !ok {
		return false
	}
	ok = u.userData.LikeVideo(ctx, userID, videoID)
	u.publishActivity(userID, "like", videoID)
	return ok
}

func (u *syncUsecase) UnlikeVideoDb(ctx context.Context, videoID string) bool {
	userID, ok := u.currentUserID()
	if !ok {
		return false
	}
	ok = u.userData.UnlikeVideo(ctx, userID, videoID)
	u.publishActivity(userID, "unlike", videoID)
	return ok
}

func (u *syncUsecase) SubscribeDb(ctx context.Context, channelID string) bool {
	userID, ok := u.currentUserID()
	if !ok {
		return false
	}
	ok = u.userData.Subscribe(ctx, userID, channelID)
	u.publishActivity(userID, "subscribe", channelID)
	return ok
}

func (u *syncUsecase) UnsubscribeDb(ctx context.Context, channelID string) bool {
	userID, ok := u.currentUserID()
	if !ok {
		return false
	}
	ok = u.userData.Unsubscribe(ctx, userID, channelID)
	u.publishActivity(userID, "unsubscribe", channelID)
	return ok
}

// publishActivity sends the event fire-and-forget; a broker outage only logs.
func (u *syncUsecase) publishActivity(userID, action, targetID string) {
	if u.activity == nil {
		return
	}
	event := ActivityEvent{
		Action:    action,
		UserID:    userID,
		TargetID:  targetID,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := u.activity.Publish(ctx, payload); err != nil {
			logger.GetLogger().WithField("error", err).WithField("action", action).Warn("Activity event not published")
		}
	}()
}
