package persistence

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"streamtube/domain/model"
	"streamtube/domain/repository"
	"streamtube/infrastructure/logger"

	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

const watchHistoryFetchLimit = 100

// UserDataRepository implements the user data gateway on PostgreSQL using
// native sql.DB. Errors never cross this boundary: every failure is logged
// and reported as false / empty result.
type UserDataRepository struct {
	db *sql.DB
}

func NewUserDataRepository(db *sql.DB) repository.IUserData { return &UserDataRepository{db: db} }

func (r *UserDataRepository) AddToWatchHistory(ctx context.Context, userID, videoID string) bool {
	// Re-watching updates the timestamp instead of erroring on the composite key.
	q := `INSERT INTO watch_history (user_id, video_id, watched_at)
	      VALUES ($1, $2, $3)
	      ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at`
	if _, err := r.db.ExecContext(ctx, q, userID, videoID, time.Now().UTC()); err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Error("Failed to save watch history")
		return false
	}
	return true
}

func (r *UserDataRepository) GetWatchHistory(ctx context.Context, userID string) []string {
	q := `SELECT video_id FROM watch_history WHERE user_id=$1 ORDER BY watched_at DESC LIMIT $2`
	return r.queryIDs(ctx, "Failed to fetch watch history", q, userID, watchHistoryFetchLimit)
}

func (r *UserDataRepository) LikeVideo(ctx context.Context, userID, videoID string) bool {
	q := `INSERT INTO liked_videos (user_id, video_id, liked_at) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, q, userID, videoID, time.Now().UTC()); err != nil {
		// Already liked is success, not failure.
		if isUniqueViolation(err) {
			return true
		}
		logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Error("Failed to like video")
		return false
	}
	return true
}

func (r *UserDataRepository) UnlikeVideo(ctx context.Context, userID, videoID string) bool {
	q := `DELETE FROM liked_videos WHERE user_id=$1 AND video_id=$2`
	if _, err := r.db.ExecContext(ctx, q, userID, videoID); err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Error("Failed to unlike video")
		return false
	}
	return true
}

func (r *UserDataRepository) GetLikedVideos(ctx context.Context, userID string) []string {
	q := `SELECT video_id FROM liked_videos WHERE user_id=$1 ORDER BY liked_at DESC`
	return r.queryIDs(ctx, "Failed to fetch liked videos", q, userID)
}

func (r *UserDataRepository) IsVideoLiked(ctx context.Context, userID, videoID string) bool {
	q := `SELECT 1 FROM liked_videos WHERE user_id=$1 AND video_id=$2`
	return r.exists(ctx, "Failed to check if video is liked", q, userID, videoID)
}

func (r *UserDataRepository) Subscribe(ctx context.Context, userID, channelID string) bool {
	q := `INSERT INTO subscriptions (user_id, channel_id, subscribed_at) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, q, userID, channelID, time.Now().UTC()); err != nil {
		if isUniqueViolation(err) {
			return true
		}
		logger.GetLogger().WithField("error", err).WithField("channel_id", channelID).Error("Failed to subscribe")
		return false
	}
	return true
}

func (r *UserDataRepository) Unsubscribe(ctx context.Context, userID, channelID string) bool {
	q := `DELETE FROM subscriptions WHERE user_id=$1 AND channel_id=$2`
	if _, err := r.db.ExecContext(ctx, q, userID, channelID); err != nil {
		logger.GetLogger().WithField("error", err).WithField("channel_id", channelID).Error("Failed to unsubscribe")
		return false
	}
	return true
}

func (r *UserDataRepository) GetSubscriptions(ctx context.Context, userID string) []string {
	q := `SELECT channel_id FROM subscriptions WHERE user_id=$1 ORDER BY subscribed_at DESC`
	return r.queryIDs(ctx, "Failed to fetch subscriptions", q, userID)
}

func (r *UserDataRepository) IsSubscribed(ctx context.Context, userID, channelID string) bool {
	q := `SELECT 1 FROM subscriptions WHERE user_id=$1 AND channel_id=$2`
	return r.exists(ctx, "Failed to check subscription", q, userID, channelID)
}

// FetchAllUserData fans out the three reads concurrently. Each read already
// degrades to an empty list on failure, so a partial outage never fails the
// composite call.
func (r *UserDataRepository) FetchAllUserData(ctx context.Context, userID string) model.UserData {
	var data model.UserData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.WatchHistory = r.GetWatchHistory(ctx, userID)
		return nil
	})
	g.Go(func() error {
		data.LikedVideos = r.GetLikedVideos(ctx, userID)
		return nil
	})
	g.Go(func() error {
		data.Subscriptions = r.GetSubscriptions(ctx, userID)
		return nil
	})
	_ = g.Wait()
	return data
}

func (r *UserDataRepository) queryIDs(ctx context.Context, failMsg, query string, args ...interface{}) []string {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error(failMsg)
		return []string{}
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			logger.GetLogger().WithField("error", err).Error(failMsg)
			return []string{}
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		logger.GetLogger().WithField("error", err).Error(failMsg)
		return []string{}
	}
	return ids
}

func (r *UserDataRepository) exists(ctx context.Context, failMsg, query string, args ...interface{}) bool {
	var one int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.GetLogger().WithField("error", err).Error(failMsg)
		}
		return false
	}
	return true
}

// isUniqueViolation reports whether err is a duplicate-key conflict (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key")
}
