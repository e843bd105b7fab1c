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

	mssql "github.com/microsoft/go-mssqldb"
	"golang.org/x/sync/errgroup"
)

// UserDataRepositoryMSSQL is the SQL Server implementation of the user data
// gateway, used when the service runs against Azure SQL.
type UserDataRepositoryMSSQL struct {
	db *sql.DB
}

func NewUserDataRepositoryMSSQL(db *sql.DB) repository.IUserData {
	return &UserDataRepositoryMSSQL{db: db}
}

func (r *UserDataRepositoryMSSQL) AddToWatchHistory(ctx context.Context, userID, videoID string) bool {
	q := `MERGE dbo.[watch_history] AS target
USING (VALUES (@p1, @p2)) AS src(user_id, video_id)
ON target.user_id = src.user_id AND target.video_id = src.video_id
WHEN MATCHED THEN UPDATE SET watched_at = @p3
WHEN NOT MATCHED THEN INSERT (user_id, video_id, watched_at) VALUES (@p1, @p2, @p3);`
	if _, err := r.db.ExecContext(ctx, q, userID, videoID, time.Now().UTC()); err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Error("mssql: failed to save watch history")
		return false
	}
	return true
}

func (r *UserDataRepositoryMSSQL) GetWatchHistory(ctx context.Context, userID string) []string {
	q := `SELECT TOP (@p2) video_id FROM dbo.[watch_history] WHERE user_id=@p1 ORDER BY watched_at DESC`
	return r.queryIDs(ctx, "mssql: failed to fetch watch history", q, userID, watchHistoryFetchLimit)
}

func (r *UserDataRepositoryMSSQL) LikeVideo(ctx context.Context, userID, videoID string) bool {
	q := `INSERT INTO dbo.[liked_videos] (user_id, video_id, liked_at) VALUES (@p1, @p2, @p3)`
	if _, err := r.db.ExecContext(ctx, q, userID, videoID, time.Now().UTC()); err != nil {
		if isUniqueViolationMSSQL(err) {
			return true
		}
		logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Error("mssql: failed to like video")
		return false
	}
	return true
}

func (r *UserDataRepositoryMSSQL) UnlikeVideo(ctx context.Context, userID, videoID string) bool {
	q := `DELETE FROM dbo.[liked_videos] WHERE user_id=@p1 AND video_id=@p2`
	if _, err := r.db.ExecContext(ctx, q, userID, videoID); err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Error("mssql: failed to unlike video")
		return false
	}
	return true
}

func (r *UserDataRepositoryMSSQL) GetLikedVideos(ctx context.Context, userID string) []string {
	q := `SELECT video_id FROM dbo.[liked_videos] WHERE user_id=@p1 ORDER BY liked_at DESC`
	return r.queryIDs(ctx, "mssql: failed to fetch liked videos", q, userID)
}

func (r *UserDataRepositoryMSSQL) IsVideoLiked(ctx context.Context, userID, videoID string) bool {
	q := `SELECT 1 FROM dbo.[liked_videos] WHERE user_id=@p1 AND video_id=@p2`
	return r.exists(ctx, "mssql: failed to check if video is liked", q, userID, videoID)
}

func (r *UserDataRepositoryMSSQL) Subscribe(ctx context.Context, userID, channelID string) bool {
	q := `INSERT INTO dbo.[subscriptions] (user_id, channel_id, subscribed_at) VALUES (@p1, @p2, @p3)`
	if _, err := r.db.ExecContext(ctx, q, userID, channelID, time.Now().UTC()); err != nil {
		if isUniqueViolationMSSQL(err) {
			return true
		}
		logger.GetLogger().WithField("error", err).WithField("channel_id", channelID).Error("mssql: failed to subscribe")
		return false
	}
	return true
}

func (r *UserDataRepositoryMSSQL) Unsubscribe(ctx context.Context, userID, channelID string) bool {
	q := `DELETE FROM dbo.[subscriptions] WHERE user_id=@p1 AND channel_id=@p2`
	if _, err := r.db.ExecContext(ctx, q, userID, channelID); err != nil {
		logger.GetLogger().WithField("error", err).WithField("channel_id", channelID).Error("mssql: failed to unsubscribe")
		return false
	}
	return true
}

func (r *UserDataRepositoryMSSQL) GetSubscriptions(ctx context.Context, userID string) []string {
	q := `SELECT channel_id FROM dbo.[subscriptions] WHERE user_id=@p1 ORDER BY subscribed_at DESC`
	return r.queryIDs(ctx, "mssql: failed to fetch subscriptions", q, userID)
}

func (r *UserDataRepositoryMSSQL) IsSubscribed(ctx context.Context, userID, channelID string) bool {
	q := `SELECT 1 FROM dbo.[subscriptions] WHERE user_id=@p1 AND channel_id=@p2`
	return r.exists(ctx, "mssql: failed to check subscription", q, userID, channelID)
}

func (r *UserDataRepositoryMSSQL) FetchAllUserData(ctx context.Context, userID string) model.UserData {
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

func (r *UserDataRepositoryMSSQL) queryIDs(ctx context.Context, failMsg, query string, args ...interface{}) []string {
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

func (r *UserDataRepositoryMSSQL) exists(ctx context.Context, failMsg, query string, args ...interface{}) bool {
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

// isUniqueViolationMSSQL reports a duplicate-key conflict (2627 unique
// constraint, 2601 unique index).
func isUniqueViolationMSSQL(err error) bool {
	var sqlErr mssql.Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Number == 2627 || sqlErr.Number == 2601
	}
	return strings.Contains(err.Error(), "duplicate key")
}
