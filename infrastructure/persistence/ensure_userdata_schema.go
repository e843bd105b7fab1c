package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureUserDataSchema creates the three user-owned relations if they are
// missing. Safe to call at startup.
func EnsureUserDataSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS watch_history (
			user_id    TEXT NOT NULL,
			video_id   TEXT NOT NULL,
			watched_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, video_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_watch_history_user_watched ON watch_history(user_id, watched_at DESC)`,
		`CREATE TABLE IF NOT EXISTS liked_videos (
			id       BIGSERIAL PRIMARY KEY,
			user_id  TEXT NOT NULL,
			video_id TEXT NOT NULL,
			liked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT uq_liked_videos_user_video UNIQUE (user_id, video_id)
		)`,
		`CREATE TABLE IF NOT EXISTS subscriptions (
			id            BIGSERIAL PRIMARY KEY,
			user_id       TEXT NOT NULL,
			channel_id    TEXT NOT NULL,
			subscribed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT uq_subscriptions_user_channel UNIQUE (user_id, channel_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring user data schema failed: %w", err)
		}
	}
	return nil
}
