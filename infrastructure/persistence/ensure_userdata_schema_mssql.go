package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureUserDataSchemaMSSQL is the SQL Server counterpart of
// EnsureUserDataSchema.
func EnsureUserDataSchemaMSSQL(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stmts := []string{
		`IF NOT EXISTS (SELECT * FROM sys.objects WHERE object_id = OBJECT_ID(N'dbo.[watch_history]') AND type = N'U')
		CREATE TABLE dbo.[watch_history] (
			user_id    NVARCHAR(64) NOT NULL,
			video_id   NVARCHAR(64) NOT NULL,
			watched_at DATETIME2 NOT NULL CONSTRAINT df_watch_history_watched_at DEFAULT SYSUTCDATETIME(),
			CONSTRAINT pk_watch_history PRIMARY KEY (user_id, video_id)
		)`,
		`IF NOT EXISTS (SELECT * FROM sys.objects WHERE object_id = OBJECT_ID(N'dbo.[liked_videos]') AND type = N'U')
		CREATE TABLE dbo.[liked_videos] (
			id       BIGINT IDENTITY(1,1) PRIMARY KEY,
			user_id  NVARCHAR(64) NOT NULL,
			video_id NVARCHAR(64) NOT NULL,
			liked_at DATETIME2 NOT NULL CONSTRAINT df_liked_videos_liked_at DEFAULT SYSUTCDATETIME(),
			CONSTRAINT uq_liked_videos_user_video UNIQUE (user_id, video_id)
		)`,
		`IF NOT EXISTS (SELECT * FROM sys.objects WHERE object_id = OBJECT_ID(N'dbo.[subscriptions]') AND type = N'U')
		CREATE TABLE dbo.[subscriptions] (
			id            BIGINT IDENTITY(1,1) PRIMARY KEY,
			user_id       NVARCHAR(64) NOT NULL,
			channel_id    NVARCHAR(64) NOT NULL,
			subscribed_at DATETIME2 NOT NULL CONSTRAINT df_subscriptions_subscribed_at DEFAULT SYSUTCDATETIME(),
			CONSTRAINT uq_subscriptions_user_channel UNIQUE (user_id, channel_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring user data schema (mssql) failed: %w", err)
		}
	}
	return nil
}
