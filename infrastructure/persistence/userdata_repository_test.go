package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*UserDataRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &UserDataRepository{db: db}, mock
}

func TestAddToWatchHistoryUpsertsOnRewatch(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at")).
		WithArgs("user-a", "video-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok := repo.AddToWatchHistory(context.Background(), "user-a", "video-1")

	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToWatchHistoryReportsFailure(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("INSERT INTO watch_history").
		WillReturnError(errors.New("connection refused"))

	require.False(t, repo.AddToWatchHistory(context.Background(), "user-a", "video-1"))
}

func TestLikeVideoTreatsDuplicateAsSuccess(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("INSERT INTO liked_videos").
		WithArgs("user-a", "video-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO liked_videos").
		WithArgs("user-a", "video-1", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	require.True(t, repo.LikeVideo(context.Background(), "user-a", "video-1"))
	require.True(t, repo.LikeVideo(context.Background(), "user-a", "video-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeVideoReportsOtherErrors(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("INSERT INTO liked_videos").
		WillReturnError(&pq.Error{Code: "42P01"})

	require.False(t, repo.LikeVideo(context.Background(), "user-a", "video-1"))
}

func TestUnlikeVideoSucceedsWhenNothingDeleted(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("DELETE FROM liked_videos").
		WithArgs("user-a", "video-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.True(t, repo.UnlikeVideo(context.Background(), "user-a", "video-1"))
}

func TestSubscribeTreatsDuplicateAsSuccess(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("INSERT INTO subscriptions").
		WithArgs("user-a", "channel-1", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	require.True(t, repo.Subscribe(context.Background(), "user-a", "channel-1"))
}

func TestGetWatchHistoryReturnsNewestFirst(t *testing.T) {
	repo, mock := newMockRepository(t)
	rows := sqlmock.NewRows([]string{"video_id"}).AddRow("video-3").AddRow("video-1")
	mock.ExpectQuery("SELECT video_id FROM watch_history").
		WithArgs("user-a", watchHistoryFetchLimit).
		WillReturnRows(rows)

	require.Equal(t, []string{"video-3", "video-1"}, repo.GetWatchHistory(context.Background(), "user-a"))
}

func TestGetLikedVideosDegradesToEmptyOnError(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("SELECT video_id FROM liked_videos").
		WillReturnError(errors.New("connection refused"))

	out := repo.GetLikedVideos(context.Background(), "user-a")

	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestIsVideoLiked(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("SELECT 1 FROM liked_videos").
		WithArgs("user-a", "video-1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM liked_videos").
		WithArgs("user-a", "video-2").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	require.True(t, repo.IsVideoLiked(context.Background(), "user-a", "video-1"))
	require.False(t, repo.IsVideoLiked(context.Background(), "user-a", "video-2"))
}

func TestFetchAllUserDataSurvivesPartialFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.MatchExpectationsInOrder(false)
	repo := &UserDataRepository{db: db}

	mock.ExpectQuery("SELECT video_id FROM watch_history").
		WillReturnError(errors.New("connection refused"))
	mock.ExpectQuery("SELECT video_id FROM liked_videos").
		WillReturnError(errors.New("connection refused"))
	mock.ExpectQuery("SELECT channel_id FROM subscriptions").
		WillReturnRows(sqlmock.NewRows([]string{"channel_id"}).AddRow("channel-2"))

	data := repo.FetchAllUserData(context.Background(), "user-a")

	require.Empty(t, data.WatchHistory)
	require.Empty(t, data.LikedVideos)
	require.Equal(t, []string{"channel-2"}, data.Subscriptions)
}
