package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjkwon-dev/pinggye/internal/logger"
)

var usageColumns = []string{"id", "user_id", "week", "count", "last_used"}

func newMockUsageRepo(t *testing.T) (*UsageRepo, sqlmock.Sqlmock, time.Time) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)
	repo := NewUsageRepo(&DB{DB: db, log: logger.Nop()}, logger.Nop())
	repo.now = func() time.Time { return now }
	return repo, mock, now
}

func TestUsageRepoIncrementUsage(t *testing.T) {
	repo, mock, now := newMockUsageRepo(t)
	owner := strPtr("user-1")
	week := WeekBucket(now)

	rows := sqlmock.NewRows(usageColumns).
		AddRow(int64(1), "user-1", week, 3, now)

	mock.ExpectQuery(queryUpsertUsage).
		WithArgs(ownerArg(owner), week, now).
		WillReturnRows(rows)

	stats, err := repo.IncrementUsage(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, week, stats.Week)
	require.NotNil(t, stats.UserID)
	assert.Equal(t, "user-1", *stats.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageRepoGetCurrentWeekUsageEmpty(t *testing.T) {
	repo, mock, now := newMockUsageRepo(t)

	mock.ExpectQuery(querySelectCurrentUsage).
		WithArgs(WeekBucket(now), "").
		WillReturnRows(sqlmock.NewRows(usageColumns))

	stats, err := repo.GetCurrentWeekUsage(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageRepoGetUsageHistory(t *testing.T) {
	repo, mock, now := newMockUsageRepo(t)
	owner := strPtr("user-1")

	query, args, err := buildSelectUsageHistory(owner)
	require.NoError(t, err)
	require.Equal(t, []any{"user-1"}, args)

	rows := sqlmock.NewRows(usageColumns).
		AddRow(int64(2), "user-1", "2025-14", 1, now).
		AddRow(int64(1), "user-1", "2025-13", 5, now.Add(-7*24*time.Hour))

	mock.ExpectQuery(query).WithArgs("user-1").WillReturnRows(rows)

	history, err := repo.GetUsageHistory(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2025-14", history[0].Week)
	assert.Equal(t, 5, history[1].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildSelectUsageHistory(t *testing.T) {
	query, args, err := buildSelectUsageHistory(nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, user_id, week, count, last_used FROM usage_stats ORDER BY last_used DESC, id DESC", query)
	assert.Empty(t, args)
}
