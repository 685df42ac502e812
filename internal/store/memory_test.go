package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/models"
)

func newTestMemoryStore() *MemoryStore {
	return NewMemoryStore(logger.Nop())
}

func strPtr(s string) *string { return &s }

func TestMemoryStoreCreateUser(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	created, err := s.CreateUser(ctx, models.User{Username: "hong", Email: "hong@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := s.GetUserByUsername(ctx, "hong")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	byID, err := s.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hong", byID.Username)
}

func TestMemoryStoreCreateUserDuplicates(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	_, err := s.CreateUser(ctx, models.User{Username: "hong", Email: "hong@example.com"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, models.User{Username: "hong", Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = s.CreateUser(ctx, models.User{Username: "kim", Email: "hong@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestMemoryStoreUpsertUser(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	created := time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }

	first, err := s.UpsertUser(ctx, models.User{Username: "hong", Email: "hong@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, created, first.CreatedAt)

	updated := created.Add(48 * time.Hour)
	s.now = func() time.Time { return updated }

	second, err := s.UpsertUser(ctx, models.User{ID: first.ID, Username: "hong", Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created, second.CreatedAt)
	assert.Equal(t, updated, second.UpdatedAt)
	assert.Equal(t, "new@example.com", second.Email)

	stored, err := s.GetUserByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored.CreatedAt)
	assert.Equal(t, "new@example.com", stored.Email)
}

func TestMemoryStoreUpsertUserConflicts(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	_, err := s.CreateUser(ctx, models.User{Username: "hong", Email: "hong@example.com"})
	require.NoError(t, err)

	_, err = s.UpsertUser(ctx, models.User{ID: "other", Username: "hong", Email: "fresh@example.com"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = s.UpsertUser(ctx, models.User{ID: "other", Username: "kim", Email: "hong@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestMemoryStoreUserNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	_, err := s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.GetUserByUsername(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStoreCreateExcuseAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	first, err := s.CreateExcuse(ctx, ExcuseDraft{Category: models.CategoryHealth, Tone: models.ToneLight, Content: "a"}, nil)
	require.NoError(t, err)
	second, err := s.CreateExcuse(ctx, ExcuseDraft{Category: models.CategoryFamily, Tone: models.ToneSerious, Content: "b"}, strPtr("user-1"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Nil(t, first.UserID)
	require.NotNil(t, second.UserID)
	assert.Equal(t, "user-1", *second.UserID)
}

func TestMemoryStoreGetRecentExcuses(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	base := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	clock := base
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	owner := strPtr("user-1")
	for i := 0; i < 3; i++ {
		_, err := s.CreateExcuse(ctx, ExcuseDraft{Category: models.CategoryHealth, Tone: models.ToneLight, Content: "mine"}, owner)
		require.NoError(t, err)
	}
	_, err := s.CreateExcuse(ctx, ExcuseDraft{Category: models.CategoryPersonal, Tone: models.ToneLight, Content: "guest"}, nil)
	require.NoError(t, err)

	// newest first, capped by limit
	recent, err := s.GetRecentExcuses(ctx, 2, nil)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "guest", recent[0].Content)
	assert.True(t, recent[0].CreatedAt.After(recent[1].CreatedAt))

	// owner filter excludes anonymous rows
	mine, err := s.GetRecentExcuses(ctx, 10, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
	for _, e := range mine {
		require.NotNil(t, e.UserID)
		assert.Equal(t, "user-1", *e.UserID)
	}
}

func TestMemoryStoreBookmarks(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	created, err := s.CreateExcuse(ctx, ExcuseDraft{Category: models.CategoryHealth, Tone: models.ToneLight, Content: "a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, created.IsBookmarked)

	marked, err := s.SetBookmark(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, marked.IsBookmarked)

	bookmarked, err := s.GetBookmarkedExcuses(ctx, nil)
	require.NoError(t, err)
	require.Len(t, bookmarked, 1)
	assert.Equal(t, created.ID, bookmarked[0].ID)

	unmarked, err := s.SetBookmark(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, unmarked.IsBookmarked)

	bookmarked, err = s.GetBookmarkedExcuses(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, bookmarked)

	_, err = s.SetBookmark(ctx, 999, true)
	assert.ErrorIs(t, err, ErrExcuseNotFound)
}

func TestMemoryStoreClearExcuses(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()
	owner := strPtr("user-1")

	_, err := s.CreateExcuse(ctx, ExcuseDraft{Category: models.CategoryHealth, Tone: models.ToneLight, Content: "mine"}, owner)
	require.NoError(t, err)
	_, err = s.CreateExcuse(ctx, ExcuseDraft{Category: models.CategoryHealth, Tone: models.ToneLight, Content: "guest"}, nil)
	require.NoError(t, err)

	// owned clear removes only the owner's rows
	require.NoError(t, s.ClearExcuses(ctx, owner))
	remaining, err := s.GetRecentExcuses(ctx, 10, nil)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Nil(t, remaining[0].UserID)

	// nil owner clears everything
	require.NoError(t, s.ClearExcuses(ctx, nil))
	remaining, err = s.GetRecentExcuses(ctx, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestMemoryStoreUsage(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()
	now := time.Date(2025, time.February, 10, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	owner := strPtr("user-1")

	// empty week
	stats, err := s.GetCurrentWeekUsage(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, stats)

	// first increment creates the bucket
	stats, err = s.IncrementUsage(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, WeekBucket(now), stats.Week)
	require.NotNil(t, stats.UserID)
	assert.Equal(t, "user-1", *stats.UserID)

	// further increments reuse it
	stats, err = s.IncrementUsage(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)

	// anonymous usage lands in its own bucket
	anon, err := s.IncrementUsage(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, anon.Count)
	assert.Nil(t, anon.UserID)

	current, err := s.GetCurrentWeekUsage(ctx, owner)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 2, current.Count)
}

func TestMemoryStoreUsageNewWeekStartsFresh(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	now := time.Date(2025, time.February, 10, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_, err := s.IncrementUsage(ctx, nil)
	require.NoError(t, err)

	// a week later the counter starts over
	now = now.Add(7 * 24 * time.Hour)
	stats, err := s.IncrementUsage(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)

	history, err := s.GetUsageHistory(ctx, nil)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].LastUsed.After(history[1].LastUsed))
}

func TestMemoryStoreUsageHistoryOwnerFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()
	owner := strPtr("user-1")

	_, err := s.IncrementUsage(ctx, owner)
	require.NoError(t, err)
	_, err = s.IncrementUsage(ctx, nil)
	require.NoError(t, err)

	history, err := s.GetUsageHistory(ctx, owner)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].UserID)
	assert.Equal(t, "user-1", *history[0].UserID)
}
