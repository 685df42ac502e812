package store

import (
	"context"

	"github.com/yjkwon-dev/pinggye/models"
)

// ExcuseDraft is the insertable part of an excuse, before the store assigns
// an ID and creation timestamp.
type ExcuseDraft struct {
	Category     models.Category
	Tone         models.Tone
	Content      string
	UserInput    *string
	IsBookmarked int
}

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user and returns the stored copy. Returns
	// ErrUsernameAlreadyExists or ErrEmailAlreadyExists when the
	// corresponding field is taken.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// UpsertUser inserts the user, or replaces the existing record with
	// the same ID while preserving its original CreatedAt. Returns the
	// same uniqueness errors as CreateUser.
	UpsertUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUserByID returns the user with the given ID or ErrUserNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// GetUserByUsername returns the user with the given username or
	// ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// ExcuseRepository persists generated excuses.
//
// The owner parameter is a nullable user ID: nil means the caller is
// anonymous. For list and clear operations a nil owner applies no ownership
// filter at all, so anonymous callers see the shared history.
type ExcuseRepository interface {
	CreateExcuse(ctx context.Context, draft ExcuseDraft, owner *string) (*models.Excuse, error)
	// GetExcuseByID returns the excuse or ErrExcuseNotFound.
	GetExcuseByID(ctx context.Context, id int64) (*models.Excuse, error)
	// GetRecentExcuses returns up to limit excuses, newest first.
	GetRecentExcuses(ctx context.Context, limit int, owner *string) ([]models.Excuse, error)
	// GetBookmarkedExcuses returns bookmarked excuses, newest first.
	GetBookmarkedExcuses(ctx context.Context, owner *string) ([]models.Excuse, error)
	// SetBookmark flips the bookmark flag and returns the updated excuse,
	// or ErrExcuseNotFound. Ownership is not checked: bookmarks are shared.
	SetBookmark(ctx context.Context, id int64, bookmarked bool) (*models.Excuse, error)
	// ClearExcuses removes the owner's excuses; with a nil owner it removes
	// all of them.
	ClearExcuses(ctx context.Context, owner *string) error
}

// UsageRepository tracks per-week generation counts.
//
// Counts are bucketed by [WeekBucket]. A nil owner addresses the single
// shared anonymous bucket of the week, not "all owners".
type UsageRepository interface {
	// GetCurrentWeekUsage returns the bucket for the current week, or
	// (nil, nil) when nothing was generated yet this week.
	GetCurrentWeekUsage(ctx context.Context, owner *string) (*models.UsageStats, error)
	// IncrementUsage bumps the current week's count by one, creating the
	// bucket on first use, and returns the updated row.
	IncrementUsage(ctx context.Context, owner *string) (*models.UsageStats, error)
	// GetUsageHistory returns all buckets ordered by last use, newest
	// first. A nil owner returns every bucket.
	GetUsageHistory(ctx context.Context, owner *string) ([]models.UsageStats, error)
}
