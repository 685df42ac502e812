package service

import (
	"context"

	"github.com/yjkwon-dev/pinggye/models"
)

// AuthService covers account creation and credential checks.
type AuthService interface {
	// Signup creates an account. Returns ErrMissingFields or
	// ErrUsernameTaken on invalid input.
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	// Login verifies credentials and returns the account. A wrong password
	// and an unknown username both map to ErrAuthenticationFailed.
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	// GetUser returns the account by ID.
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// ExcuseService covers excuse generation and history management.
type ExcuseService interface {
	// GenerateExcuse validates the request, produces the text, persists it
	// and counts it against the owner's weekly usage.
	GenerateExcuse(ctx context.Context, req models.ExcuseRequest, owner *string) (*models.Excuse, error)
	GetRecentExcuses(ctx context.Context, limit int, owner *string) ([]models.Excuse, error)
	GetBookmarkedExcuses(ctx context.Context, owner *string) ([]models.Excuse, error)
	SetBookmark(ctx context.Context, id int64, bookmarked bool) (*models.Excuse, error)
	ClearExcuses(ctx context.Context, owner *string) error
}

// UsageService exposes weekly usage counters.
type UsageService interface {
	// CurrentWeek returns the owner's counter for the running week; a
	// fresh week yields a zero summary, never an error.
	CurrentWeek(ctx context.Context, owner *string) (*models.UsageSummary, error)
	// History returns all of the owner's week buckets, newest first.
	History(ctx context.Context, owner *string) ([]models.UsageStats, error)
}
