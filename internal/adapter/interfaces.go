package adapter

import (
	"context"

	"github.com/yjkwon-dev/pinggye/models"
)

// API is the client-side view of the server's JSON API. The terminal client
// talks to the server exclusively through this interface.
type API interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.UserResponse, error)

	GenerateExcuse(ctx context.Context, req models.ExcuseRequest) (*models.ExcuseResponse, error)
	RecentExcuses(ctx context.Context, limit int) ([]models.Excuse, error)
	BookmarkedExcuses(ctx context.Context) ([]models.Excuse, error)
	SetBookmark(ctx context.Context, id int64, bookmarked bool) (*models.Excuse, error)
	ClearExcuses(ctx context.Context) error

	CurrentWeekUsage(ctx context.Context) (*models.UsageSummary, error)
	UsageHistory(ctx context.Context) ([]models.UsageStats, error)
}
