package http

import (
	"context"

	"github.com/yjkwon-dev/pinggye/models"
)

type authServiceMock struct {
	SignupFn  func(ctx context.Context, req models.SignupRequest) (*models.User, error)
	LoginFn   func(ctx context.Context, req models.LoginRequest) (*models.User, error)
	GetUserFn func(ctx context.Context, id string) (*models.User, error)
}

func (m *authServiceMock) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	return m.SignupFn(ctx, req)
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	return m.LoginFn(ctx, req)
}

func (m *authServiceMock) GetUser(ctx context.Context, id string) (*models.User, error) {
	return m.GetUserFn(ctx, id)
}

type excuseServiceMock struct {
	GenerateExcuseFn       func(ctx context.Context, req models.ExcuseRequest, owner *string) (*models.Excuse, error)
	GetRecentExcusesFn     func(ctx context.Context, limit int, owner *string) ([]models.Excuse, error)
	GetBookmarkedExcusesFn func(ctx context.Context, owner *string) ([]models.Excuse, error)
	SetBookmarkFn          func(ctx context.Context, id int64, bookmarked bool) (*models.Excuse, error)
	ClearExcusesFn         func(ctx context.Context, owner *string) error
}

func (m *excuseServiceMock) GenerateExcuse(ctx context.Context, req models.ExcuseRequest, owner *string) (*models.Excuse, error) {
	return m.GenerateExcuseFn(ctx, req, owner)
}

func (m *excuseServiceMock) GetRecentExcuses(ctx context.Context, limit int, owner *string) ([]models.Excuse, error) {
	return m.GetRecentExcusesFn(ctx, limit, owner)
}

func (m *excuseServiceMock) GetBookmarkedExcuses(ctx context.Context, owner *string) ([]models.Excuse, error) {
	return m.GetBookmarkedExcusesFn(ctx, owner)
}

func (m *excuseServiceMock) SetBookmark(ctx context.Context, id int64, bookmarked bool) (*models.Excuse, error) {
	return m.SetBookmarkFn(ctx, id, bookmarked)
}

func (m *excuseServiceMock) ClearExcuses(ctx context.Context, owner *string) error {
	return m.ClearExcusesFn(ctx, owner)
}

type usageServiceMock struct {
	CurrentWeekFn func(ctx context.Context, owner *string) (*models.UsageSummary, error)
	HistoryFn     func(ctx context.Context, owner *string) ([]models.UsageStats, error)
}

func (m *usageServiceMock) CurrentWeek(ctx context.Context, owner *string) (*models.UsageSummary, error) {
	return m.CurrentWeekFn(ctx, owner)
}

func (m *usageServiceMock) History(ctx context.Context, owner *string) ([]models.UsageStats, error) {
	return m.HistoryFn(ctx, owner)
}
