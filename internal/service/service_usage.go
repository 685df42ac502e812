package service

import (
	"context"

	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/internal/store"
	"github.com/yjkwon-dev/pinggye/models"
)

// Usage implements UsageService.
type Usage struct {
	usage     store.UsageRepository
	warnLimit int
	log       *logger.Logger
}

// NewUsageService creates the usage service. warnLimit sets the weekly count
// at which summaries start carrying warning=true.
func NewUsageService(usage store.UsageRepository, warnLimit int, log *logger.Logger) *Usage {
	return &Usage{usage: usage, warnLimit: warnLimit, log: log}
}

func (u *Usage) CurrentWeek(ctx context.Context, owner *string) (*models.UsageSummary, error) {
	stats, err := u.usage.GetCurrentWeekUsage(ctx, owner)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return &models.UsageSummary{}, nil
	}

	lastUsed := stats.LastUsed
	return &models.UsageSummary{
		Count:    stats.Count,
		LastUsed: &lastUsed,
		Warning:  stats.Count >= u.warnLimit,
	}, nil
}

func (u *Usage) History(ctx context.Context, owner *string) ([]models.UsageStats, error) {
	return u.usage.GetUsageHistory(ctx, owner)
}
