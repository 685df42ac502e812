package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/models"
)

// UsageRepo is the SQL-backed UsageRepository.
type UsageRepo struct {
	db  *DB
	now func() time.Time
	log *logger.Logger
}

// NewUsageRepo creates a UsageRepo over the shared database handle.
func NewUsageRepo(db *DB, log *logger.Logger) *UsageRepo {
	return &UsageRepo{db: db, now: time.Now, log: log}
}

func (r *UsageRepo) GetCurrentWeekUsage(ctx context.Context, owner *string) (*models.UsageStats, error) {
	week := WeekBucket(r.now())
	ownerKey := ""
	if owner != nil {
		ownerKey = *owner
	}

	stats, err := scanUsage(r.db.QueryRowContext(ctx, querySelectCurrentUsage, week, ownerKey))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error selecting current usage: %w", err)
	}
	return stats, nil
}

func (r *UsageRepo) IncrementUsage(ctx context.Context, owner *string) (*models.UsageStats, error) {
	now := r.now()
	week := WeekBucket(now)

	stats, err := scanUsage(r.db.QueryRowContext(ctx, queryUpsertUsage, ownerArg(owner), week, now))
	if err != nil {
		return nil, fmt.Errorf("error incrementing usage: %w", err)
	}
	return stats, nil
}

func (r *UsageRepo) GetUsageHistory(ctx context.Context, owner *string) ([]models.UsageStats, error) {
	query, args, err := buildSelectUsageHistory(owner)
	if err != nil {
		return nil, fmt.Errorf("error building usage history query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error selecting usage history: %w", err)
	}
	defer rows.Close()

	history := make([]models.UsageStats, 0)
	for rows.Next() {
		stats, scanErr := scanUsage(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("error scanning usage row: %w", scanErr)
		}
		history = append(history, *stats)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usage rows: %w", err)
	}

	return history, nil
}

func scanUsage(row rowScanner) (*models.UsageStats, error) {
	var stats models.UsageStats
	var userID sql.NullString

	err := row.Scan(&stats.ID, &userID, &stats.Week, &stats.Count, &stats.LastUsed)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		stats.UserID = &userID.String
	}
	return &stats, nil
}
