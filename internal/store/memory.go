package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yjkwon-dev/pinggye/internal/logger"

	"github.com/yjkwon-dev/pinggye/models"
)

// MemoryStore is the default storage backend: mutex-guarded maps with
// sequential excuse and usage IDs starting at 1. All data is lost on restart.
// It implements UserRepository, ExcuseRepository and UsageRepository.
type MemoryStore struct {
	mu sync.RWMutex

	users      map[string]models.User
	excuses    map[int64]models.Excuse
	usageStats map[string]models.UsageStats

	nextExcuseID int64
	nextUsageID  int64

	// now is swapped in tests to pin week buckets and timestamps.
	now func() time.Time

	log *logger.Logger
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]models.User),
		excuses:      make(map[int64]models.Excuse),
		usageStats:   make(map[string]models.UsageStats),
		nextExcuseID: 1,
		nextUsageID:  1,
		now:          time.Now,
		log:          log,
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, ErrUsernameAlreadyExists
		}
		if user.Email != "" && existing.Email == user.Email {
			return nil, ErrEmailAlreadyExists
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = user
	stored := user
	return &stored, nil
}

func (s *MemoryStore) UpsertUser(_ context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.ID == user.ID {
			continue
		}
		if existing.Username == user.Username {
			return nil, ErrUsernameAlreadyExists
		}
		if user.Email != "" && existing.Email == user.Email {
			return nil, ErrEmailAlreadyExists
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := s.now()
	user.UpdatedAt = now
	if existing, ok := s.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = now
	}

	s.users[user.ID] = user
	stored := user
	return &stored, nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) CreateExcuse(_ context.Context, draft ExcuseDraft, owner *string) (*models.Excuse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	excuse := models.Excuse{
		ID:           s.nextExcuseID,
		UserID:       copyOwner(owner),
		Category:     string(draft.Category),
		Tone:         string(draft.Tone),
		Content:      draft.Content,
		UserInput:    copyOwner(draft.UserInput),
		CreatedAt:    s.now(),
		IsBookmarked: draft.IsBookmarked,
	}
	s.nextExcuseID++

	s.excuses[excuse.ID] = excuse
	stored := excuse
	return &stored, nil
}

func (s *MemoryStore) GetExcuseByID(_ context.Context, id int64) (*models.Excuse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	excuse, ok := s.excuses[id]
	if !ok {
		return nil, ErrExcuseNotFound
	}
	return &excuse, nil
}

func (s *MemoryStore) GetRecentExcuses(_ context.Context, limit int, owner *string) ([]models.Excuse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	excuses := s.collectExcuses(owner, false)
	if limit > 0 && len(excuses) > limit {
		excuses = excuses[:limit]
	}
	return excuses, nil
}

func (s *MemoryStore) GetBookmarkedExcuses(_ context.Context, owner *string) ([]models.Excuse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectExcuses(owner, true), nil
}

func (s *MemoryStore) SetBookmark(_ context.Context, id int64, bookmarked bool) (*models.Excuse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	excuse, ok := s.excuses[id]
	if !ok {
		return nil, ErrExcuseNotFound
	}

	excuse.IsBookmarked = 0
	if bookmarked {
		excuse.IsBookmarked = 1
	}
	s.excuses[id] = excuse

	updated := excuse
	return &updated, nil
}

func (s *MemoryStore) ClearExcuses(_ context.Context, owner *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner == nil {
		s.excuses = make(map[int64]models.Excuse)
		return nil
	}

	for id, excuse := range s.excuses {
		if excuse.UserID != nil && *excuse.UserID == *owner {
			delete(s.excuses, id)
		}
	}
	return nil
}

func (s *MemoryStore) GetCurrentWeekUsage(_ context.Context, owner *string) (*models.UsageStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := usageKey(WeekBucket(s.now()), owner)
	stats, ok := s.usageStats[key]
	if !ok {
		return nil, nil
	}
	return &stats, nil
}

func (s *MemoryStore) IncrementUsage(_ context.Context, owner *string) (*models.UsageStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	week := WeekBucket(now)
	key := usageKey(week, owner)

	stats, ok := s.usageStats[key]
	if ok {
		stats.Count++
		stats.LastUsed = now
	} else {
		stats = models.UsageStats{
			ID:       s.nextUsageID,
			UserID:   copyOwner(owner),
			Week:     week,
			Count:    1,
			LastUsed: now,
		}
		s.nextUsageID++
	}
	s.usageStats[key] = stats

	updated := stats
	return &updated, nil
}

func (s *MemoryStore) GetUsageHistory(_ context.Context, owner *string) ([]models.UsageStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]models.UsageStats, 0, len(s.usageStats))
	for _, stats := range s.usageStats {
		if owner != nil && (stats.UserID == nil || *stats.UserID != *owner) {
			continue
		}
		history = append(history, stats)
	}

	sort.Slice(history, func(i, j int) bool {
		if !history[i].LastUsed.Equal(history[j].LastUsed) {
			return history[i].LastUsed.After(history[j].LastUsed)
		}
		return history[i].ID > history[j].ID
	})
	return history, nil
}

// collectExcuses snapshots matching excuses sorted newest first with an
// ID tie-break, so results are stable when timestamps collide.
// Callers must hold at least the read lock.
func (s *MemoryStore) collectExcuses(owner *string, bookmarkedOnly bool) []models.Excuse {
	excuses := make([]models.Excuse, 0, len(s.excuses))
	for _, excuse := range s.excuses {
		if bookmarkedOnly && excuse.IsBookmarked != 1 {
			continue
		}
		if owner != nil && (excuse.UserID == nil || *excuse.UserID != *owner) {
			continue
		}
		excuses = append(excuses, excuse)
	}

	sort.Slice(excuses, func(i, j int) bool {
		if !excuses[i].CreatedAt.Equal(excuses[j].CreatedAt) {
			return excuses[i].CreatedAt.After(excuses[j].CreatedAt)
		}
		return excuses[i].ID > excuses[j].ID
	})
	return excuses
}

func copyOwner(owner *string) *string {
	if owner == nil {
		return nil
	}
	v := *owner
	return &v
}
