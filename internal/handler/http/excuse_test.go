package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjkwon-dev/pinggye/internal/service"
	"github.com/yjkwon-dev/pinggye/internal/store"
	"github.com/yjkwon-dev/pinggye/models"
)

func TestGenerateExcuse(t *testing.T) {
	owner := "user-1"
	stored := &models.Excuse{
		ID:       1,
		UserID:   &owner,
		Category: "health",
		Tone:     "light",
		Content:  "안녕하세요 교수님, 생성된 핑계입니다.",
	}

	var gotOwner *string
	h, sessions := newTestHandler(&service.Services{
		Excuses: &excuseServiceMock{
			GenerateExcuseFn: func(_ context.Context, req models.ExcuseRequest, owner *string) (*models.Excuse, error) {
				gotOwner = owner
				require.Equal(t, "health", req.Category)
				require.Equal(t, "light", req.Tone)
				return stored, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-excuse", strings.NewReader(`{"category":"health","tone":"light"}`))
	req.AddCookie(sessionCookie(sessions, "user-1"))
	rec := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ExcuseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, stored.Content, resp.Excuse)
	assert.Equal(t, "health", resp.Category)
	assert.Equal(t, "light", resp.Tone)

	require.NotNil(t, gotOwner)
	assert.Equal(t, "user-1", *gotOwner)
}

func TestGenerateExcuseAnonymous(t *testing.T) {
	var gotOwner *string
	h, _ := newTestHandler(&service.Services{
		Excuses: &excuseServiceMock{
			GenerateExcuseFn: func(_ context.Context, _ models.ExcuseRequest, owner *string) (*models.Excuse, error) {
				gotOwner = owner
				return &models.Excuse{ID: 1, Category: "health", Tone: "light", Content: "본문"}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-excuse", strings.NewReader(`{"category":"health","tone":"light"}`))
	rec := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotOwner)
}

func TestGenerateExcuseValidationError(t *testing.T) {
	h, _ := newTestHandler(&service.Services{
		Excuses: &excuseServiceMock{
			GenerateExcuseFn: func(_ context.Context, _ models.ExcuseRequest, _ *string) (*models.Excuse, error) {
				return nil, service.ErrInvalidCategory
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-excuse", strings.NewReader(`{"category":"weather","tone":"light"}`))
	rec := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgGenerateError)
}

func TestGenerateExcuseStorageError(t *testing.T) {
	h, _ := newTestHandler(&service.Services{
		Excuses: &excuseServiceMock{
			GenerateExcuseFn: func(_ context.Context, _ models.ExcuseRequest, _ *string) (*models.Excuse, error) {
				return nil, errors.New("storage down")
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/generate-excuse", strings.NewReader(`{"category":"health","tone":"light"}`))
	rec := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), msgGenerateError)
}

func TestRecentExcusesLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "default", query: "", wantLimit: 10},
		{name: "explicit", query: "?limit=5", wantLimit: 5},
		{name: "invalid falls back", query: "?limit=abc", wantLimit: 10},
		{name: "non-positive falls back", query: "?limit=0", wantLimit: 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var gotLimit int
			h, _ := newTestHandler(&service.Services{
				Excuses: &excuseServiceMock{
					GetRecentExcusesFn: func(_ context.Context, limit int, _ *string) ([]models.Excuse, error) {
						gotLimit = limit
						return []models.Excuse{}, nil
					},
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/excuses/recent"+test.query, nil)
			rec := httptest.NewRecorder()
			h.InitRoutes().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, test.wantLimit, gotLimit)
			assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestBookmarkedExcuses(t *testing.T) {
	now := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)
	h, _ := newTestHandler(&service.Services{
		Excuses: &excuseServiceMock{
			GetBookmarkedExcusesFn: func(_ context.Context, _ *string) ([]models.Excuse, error) {
				return []models.Excuse{{ID: 1, Category: "health", Tone: "light", Content: "본문", CreatedAt: now, IsBookmarked: 1}}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/excuses/bookmarked", nil)
	rec := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var excuses []models.Excuse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &excuses))
	require.Len(t, excuses, 1)
	assert.Equal(t, 1, excuses[0].IsBookmarked)
}

func TestSetBookmark(t *testing.T) {
	var gotID int64
	var gotBookmarked bool
	h, _ := newTestHandler(&service.Services{
		Excuses: &excuseServiceMock{
			SetBookmarkFn: func(_ context.Context, id int64, bookmarked bool) (*models.Excuse, error) {
				gotID, gotBookmarked = id, bookmarked
				return &models.Excuse{ID: id, Category: "health", Tone: "light", Content: "본문", IsBookmarked: 1}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/excuses/7/bookmark", strings.NewReader(`{"bookmarked":true}`))
	rec := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotID)
	assert.True(t, gotBookmarked)
}

func TestSetBookmarkNotFound(t *testing.T) {
	h, _ := newTestHandler(&service.Services{
		Excuses: &excuseServiceMock{
			SetBookmarkFn: func(_ context.Context, _ int64, _ bool) (*models.Excuse, error) {
				return nil, store.ErrExcuseNotFound
			},
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/excuses/999/bookmark", strings.NewReader(`{"bookmarked":true}`))
	rec := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgExcuseNotFound)
}

func TestSetBookmarkBadID(t *testing.T) {
	h, _ := newTestHandler(&service.Services{Excuses: &excuseServiceMock{}})

	req := httptest.NewRequest(http.MethodPatch, "/api/excuses/abc/bookmark", strings.NewReader(`{"bookmarked":true}`))
	rec := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearExcuses(t *testing.T) {
	var gotOwner *string
	called := false
	h, sessions := newTestHandler(&service.Services{
		Excuses: &excuseServiceMock{
			ClearExcusesFn: func(_ context.Context, owner *string) error {
				called = true
				gotOwner = owner
				return nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/excuses/clear", nil)
	req.AddCookie(sessionCookie(sessions, "user-1"))
	rec := httptest.NewRecorder()
	h.InitRoutes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCleared)
	assert.True(t, called)
	require.NotNil(t, gotOwner)
	assert.Equal(t, "user-1", *gotOwner)
}
