package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yjkwon-dev/pinggye/internal/config"
	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&config.ClientConfig{
		ServerURL:      srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return client
}

func TestClientLoginKeepsSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "pinggye_session", Value: "session-1", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.AuthResponse{
			Message: "로그인 성공",
			User:    models.UserResponse{ID: "user-1", Username: "hong"},
		})
	})
	mux.HandleFunc("GET /api/auth/user", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("pinggye_session")
		if err != nil || cookie.Value != "session-1" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.MessageResponse{Message: "Unauthorized"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.UserResponse{ID: "user-1", Username: "hong"})
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	resp, err := client.Login(ctx, models.LoginRequest{Username: "hong", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "로그인 성공", resp.Message)

	user, err := client.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hong", user.Username)
}

func TestClientMapsUnauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "Unauthorized"})
	}))

	_, err := client.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientMapsNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "핑계를 찾을 수 없습니다."})
	}))

	_, err := client.SetBookmark(context.Background(), 999, true)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "핑계를 찾을 수 없습니다.")
}

func TestClientMapsServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "핑계 생성에 실패했습니다. 다시 시도해주세요."})
	}))

	_, err := client.GenerateExcuse(context.Background(), models.ExcuseRequest{Category: "health", Tone: "light"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "핑계 생성에 실패했습니다. 다시 시도해주세요.", apiErr.Message)
}

func TestClientRecentExcusesPassesLimit(t *testing.T) {
	var gotLimit string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		json.NewEncoder(w).Encode([]models.Excuse{})
	}))

	excuses, err := client.RecentExcuses(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, excuses)
	assert.Equal(t, "5", gotLimit)
}
