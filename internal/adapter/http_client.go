// Package adapter implements the HTTP client the terminal application uses
// to reach the server. The session cookie is kept in an in-memory cookie
// jar, so a login persists for the lifetime of the process.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/yjkwon-dev/pinggye/internal/config"
	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/models"
)

// Client implements API over HTTP with resty.
type Client struct {
	client *resty.Client
	log    *logger.Logger
}

// NewClient builds an API client for the configured server.
func NewClient(cfg *config.ClientConfig, log *logger.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	client := resty.New().
		SetBaseURL(cfg.ServerURL).
		SetTimeout(cfg.RequestTimeout).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json")

	return &Client{client: client, log: log}, nil
}

func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var result models.AuthResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/signup")
	if err = firstError(err, resp); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var result models.AuthResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err = firstError(err, resp); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Post("/api/auth/logout")
	return firstError(err, resp)
}

func (c *Client) CurrentUser(ctx context.Context) (*models.UserResponse, error) {
	var result models.UserResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/auth/user")
	if err = firstError(err, resp); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GenerateExcuse(ctx context.Context, req models.ExcuseRequest) (*models.ExcuseResponse, error) {
	var result models.ExcuseResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/generate-excuse")
	if err = firstError(err, resp); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RecentExcuses(ctx context.Context, limit int) ([]models.Excuse, error) {
	var result []models.Excuse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/api/excuses/recent")
	if err = firstError(err, resp); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) BookmarkedExcuses(ctx context.Context) ([]models.Excuse, error) {
	var result []models.Excuse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/excuses/bookmarked")
	if err = firstError(err, resp); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) SetBookmark(ctx context.Context, id int64, bookmarked bool) (*models.Excuse, error) {
	var result models.Excuse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.BookmarkRequest{Bookmarked: bookmarked}).
		SetResult(&result).
		Patch(fmt.Sprintf("/api/excuses/%d/bookmark", id))
	if err = firstError(err, resp); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ClearExcuses(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Delete("/api/excuses/clear")
	return firstError(err, resp)
}

func (c *Client) CurrentWeekUsage(ctx context.Context) (*models.UsageSummary, error) {
	var result models.UsageSummary
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/usage/current-week")
	if err = firstError(err, resp); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UsageHistory(ctx context.Context) ([]models.UsageStats, error) {
	var result []models.UsageStats
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/usage/history")
	if err = firstError(err, resp); err != nil {
		return nil, err
	}
	return result, nil
}

// firstError collapses transport errors and non-2xx responses into one
// error value, mapping 401 and 404 to their sentinels and preserving the
// server's localized message for everything else.
func firstError(err error, resp *resty.Response) error {
	if err != nil {
		return fmt.Errorf("error calling server: %w", err)
	}
	if !resp.IsError() {
		return nil
	}

	var body models.MessageResponse
	_ = json.Unmarshal(resp.Body(), &body)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body.Message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body.Message)
	default:
		return &APIError{Status: resp.StatusCode(), Message: body.Message}
	}
}
