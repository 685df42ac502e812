// Package http exposes the application's JSON API over HTTP: auth, excuse
// generation, bookmarks and usage statistics, all under /api.
package http

import (
	"time"

	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/internal/service"
	"github.com/yjkwon-dev/pinggye/internal/session"
)

// Handler carries the dependencies shared by all HTTP endpoints.
type Handler struct {
	services   *service.Services
	sessions   *session.Manager
	sessionTTL time.Duration
	log        *logger.Logger
}

// NewHandler creates the HTTP handler set.
func NewHandler(services *service.Services, sessions *session.Manager, sessionTTL time.Duration, log *logger.Logger) *Handler {
	return &Handler{
		services:   services,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		log:        log,
	}
}
