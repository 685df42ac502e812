package server

import (
	"net/http"
	"time"

	"github.com/yjkwon-dev/pinggye/internal/config"
)

// newHTTPServer builds the http.Server with the configured address and
// conservative read/write bounds derived from the request timeout.
func newHTTPServer(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           http.TimeoutHandler(handler, cfg.RequestTimeout, ""),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       time.Minute,
	}
}
