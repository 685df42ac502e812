// Package server runs the HTTP server with graceful shutdown on context
// cancellation.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/yjkwon-dev/pinggye/internal/config"
	"github.com/yjkwon-dev/pinggye/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
	log        *logger.Logger
}

// New creates a Server serving handler at the configured address.
func New(cfg config.Server, handler http.Handler, log *logger.Logger) *Server {
	return &Server{
		httpServer: newHTTPServer(cfg, handler),
		log:        log,
	}
}

// Run serves until ctx is canceled, then shuts down gracefully, giving
// in-flight requests up to shutdownTimeout to finish.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info().Str("address", s.httpServer.Addr).Msg("http server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("error running http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	return nil
}
