package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ramanasai/smartstep/internal/store"
)

// Server is the backend process: one store connection opened at start and an
// HTTP listener in front of it.
type Server struct {
	store store.Store
	http  *http.Server
	log   *slog.Logger
}

func NewServer(addr string, s store.Store, log *slog.Logger) *Server {
	h := NewHandler(s, log)
	return &Server{
		store: s,
		log:   log,
		http: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(h, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the routed handler, used by tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run serves until ctx is cancelled, then shuts down and closes the store.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server running", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		_ = s.store.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.http.Shutdown(shutdownCtx)
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}
	s.log.Info("server stopped")
	return err
}
