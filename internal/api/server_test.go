package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/smartstep/internal/logger"
)

func TestServerShutsDownAndClosesStore(t *testing.T) {
	s := newMemStore()
	srv := NewServer("127.0.0.1:0", s, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	assert.True(t, s.closed)
}

func TestServerHandlerServesRoutes(t *testing.T) {
	srv := NewServer(":0", newMemStore(), logger.Discard())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
