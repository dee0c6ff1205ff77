package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// NewRouter wires the endpoints consumed by the client screens.
func NewRouter(h *Handler, log *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLog(log), cors)

	r.HandleFunc("/health", HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/perfil", h.SaveProfile).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/perfil", h.GetProfile).Methods(http.MethodGet)
	return r
}

// cors allows any origin, like the mobile app's development setup expects.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLog(log *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}
