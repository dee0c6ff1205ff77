package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ramanasai/smartstep/internal/store"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileRequest struct {
	UserID string        `json:"userId"`
	Name   string        `json:"name"`
	Age    store.Numeric `json:"age"`
	Weight store.Numeric `json:"weight"`
	Height store.Numeric `json:"height"`
}

// Result is the envelope of register, login and profile save.
type Result struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ProfileResult carries a null perfil when the user never saved one.
type ProfileResult struct {
	Success bool           `json:"success"`
	Perfil  *store.Profile `json:"perfil"`
	Error   string         `json:"error,omitempty"`
}

const (
	msgFieldsRequired = "All fields are required."
	msgUserIDRequired = "User ID is required."
	msgBadJSON        = "Malformed JSON body."
)

// Handler serves the account and profile endpoints over a Store.
type Handler struct {
	store store.Store
	log   *slog.Logger
}

func NewHandler(s store.Store, log *slog.Logger) *Handler {
	return &Handler{store: s, log: log}
}

// Register handles POST /register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	u, err := h.store.CreateUser(r.Context(), store.User{Name: req.Name, Email: req.Email, Password: req.Password})
	if errors.Is(err, store.ErrEmailTaken) {
		fail(w, http.StatusBadRequest, "The email is already registered.")
		return
	}
	if err != nil {
		h.log.Error("register failed", "email", req.Email, "err", err)
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.log.Info("user registered", "id", u.ID)
	writeJSON(w, http.StatusOK, Result{Success: true, ID: u.ID})
}

// Login handles POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	u, err := h.store.Authenticate(r.Context(), req.Email, req.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		fail(w, http.StatusBadRequest, "Incorrect email or password.")
		return
	}
	if err != nil {
		h.log.Error("login failed", "email", req.Email, "err", err)
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, Result{Success: true, ID: u.ID})
}

// SaveProfile handles POST /perfil
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		fail(w, http.StatusBadRequest, msgUserIDRequired)
		return
	}

	p := store.Profile{UserID: req.UserID, Name: req.Name, Age: req.Age, Weight: req.Weight, Height: req.Height}
	if err := h.store.SaveProfile(r.Context(), p); err != nil {
		h.log.Error("save profile failed", "user", req.UserID, "err", err)
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, Result{Success: true})
}

// GetProfile handles GET /perfil?userId=
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, ProfileResult{Error: msgUserIDRequired})
		return
	}

	p, err := h.store.GetProfile(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusOK, ProfileResult{Success: true})
		return
	}
	if err != nil {
		h.log.Error("load profile failed", "user", userID, "err", err)
		writeJSON(w, http.StatusInternalServerError, ProfileResult{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ProfileResult{Success: true, Perfil: &p})
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		fail(w, http.StatusBadRequest, msgBadJSON)
		return false
	}
	return true
}

func fail(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, Result{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
