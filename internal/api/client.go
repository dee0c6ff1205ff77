package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ramanasai/smartstep/internal/store"
)

// Error is a non-success reply; Message is the server's error text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return e.Message
}

// Client talks to the SmartStep backend on behalf of the TUI and the CLI.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Register creates an account and returns its id.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var res Result
	if err := c.do(ctx, http.MethodPost, "/register", RegisterRequest{Name: name, Email: email, Password: password}, &res); err != nil {
		return "", err
	}
	return res.ID, nil
}

// Login returns the id of the matching account.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var res Result
	if err := c.do(ctx, http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, &res); err != nil {
		return "", err
	}
	return res.ID, nil
}

func (c *Client) SaveProfile(ctx context.Context, p store.Profile) error {
	req := ProfileRequest{UserID: p.UserID, Name: p.Name, Age: p.Age, Weight: p.Weight, Height: p.Height}
	var res Result
	return c.do(ctx, http.MethodPost, "/perfil", req, &res)
}

// GetProfile returns nil without error when the user has no saved profile.
func (c *Client) GetProfile(ctx context.Context, userID string) (*store.Profile, error) {
	var res ProfileResult
	path := "/perfil?userId=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res.Perfil, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach server: %w", err)
	}
	defer resp.Body.Close()

	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	raw := new(bytes.Buffer)
	if _, err := raw.ReadFrom(resp.Body); err != nil {
		return err
	}
	_ = json.Unmarshal(raw.Bytes(), &env)

	if resp.StatusCode != http.StatusOK || !env.Success {
		return &Error{Status: resp.StatusCode, Message: env.Error}
	}
	if out != nil {
		if err := json.Unmarshal(raw.Bytes(), out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
