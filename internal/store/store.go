// Package store persists users and profiles. Two backends share one contract:
// an embedded SQLite database and Google Cloud Firestore.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// User is an account document. The password is kept as entered.
type User struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Password  string    `json:"-" firestore:"password"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// Profile is the per-user document edited on the profile screen.
type Profile struct {
	UserID    string    `json:"userId" firestore:"userId"`
	Name      string    `json:"name" firestore:"name"`
	Age       Numeric   `json:"age" firestore:"age"`
	Weight    Numeric   `json:"weight" firestore:"weight"`
	Height    Numeric   `json:"height" firestore:"height"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Numeric is a measurement kept as the text the user typed ("72.5").
// JSON numbers decode into it as well.
type Numeric string

func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*n = ""
		return nil
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*n = Numeric(v)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("numeric field: %w", err)
	}
	*n = Numeric(num.String())
	return nil
}

// Store is the document-store contract used by the HTTP handlers.
type Store interface {
	// CreateUser inserts a new account and returns it with its generated id.
	// ErrEmailTaken when the email is already registered.
	CreateUser(ctx context.Context, u User) (User, error)
	// Authenticate matches email and password exactly. ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, email, password string) (User, error)
	// SaveProfile upserts the profile keyed by UserID.
	SaveProfile(ctx context.Context, p Profile) error
	// GetProfile returns ErrNotFound when the user never saved one.
	GetProfile(ctx context.Context, userID string) (Profile, error)
	Close() error
}

func newUserID() string { return uuid.NewString() }

func normalizeEmail(s string) string { return strings.TrimSpace(s) }
