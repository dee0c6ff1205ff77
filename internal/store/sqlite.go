package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// SQLite keeps users and profiles in a local database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and migrates) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func migrate(db *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) CreateUser(ctx context.Context, u User) (User, error) {
	u.Email = normalizeEmail(u.Email)

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(1) FROM users WHERE email = ?`, u.Email).Scan(&n); err != nil {
		return User{}, fmt.Errorf("lookup email: %w", err)
	}
	if n > 0 {
		return User{}, ErrEmailTaken
	}

	u.ID = newUserID()
	u.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users(id, name, email, password, created_at) VALUES(?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.Password, u.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		// lost a race with another registration for the same email
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *SQLite) Authenticate(ctx context.Context, email, password string) (User, error) {
	var u User
	var created string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, created_at
		FROM users WHERE email = ? AND password = ?
	`, normalizeEmail(email), password).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	u.CreatedAt = parseTS(created)
	return u, nil
}

func (s *SQLite) SaveProfile(ctx context.Context, p Profile) error {
	p.UpdatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO perfil(user_id, name, age, weight, height, updated_at)
		VALUES(?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			weight = excluded.weight,
			height = excluded.height,
			updated_at = excluded.updated_at
	`, p.UserID, p.Name, string(p.Age), string(p.Weight), string(p.Height), p.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (s *SQLite) GetProfile(ctx context.Context, userID string) (Profile, error) {
	var p Profile
	var age, weight, height, updated string
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, name, age, weight, height, updated_at
		FROM perfil WHERE user_id = ?
	`, userID).Scan(&p.UserID, &p.Name, &age, &weight, &height, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	p.Age, p.Weight, p.Height = Numeric(age), Numeric(weight), Numeric(height)
	p.UpdatedAt = parseTS(updated)
	return p, nil
}

func parseTS(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// fallback for RFC3339 without nanos
		t, _ = time.Parse(time.RFC3339, s)
	}
	return t
}
