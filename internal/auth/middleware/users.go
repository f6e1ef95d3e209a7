package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mind-engage/mindengage-advisor/internal/db"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    int64
}

type UserStore interface {
	Create(ctx context.Context, u User) (User, error)
	ByEmail(ctx context.Context, email string) (User, error)
	ByID(ctx context.Context, id string) (User, error)
	// Delete removes a user; used to roll back a half-finished registration.
	Delete(ctx context.Context, id string) error
}

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func normEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }

type SQLUsers struct{ db *sql.DB }

func NewSQLUsers(conn *sql.DB) *SQLUsers { return &SQLUsers{db: conn} }

func (s *SQLUsers) Create(ctx context.Context, u User) (User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = normEmail(u.Email)
	if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().Unix()
	}
	// users.email is UNIQUE; the constraint decides concurrent registrations.
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, role, created_at) VALUES ($1,$2,$3,$4,$5)`,
		u.ID, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	if db.IsUniqueViolation(err) {
		return User{}, ErrEmailTaken
	}
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *SQLUsers) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *SQLUsers) ByEmail(ctx context.Context, email string) (User, error) {
	return s.one(ctx, `SELECT id, email, password_hash, role, created_at FROM users WHERE email=$1`, normEmail(email))
}

func (s *SQLUsers) ByID(ctx context.Context, id string) (User, error) {
	return s.one(ctx, `SELECT id, email, password_hash, role, created_at FROM users WHERE id=$1`, id)
}

func (s *SQLUsers) one(ctx context.Context, q string, arg string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, q, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

type memUsers struct {
	mu   sync.RWMutex
	byID map[string]User
}

// NewMemoryUsers keeps users in process memory.
func NewMemoryUsers() UserStore { return &memUsers{byID: map[string]User{}} }

func (m *memUsers) Create(_ context.Context, u User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.Email = normEmail(u.Email)
	for _, x := range m.byID {
		if x.Email == u.Email {
			return User{}, ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().Unix()
	}
	m.byID[u.ID] = u
	return u, nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

func (m *memUsers) ByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	email = normEmail(email)
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (m *memUsers) ByID(_ context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byID[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}
