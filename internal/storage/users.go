package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"PATHFINDER_BACK-END/internal/models"
)

var (
	// ErrUserNotFound is returned when no account matches
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when the email or username is taken
	ErrUserExists = errors.New("email or username already registered")
)

// UserStore persists accounts
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpsertGoogleUser finds the account by email or creates one without a password
	UpsertGoogleUser(ctx context.Context, email, name, picture string) (*models.User, error)
}

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL DEFAULT '',
    username      TEXT NOT NULL UNIQUE,
    display_name  TEXT,
    avatar_url    TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresUserStore keeps accounts in the users table
type PostgresUserStore struct {
	db *pgxpool.Pool
}

func NewPostgresUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// EnsureSchema creates the users table when it is missing
func (s *PostgresUserStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, usersSchema); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, u *models.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now

	_, err := s.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, username, display_name, avatar_url, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Email, u.PasswordHash, u.Username, u.DisplayName, u.AvatarURL, u.CreatedAt, u.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

const userColumns = `id, email, password_hash, username, display_name, avatar_url, created_at, updated_at`

func (s *PostgresUserStore) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Username, &u.DisplayName, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (s *PostgresUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `email = $1`, strings.ToLower(email))
}

func (s *PostgresUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getUser(ctx, `id = $1`, id)
}

func (s *PostgresUserStore) UpsertGoogleUser(ctx context.Context, email, name, picture string) (*models.User, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		if picture != "" {
			_, err = s.db.Exec(ctx, `UPDATE users SET avatar_url = $1, updated_at = NOW() WHERE id = $2`, picture, u.ID)
			if err != nil {
				return nil, fmt.Errorf("update avatar: %w", err)
			}
			u.AvatarURL = &picture
		}
		return u, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	u = googleUser(email, name, picture)
	if err := s.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func googleUser(email, name, picture string) *models.User {
	u := &models.User{
		Email:    strings.ToLower(email),
		Username: strings.Split(email, "@")[0] + "-" + uuid.NewString()[:8],
	}
	if name != "" {
		u.DisplayName = &name
	}
	if picture != "" {
		u.AvatarURL = &picture
	}
	return u
}

// MemoryUserStore keeps accounts in process memory
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *MemoryUserStore) CreateUser(_ context.Context, u *models.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) || existing.Username == u.Username {
			return ErrUserExists
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (s *MemoryUserStore) UpsertGoogleUser(ctx context.Context, email, name, picture string) (*models.User, error) {
	if u, err := s.GetUserByEmail(ctx, email); err == nil {
		return u, nil
	}
	u := googleUser(email, name, picture)
	if err := s.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
