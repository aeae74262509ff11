// Package auth owns user accounts and refresh-token sessions. It resolves
// the verified identity every other package trusts, and answers username
// lookups for activity denormalization.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"openmusic-service/internal/domain"
)

// DB is the subset of pgxpool.Pool methods the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Fullname  string    `json:"fullname"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// CreateUser registers a new account. Usernames are unique; a taken
// username is a client error, not a storage fault.
func (r *Repository) CreateUser(ctx context.Context, username, passwordHash, fullname string) (string, error) {
	var taken string
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&taken)
	if err == nil {
		return "", domain.ErrInvariant("username is already taken")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	id := "user-" + uuid.NewString()

	var created string
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (id, username, password, fullname)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, id, username, passwordHash, fullname).Scan(&created)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrInvariant("user was not created")
	}
	if err != nil {
		return "", err
	}
	return created, nil
}

// FindCredentials returns the user id and password hash for a username.
func (r *Repository) FindCredentials(ctx context.Context, username string) (id, passwordHash string, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT id, password FROM users WHERE username = $1
	`, username).Scan(&id, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", domain.ErrNotFound("user not found")
	}
	return id, passwordHash, err
}

// Username resolves a user's display name by id.
func (r *Repository) Username(ctx context.Context, userID string) (string, error) {
	var username string
	err := r.db.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, userID).Scan(&username)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound("user not found")
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID string) (User, error) {
	var u User
	err := r.db.QueryRow(ctx, `
		SELECT id, username, fullname, created_at FROM users WHERE id = $1
	`, userID).Scan(&u.ID, &u.Username, &u.Fullname, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, domain.ErrNotFound("user not found")
	}
	return u, err
}

// AddRefreshToken stores a refresh token so it can be revoked.
func (r *Repository) AddRefreshToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO authentications (token) VALUES ($1)`, token)
	return err
}

// VerifyRefreshToken fails when the token was never issued or was revoked.
func (r *Repository) VerifyRefreshToken(ctx context.Context, token string) error {
	var stored string
	err := r.db.QueryRow(ctx, `SELECT token FROM authentications WHERE token = $1`, token).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrInvariant("refresh token is not valid")
	}
	return err
}

func (r *Repository) DeleteRefreshToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM authentications WHERE token = $1`, token)
	return err
}
