// Package collab is the collaboration directory: it grants non-owner users
// access to a playlist's song list and asserts collaborator status on
// behalf of the access guard.
package collab

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"openmusic-service/internal/domain"
)

// DB is the subset of pgxpool.Pool methods the directory uses.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Directory struct {
	db DB
}

func NewDirectory(db DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	id := "collab-" + uuid.NewString()

	var created string
	err := d.db.QueryRow(ctx, `
		INSERT INTO collaborations (id, playlist_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, playlistID, userID).Scan(&created)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrInvariant("collaboration was not created")
	}
	if err != nil {
		return "", err
	}
	return created, nil
}

func (d *Directory) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	var deleted string
	err := d.db.QueryRow(ctx, `
		DELETE FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2
		RETURNING id
	`, playlistID, userID).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrInvariant("collaboration was not deleted")
	}
	return err
}

// VerifyCollaborator succeeds silently when userID is a registered
// collaborator on playlistID. The access guard discards the error detail,
// so a missing row and a lookup fault are not distinguished to callers.
func (d *Directory) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	var id string
	err := d.db.QueryRow(ctx, `
		SELECT id FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2
	`, playlistID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrInvariant("collaboration could not be verified")
	}
	return err
}
