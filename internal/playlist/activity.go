package playlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"openmusic-service/internal/domain"
)

// SongCatalog resolves a song's title at the moment of recording.
type SongCatalog interface {
	SongTitle(ctx context.Context, songID string) (string, error)
}

// UserDirectory resolves a user's display name at the moment of recording.
type UserDirectory interface {
	Username(ctx context.Context, userID string) (string, error)
}

// Recorder appends immutable audit entries for song add/delete actions.
// It does not re-authorize: callers gate mutations through the Guard first.
type Recorder struct {
	db    DB
	songs SongCatalog
	users UserDirectory
}

func NewRecorder(db DB, songs SongCatalog, users UserDirectory) *Recorder {
	return &Recorder{db: db, songs: songs, users: users}
}

// RecordActivity denormalizes the song title and acting user's username
// into a new entry. A lookup failure here is a logic error by the caller,
// since the mutation already validated both ids.
func (r *Recorder) RecordActivity(ctx context.Context, playlistID, songID, userID, action string) error {
	title, err := r.songs.SongTitle(ctx, songID)
	if err != nil {
		return fmt.Errorf("resolve song title: %w", err)
	}

	username, err := r.users.Username(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolve username: %w", err)
	}

	id := newID("activity")
	now := time.Now().UTC()

	var created string
	err = r.db.QueryRow(ctx, `
		INSERT INTO playlist_activities (id, playlist_id, username, title, action, time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, id, playlistID, username, title, action, now).Scan(&created)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrInvariant("activity was not recorded")
	}
	return err
}

// GetPlaylistActivities returns the playlist's audit entries in insertion
// order. Playlist existence is checked separately so a playlist without
// history is not mistaken for a missing one.
func (r *Recorder) GetPlaylistActivities(ctx context.Context, playlistID string) ([]Activity, error) {
	var id string
	err := r.db.QueryRow(ctx, `SELECT id FROM playlists WHERE id = $1`, playlistID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT username, title, action, time
		FROM playlist_activities
		WHERE playlist_id = $1
		ORDER BY time ASC
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.Username, &a.Title, &a.Action, &a.Time); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
