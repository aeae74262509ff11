package playlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"openmusic-service/internal/domain"
)

// Store owns the playlists, playlist_songs and playlist_activities tables.
type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func (s *Store) AddPlaylist(ctx context.Context, name, owner string) (string, error) {
	id := newID("playlist")

	var created string
	err := s.db.QueryRow(ctx, `
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, name, owner).Scan(&created)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrInvariant("playlist was not created")
	}
	if err != nil {
		return "", err
	}
	return created, nil
}

// GetPlaylists lists playlists the user owns or collaborates on, with the
// owner's username joined in.
func (s *Store) GetPlaylists(ctx context.Context, userID string) ([]Playlist, error) {
	rows, err := s.db.Query(ctx, `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id
		LEFT JOIN users ON users.id = playlists.owner
		WHERE playlists.owner = $1 OR collaborations.user_id = $1
		GROUP BY playlists.id, users.username
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		var pl Playlist
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, pl)
	}
	return playlists, rows.Err()
}

func (s *Store) DeletePlaylistByID(ctx context.Context, id string) error {
	var deleted string
	err := s.db.QueryRow(ctx, `
		DELETE FROM playlists WHERE id = $1 RETURNING id
	`, id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound("playlist not found")
	}
	return err
}

// AddSongToPlaylist inserts a membership row. The same song may be added
// more than once; each insert gets its own row id.
func (s *Store) AddSongToPlaylist(ctx context.Context, playlistID, songID string) (string, error) {
	var exists string
	err := s.db.QueryRow(ctx, `SELECT id FROM songs WHERE id = $1`, songID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound("song not found")
	}
	if err != nil {
		return "", err
	}

	id := newID("playlist_songs")

	var created string
	err = s.db.QueryRow(ctx, `
		INSERT INTO playlist_songs (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, playlistID, songID).Scan(&created)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrInvariant("song was not added to playlist")
	}
	if err != nil {
		return "", err
	}
	return created, nil
}

func (s *Store) GetSongsInPlaylist(ctx context.Context, playlistID string) (*PlaylistWithSongs, error) {
	var out PlaylistWithSongs
	err := s.db.QueryRow(ctx, `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		INNER JOIN users ON playlists.owner = users.id
		WHERE playlists.id = $1
	`, playlistID).Scan(&out.ID, &out.Name, &out.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT songs.id, songs.title, songs.performer
		FROM playlist_songs
		INNER JOIN songs ON playlist_songs.song_id = songs.id
		WHERE playlist_songs.playlist_id = $1
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out.Songs = []Song{}
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, err
		}
		out.Songs = append(out.Songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSongFromPlaylist removes the membership row matching both ids.
// Deleting a song that is not in the playlist is a storage anomaly, not a
// not-found condition: the caller already verified access to the playlist.
func (s *Store) DeleteSongFromPlaylist(ctx context.Context, playlistID, songID string) error {
	var deleted string
	err := s.db.QueryRow(ctx, `
		DELETE FROM playlist_songs
		WHERE playlist_id = $1 AND song_id = $2
		RETURNING id
	`, playlistID, songID).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrInvariant("song was not removed from playlist")
	}
	return err
}

// VerifyPlaylistOwner distinguishes a missing playlist from a playlist the
// user has no rights on.
func (s *Store) VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error {
	var owner string
	err := s.db.QueryRow(ctx, `SELECT owner FROM playlists WHERE id = $1`, playlistID).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound("playlist not found")
	}
	if err != nil {
		return err
	}
	if owner != userID {
		return domain.ErrAuthorization("you are not allowed to access this resource")
	}
	return nil
}
