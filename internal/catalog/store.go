package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"openmusic-service/internal/domain"
)

// DB is the subset of pgxpool.Pool methods the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store owns the albums and songs tables.
type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) AddAlbum(ctx context.Context, name string, year int) (string, error) {
	id := "album-" + uuid.NewString()

	var created string
	err := s.db.QueryRow(ctx, `
		INSERT INTO albums (id, name, year)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, name, year).Scan(&created)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrInvariant("album was not created")
	}
	if err != nil {
		return "", err
	}
	return created, nil
}

func (s *Store) GetAlbumByID(ctx context.Context, id string) (*Album, error) {
	var album Album
	err := s.db.QueryRow(ctx, `
		SELECT id, name, year FROM albums WHERE id = $1
	`, id).Scan(&album.ID, &album.Name, &album.Year)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("album not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, title, year, performer, genre, duration, album_id
		FROM songs WHERE album_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	album.Songs = []Song{}
	for rows.Next() {
		var song Song
		if err := rows.Scan(
			&song.ID, &song.Title, &song.Year,
			&song.Performer, &song.Genre, &song.Duration, &song.AlbumID,
		); err != nil {
			return nil, err
		}
		album.Songs = append(album.Songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &album, nil
}

func (s *Store) UpdateAlbumByID(ctx context.Context, id, name string, year int) error {
	var updated string
	err := s.db.QueryRow(ctx, `
		UPDATE albums SET name = $2, year = $3 WHERE id = $1 RETURNING id
	`, id, name, year).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound("album not found")
	}
	return err
}

func (s *Store) DeleteAlbumByID(ctx context.Context, id string) error {
	var deleted string
	err := s.db.QueryRow(ctx, `
		DELETE FROM albums WHERE id = $1 RETURNING id
	`, id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound("album not found")
	}
	return err
}

func (s *Store) AddSong(ctx context.Context, song Song) (string, error) {
	id := "song-" + uuid.NewString()

	var created string
	err := s.db.QueryRow(ctx, `
		INSERT INTO songs (id, title, year, performer, genre, duration, album_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, id, song.Title, song.Year, song.Performer, song.Genre, song.Duration, song.AlbumID).Scan(&created)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrInvariant("song was not created")
	}
	if err != nil {
		return "", err
	}
	return created, nil
}

// GetSongs lists songs, optionally filtered by case-insensitive substring
// match on title and performer.
func (s *Store) GetSongs(ctx context.Context, title, performer string) ([]SongSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, performer FROM songs
		WHERE title ILIKE '%' || $1 || '%' AND performer ILIKE '%' || $2 || '%'
	`, title, performer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []SongSummary{}
	for rows.Next() {
		var song SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

func (s *Store) GetSongByID(ctx context.Context, id string) (*Song, error) {
	var song Song
	err := s.db.QueryRow(ctx, `
		SELECT id, title, year, performer, genre, duration, album_id
		FROM songs WHERE id = $1
	`, id).Scan(
		&song.ID, &song.Title, &song.Year,
		&song.Performer, &song.Genre, &song.Duration, &song.AlbumID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("song not found")
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (s *Store) UpdateSongByID(ctx context.Context, id string, song Song) error {
	var updated string
	err := s.db.QueryRow(ctx, `
		UPDATE songs
		SET title = $2, year = $3, performer = $4, genre = $5, duration = $6, album_id = $7
		WHERE id = $1
		RETURNING id
	`, id, song.Title, song.Year, song.Performer, song.Genre, song.Duration, song.AlbumID).Scan(&updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound("song not found")
	}
	return err
}

func (s *Store) DeleteSongByID(ctx context.Context, id string) error {
	var deleted string
	err := s.db.QueryRow(ctx, `
		DELETE FROM songs WHERE id = $1 RETURNING id
	`, id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound("song not found")
	}
	return err
}

// SongTitle resolves only the title, for activity denormalization.
func (s *Store) SongTitle(ctx context.Context, songID string) (string, error) {
	var title string
	err := s.db.QueryRow(ctx, `SELECT title FROM songs WHERE id = $1`, songID).Scan(&title)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound("song not found")
	}
	if err != nil {
		return "", err
	}
	return title, nil
}
