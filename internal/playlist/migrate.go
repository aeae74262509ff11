package playlist

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AutoMigrate creates the playlist tables. The users and songs tables it
// references are owned by the auth and catalog packages and must be
// migrated first.
func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id    TEXT PRIMARY KEY,
          name  TEXT NOT NULL,
          owner TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE
      )
    `)
	if err != nil {
		log.Printf("playlist: migrate playlists: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlist_songs (
          id          TEXT PRIMARY KEY,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          song_id     TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE
      )
    `); err != nil {
		log.Printf("playlist: migrate playlist_songs: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlist_activities (
          id          TEXT PRIMARY KEY,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          username    TEXT NOT NULL,
          title       TEXT NOT NULL,
          action      TEXT NOT NULL,
          time        TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("playlist: migrate playlist_activities: %v", err)
		return err
	}

	return nil
}
