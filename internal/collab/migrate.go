package collab

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AutoMigrate creates the collaborations table. Playlists and users must
// be migrated first.
func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS collaborations (
          id          TEXT PRIMARY KEY,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
          UNIQUE (playlist_id, user_id)
      )
    `)
	if err != nil {
		log.Printf("collab: migrate collaborations: %v", err)
	}
	return err
}
