package catalog

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS albums (
          id   TEXT PRIMARY KEY,
          name TEXT NOT NULL,
          year INT NOT NULL
      )
    `)
	if err != nil {
		log.Printf("catalog: migrate albums: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS songs (
          id        TEXT PRIMARY KEY,
          title     TEXT NOT NULL,
          year      INT NOT NULL,
          performer TEXT NOT NULL,
          genre     TEXT NOT NULL,
          duration  INT,
          album_id  TEXT REFERENCES albums(id) ON DELETE SET NULL
      )
    `); err != nil {
		log.Printf("catalog: migrate songs: %v", err)
		return err
	}

	return nil
}
