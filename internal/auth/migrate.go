package auth

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS users (
          id         TEXT PRIMARY KEY,
          username   TEXT UNIQUE NOT NULL,
          password   TEXT NOT NULL,
          fullname   TEXT NOT NULL,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `)
	if err != nil {
		log.Printf("auth: migrate users: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS authentications (
          token TEXT NOT NULL
      )
    `); err != nil {
		log.Printf("auth: migrate authentications: %v", err)
		return err
	}

	return nil
}
