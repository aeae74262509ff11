package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	store    *Store
	guard    *Guard
	recorder *Recorder
	rdb      *redis.Client
}

func NewServer(db DB, rdb *redis.Client, directory Directory, songs SongCatalog, users UserDirectory) *Server {
	store := NewStore(db)
	return &Server{
		store:    store,
		guard:    NewGuard(store, directory),
		recorder: NewRecorder(db, songs, users),
		rdb:      rdb,
	}
}

// Guard exposes the access checks for other packages that gate on
// playlist ownership.
func (s *Server) Guard() *Guard {
	return s.guard
}

// Routes returns the playlist route group for the service router.
func (s *Server) Routes(middlewares ...func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		for _, mw := range middlewares {
			r.Use(mw)
		}

		r.Post("/playlists", s.handleCreatePlaylist)
		r.Get("/playlists", s.handleListPlaylists)
		r.Delete("/playlists/{id}", s.handleDeletePlaylist)

		r.Post("/playlists/{id}/songs", s.handleAddSong)
		r.Get("/playlists/{id}/songs", s.handleListSongs)
		r.Delete("/playlists/{id}/songs/{songId}", s.handleDeleteSong)

		r.Get("/playlists/{id}/activities", s.handleListActivities)
	}
}
