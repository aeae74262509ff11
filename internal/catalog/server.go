// Package catalog is the album/song catalog. It is plain CRUD plus the
// title lookup the activity recorder denormalizes from.
package catalog

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"openmusic-service/internal/domain"
)

type Server struct {
	store *Store
}

func NewServer(db DB) *Server {
	return &Server{store: NewStore(db)}
}

// Store exposes the catalog lookups consumed by the playlist package.
func (s *Server) Store() *Store {
	return s.store
}

// Routes returns the catalog route group for the service router.
func (s *Server) Routes(middlewares ...func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		for _, mw := range middlewares {
			r.Use(mw)
		}

		r.Post("/albums", s.handleAddAlbum)
		r.Get("/albums/{id}", s.handleGetAlbum)
		r.Put("/albums/{id}", s.handleUpdateAlbum)
		r.Delete("/albums/{id}", s.handleDeleteAlbum)

		r.Post("/songs", s.handleAddSong)
		r.Get("/songs", s.handleListSongs)
		r.Get("/songs/{id}", s.handleGetSong)
		r.Put("/songs/{id}", s.handleUpdateSong)
		r.Delete("/songs/{id}", s.handleDeleteSong)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

func writeDomainError(w http.ResponseWriter, op string, err error) {
	status := domain.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("catalog: %s: %v", op, err)
		writeError(w, status, "database error")
		return
	}
	if domain.IsInvariant(err) {
		log.Printf("catalog: %s: invariant violation: %v", op, err)
	}
	writeError(w, status, err.Error())
}
