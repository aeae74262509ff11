package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"openmusic-service/internal/domain"
)

type Server struct {
	repo       *Repository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewServer(db DB, secret []byte, accessTTL, refreshTTL time.Duration) *Server {
	return &Server{
		repo:       NewRepository(db),
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Repository exposes the user lookups consumed by other packages.
func (s *Server) Repository() *Repository {
	return s.repo
}

// Routes returns the account route group for the service router.
func (s *Server) Routes(middlewares ...func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		for _, mw := range middlewares {
			r.Use(mw)
		}

		r.Post("/users", s.handleRegister)
		r.Get("/users/{id}", s.handleGetUser)

		r.Post("/authentications", s.handleLogin)
		r.Put("/authentications", s.handleRefresh)
		r.Delete("/authentications", s.handleLogout)
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
		log.Printf("auth: %s: %v", op, err)
		writeError(w, status, "database error")
		return
	}
	writeError(w, status, err.Error())
}
