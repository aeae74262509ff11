package collab

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"openmusic-service/internal/domain"
)

// OwnerGuard gates collaboration management: only a playlist's owner may
// add or remove collaborators.
type OwnerGuard interface {
	VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error
}

// Users checks that the user being granted access exists.
type Users interface {
	Username(ctx context.Context, userID string) (string, error)
}

type Server struct {
	directory *Directory
	guard     OwnerGuard
	users     Users
}

func NewServer(directory *Directory, guard OwnerGuard, users Users) *Server {
	return &Server{directory: directory, guard: guard, users: users}
}

// Routes returns the collaboration route group for the service router.
func (s *Server) Routes(middlewares ...func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		for _, mw := range middlewares {
			r.Use(mw)
		}

		r.Post("/collaborations", s.handleAddCollaboration)
		r.Delete("/collaborations", s.handleDeleteCollaboration)
	}
}

type collaborationBody struct {
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

func decodeCollaborationBody(r *http.Request) (collaborationBody, bool) {
	var body collaborationBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, false
	}
	body.PlaylistID = strings.TrimSpace(body.PlaylistID)
	body.UserID = strings.TrimSpace(body.UserID)
	return body, body.PlaylistID != "" && body.UserID != ""
}

func (s *Server) handleAddCollaboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	body, ok := decodeCollaborationBody(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "playlistId and userId are required")
		return
	}

	if err := s.guard.VerifyPlaylistOwner(ctx, body.PlaylistID, userID); err != nil {
		writeDomainError(w, "add collaboration verify owner", err)
		return
	}

	if _, err := s.users.Username(ctx, body.UserID); err != nil {
		writeDomainError(w, "add collaboration check user", err)
		return
	}

	id, err := s.directory.AddCollaboration(ctx, body.PlaylistID, body.UserID)
	if err != nil {
		writeDomainError(w, "add collaboration", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"collaborationId": id,
	})
}

func (s *Server) handleDeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	body, ok := decodeCollaborationBody(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "playlistId and userId are required")
		return
	}

	if err := s.guard.VerifyPlaylistOwner(ctx, body.PlaylistID, userID); err != nil {
		writeDomainError(w, "delete collaboration verify owner", err)
		return
	}

	if err := s.directory.DeleteCollaboration(ctx, body.PlaylistID, body.UserID); err != nil {
		writeDomainError(w, "delete collaboration", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "collaboration deleted",
	})
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
		log.Printf("collab: %s: %v", op, err)
		writeError(w, status, "database error")
		return
	}
	if domain.IsInvariant(err) {
		log.Printf("collab: %s: invariant violation: %v", op, err)
	}
	writeError(w, status, err.Error())
}
