package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleCreatePlaylist creates a new playlist owned by the current user.
func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := r.Header.Get("X-User-Id")
	if ownerID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || len(body.Name) > 200 {
		writeError(w, http.StatusBadRequest, "name must be between 1 and 200 characters")
		return
	}

	id, err := s.store.AddPlaylist(ctx, body.Name, ownerID)
	if err != nil {
		writeDomainError(w, "create playlist", err)
		return
	}

	s.publishEvent(ctx, "playlist.created", map[string]any{
		"playlistId": id,
		"ownerId":    ownerID,
	})

	writeJSON(w, http.StatusCreated, map[string]string{
		"playlistId": id,
	})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	playlists, err := s.store.GetPlaylists(ctx, userID)
	if err != nil {
		writeDomainError(w, "list playlists", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"playlists": playlists,
	})
}

// handleDeletePlaylist deletes a playlist. Only the owner can delete;
// collaborator access is not enough.
func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")
	if playlistID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist id")
		return
	}

	if err := s.guard.VerifyPlaylistOwner(ctx, playlistID, userID); err != nil {
		writeDomainError(w, "delete playlist verify owner", err)
		return
	}

	if err := s.store.DeletePlaylistByID(ctx, playlistID); err != nil {
		writeDomainError(w, "delete playlist", err)
		return
	}

	s.publishEvent(ctx, "playlist.deleted", map[string]any{
		"playlistId": playlistID,
	})

	w.WriteHeader(http.StatusNoContent)
}
