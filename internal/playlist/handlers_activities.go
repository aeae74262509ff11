package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
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

	if err := s.guard.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, "list activities verify access", err)
		return
	}

	activities, err := s.recorder.GetPlaylistActivities(ctx, playlistID)
	if err != nil {
		writeDomainError(w, "list activities", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"playlistId": playlistID,
		"activities": activities,
	})
}
