package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Song-list mutations run in three steps: authorize via the guard, mutate
// the membership, then append an audit entry. A crash between the last two
// leaves the mutation durable but unaudited; there is no transaction
// spanning them.

func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
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

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.SongID = strings.TrimSpace(body.SongID)
	if body.SongID == "" {
		writeError(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := s.guard.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, "add song verify access", err)
		return
	}

	if _, err := s.store.AddSongToPlaylist(ctx, playlistID, body.SongID); err != nil {
		writeDomainError(w, "add song", err)
		return
	}

	if err := s.recorder.RecordActivity(ctx, playlistID, body.SongID, userID, ActionAdd); err != nil {
		writeDomainError(w, "record add activity", err)
		return
	}

	s.publishEvent(ctx, "playlist.song.added", map[string]any{
		"playlistId": playlistID,
		"songId":     body.SongID,
	})

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "song added to playlist",
	})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
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
		writeDomainError(w, "list songs verify access", err)
		return
	}

	out, err := s.store.GetSongsInPlaylist(ctx, playlistID)
	if err != nil {
		writeDomainError(w, "list songs", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"playlist": out,
	})
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}
	playlistID := chi.URLParam(r, "id")
	songID := chi.URLParam(r, "songId")
	if playlistID == "" || songID == "" {
		writeError(w, http.StatusBadRequest, "missing playlist or song id")
		return
	}

	if err := s.guard.VerifyPlaylistAccess(ctx, playlistID, userID); err != nil {
		writeDomainError(w, "delete song verify access", err)
		return
	}

	if err := s.store.DeleteSongFromPlaylist(ctx, playlistID, songID); err != nil {
		writeDomainError(w, "delete song", err)
		return
	}

	if err := s.recorder.RecordActivity(ctx, playlistID, songID, userID, ActionDelete); err != nil {
		writeDomainError(w, "record delete activity", err)
		return
	}

	s.publishEvent(ctx, "playlist.song.removed", map[string]any{
		"playlistId": playlistID,
		"songId":     songID,
	})

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "song removed from playlist",
	})
}
