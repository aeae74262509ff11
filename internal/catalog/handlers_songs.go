package catalog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func decodeSongBody(r *http.Request) (Song, string) {
	var body Song
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, "invalid JSON body"
	}
	body.Title = strings.TrimSpace(body.Title)
	body.Performer = strings.TrimSpace(body.Performer)
	if body.Title == "" {
		return body, "title is required"
	}
	if body.Performer == "" {
		return body, "performer is required"
	}
	if body.Year <= 0 {
		return body, "year must be a positive number"
	}
	return body, ""
}

func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	body, msg := decodeSongBody(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := s.store.AddSong(r.Context(), body)
	if err != nil {
		writeDomainError(w, "add song", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"songId": id,
	})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	performer := r.URL.Query().Get("performer")

	songs, err := s.store.GetSongs(r.Context(), title, performer)
	if err != nil {
		writeDomainError(w, "list songs", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"songs": songs,
	})
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	song, err := s.store.GetSongByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "get song", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"song": song,
	})
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	body, msg := decodeSongBody(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := s.store.UpdateSongByID(r.Context(), chi.URLParam(r, "id"), body); err != nil {
		writeDomainError(w, "update song", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "song updated",
	})
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSongByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "delete song", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "song deleted",
	})
}
