package catalog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type albumBody struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func decodeAlbumBody(r *http.Request) (albumBody, string) {
	var body albumBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, "invalid JSON body"
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return body, "name is required"
	}
	if body.Year <= 0 {
		return body, "year must be a positive number"
	}
	return body, ""
}

func (s *Server) handleAddAlbum(w http.ResponseWriter, r *http.Request) {
	body, msg := decodeAlbumBody(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := s.store.AddAlbum(r.Context(), body.Name, body.Year)
	if err != nil {
		writeDomainError(w, "add album", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"albumId": id,
	})
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := s.store.GetAlbumByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "get album", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"album": album,
	})
}

func (s *Server) handleUpdateAlbum(w http.ResponseWriter, r *http.Request) {
	body, msg := decodeAlbumBody(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := s.store.UpdateAlbumByID(r.Context(), chi.URLParam(r, "id"), body.Name, body.Year); err != nil {
		writeDomainError(w, "update album", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "album updated",
	})
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAlbumByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "delete album", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "album deleted",
	})
}
