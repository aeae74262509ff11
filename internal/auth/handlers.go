package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"openmusic-service/internal/domain"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Fullname string `json:"fullname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Username = strings.TrimSpace(body.Username)
	body.Fullname = strings.TrimSpace(body.Fullname)

	if body.Username == "" || len(body.Username) > 50 {
		writeError(w, http.StatusBadRequest, "username must be between 1 and 50 characters")
		return
	}
	if len(body.Password) < 6 {
		writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}
	if body.Fullname == "" {
		writeError(w, http.StatusBadRequest, "fullname is required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	id, err := s.repo.CreateUser(ctx, body.Username, string(hash), body.Fullname)
	if err != nil {
		writeDomainError(w, "register", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"userId": id,
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.repo.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "get user", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": user,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, hash, err := s.repo.FindCredentials(ctx, body.Username)
	if err != nil {
		if domain.IsNotFound(err) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeDomainError(w, "login find user", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(body.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	tokens, err := s.issueTokens(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue tokens")
		return
	}

	if err := s.repo.AddRefreshToken(ctx, tokens.RefreshToken); err != nil {
		writeDomainError(w, "login store refresh token", err)
		return
	}

	writeJSON(w, http.StatusCreated, tokens)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.repo.VerifyRefreshToken(ctx, body.RefreshToken); err != nil {
		writeDomainError(w, "refresh verify token", err)
		return
	}

	claims, err := ParseToken(body.RefreshToken, "refresh", s.secret)
	if err != nil {
		writeError(w, http.StatusBadRequest, "refresh token is not valid")
		return
	}

	access, err := s.signToken(claims.UserID, "access", s.accessTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"accessToken": access,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.repo.VerifyRefreshToken(ctx, body.RefreshToken); err != nil {
		writeDomainError(w, "logout verify token", err)
		return
	}

	if err := s.repo.DeleteRefreshToken(ctx, body.RefreshToken); err != nil {
		writeDomainError(w, "logout delete token", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "refresh token deleted",
	})
}
