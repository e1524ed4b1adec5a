package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/gadget-armoury/internal/auth"
)

// credentialsRequest is the request body for POST /auth/register and
// POST /auth/login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the response body for POST /auth/login.
type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}

// handleRegister creates a new agent account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if !auth.IsValidUsername(req.Username) {
		writeBadRequest(w, "username must be 1-64 characters: letters, digits, dots, hyphens, underscores")
		return
	}
	if !auth.IsValidPassword(req.Password) {
		writeBadRequest(w, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		writeInternalError(w, "failed to register user")
		return
	}

	user := &auth.User{
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := s.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, auth.ErrUsernameExists) {
			writeBadRequest(w, "username already exists")
			return
		}
		s.logger.Error("user creation failed", "error", err)
		writeInternalError(w, "failed to register user")
		return
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusCreated, user)
}

// handleLogin authenticates a user and returns a JWT access token.
// Unknown usernames and wrong passwords both produce the same 401 so the
// two cases cannot be told apart from outside.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	user, err := auth.Authenticate(r.Context(), s.users, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeUnauthorized(w, "invalid credentials")
			return
		}
		s.logger.Error("authentication failed", "error", err)
		writeInternalError(w, "failed to log in")
		return
	}

	ttl := s.secCfg.JWT.AccessTokenTTL
	token, err := auth.GenerateAccessToken(user, s.secCfg.JWT.Secret, ttl)
	if err != nil {
		s.logger.Error("token generation failed", "user_id", user.ID, "error", err)
		writeInternalError(w, "failed to generate token")
		return
	}

	s.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresIn: ttl * 60,
	})
}
