package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ametov/pointhub/internal/auth"
	"github.com/ametov/pointhub/internal/service"
)

// AuthHandler exposes registration and login over HTTP.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates the auth endpoints handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Register(r.Context(), req.Login, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, tokenResponse{Token: token})
	case errors.Is(err, service.ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrUserExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeInternalError(w, err)
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Login, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, tokenResponse{Token: token})
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeInternalError(w, err)
	}
}
