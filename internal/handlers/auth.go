package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlenaMolokova/nationalcode/internal/usecase"
	"github.com/AlenaMolokova/nationalcode/internal/utils"
	"go.uber.org/zap"
)

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterHandler struct {
	auth   Authenticator
	logger *zap.Logger
}

func NewRegisterHandler(auth Authenticator, logger *zap.Logger) *RegisterHandler {
	return &RegisterHandler{auth: auth, logger: logger}
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := h.auth.Register(r.Context(), req.Login, req.Password)
	switch {
	case errors.Is(err, usecase.ErrEmptyCredentials):
		utils.WriteJSONError(w, http.StatusBadRequest, "Login and password are required")
		return
	case errors.Is(err, usecase.ErrWeakPassword):
		utils.WriteJSONError(w, http.StatusBadRequest, "Password must be at least 8 characters long and contain letters")
		return
	case errors.Is(err, usecase.ErrLoginTaken):
		utils.WriteJSONError(w, http.StatusConflict, "Login already exists")
		return
	case err != nil:
		h.logger.Error("failed to register user", zap.String("login", req.Login), zap.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("user registered", zap.String("login", req.Login))
	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

type LoginHandler struct {
	auth   Authenticator
	logger *zap.Logger
}

func NewLoginHandler(auth Authenticator, logger *zap.Logger) *LoginHandler {
	return &LoginHandler{auth: auth, logger: logger}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Login, req.Password)
	switch {
	case errors.Is(err, usecase.ErrEmptyCredentials):
		utils.WriteJSONError(w, http.StatusBadRequest, "Login and password are required")
		return
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid login or password")
		return
	case err != nil:
		h.logger.Error("failed to log in", zap.String("login", req.Login), zap.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}
