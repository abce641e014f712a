package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/voltpoint/voltpoint/internal/handler/dto"
	"github.com/voltpoint/voltpoint/internal/service"
	"github.com/voltpoint/voltpoint/internal/session"
)

// AuthHandler handles login, logout, registration and session inspection.
type AuthHandler struct {
	svc      *service.AuthService
	sessions *session.Manager
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, sessions *session.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		sessions: sessions,
		logger:   logger,
	}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	identity, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := h.sessions.Issue(w, r, identity); err != nil {
		h.logger.Error("failed to issue session", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("login",
		"account_id", identity.ID,
		"role", string(identity.Role),
	)

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message:  "Login successful",
		UserType: string(identity.Role),
		User:     dto.ToUserInfo(identity),
	})
}

// Logout handles POST /api/logout.
// Always succeeds, session or not.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		h.logger.Error("failed to clear session", "error", err)
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Nome:      req.Nome,
		Cognome:   req.Cognome,
		Telefono:  req.Telefono,
		Indirizzo: req.Indirizzo,
		Citta:     req.Citta,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("user_registered", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "Registration successful"})
}

// CheckAuth handles GET /api/check-auth.
// Reports the current identity, or an unauthenticated flag. Reading the
// session also slides its expiry via the session middleware.
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	identity := h.sessions.Read(r)
	if identity == nil {
		writeJSON(w, http.StatusOK, dto.CheckAuthResponse{Authenticated: false})
		return
	}

	info := dto.ToUserInfo(identity)
	writeJSON(w, http.StatusOK, dto.CheckAuthResponse{
		Authenticated: true,
		UserType:      string(identity.Role),
		User:          &info,
	})
}
