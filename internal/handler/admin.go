package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/voltpoint/voltpoint/internal/handler/dto"
	"github.com/voltpoint/voltpoint/internal/service"
)

// AdminHandler handles administrator-only operations.
type AdminHandler struct {
	authSvc  *service.AuthService
	statsSvc *service.StatsService
	logger   *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authSvc *service.AuthService, statsSvc *service.StatsService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		authSvc:  authSvc,
		statsSvc: statsSvc,
		logger:   logger,
	}
}

// AddUser handles POST /api/admin/utenti.
// Same body and semantics as registration, performed by an admin.
func (h *AdminHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.authSvc.Register(r.Context(), service.RegisterInput{
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

	h.logger.Info("user_added_by_admin", "user_id", user.ID)

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "User added successfully"})
}

// Statistics handles GET /api/admin/statistiche.
func (h *AdminHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsSvc.Collect(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatisticsResponse{
		StatsColonnine: stats.StationStats,
		Previsioni:     stats.MonthlyDemand,
	})
}
