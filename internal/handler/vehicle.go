package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/voltpoint/voltpoint/internal/auth"
	"github.com/voltpoint/voltpoint/internal/handler/dto"
	"github.com/voltpoint/voltpoint/internal/service"
)

// VehicleHandler handles HTTP requests for the caller's vehicles.
type VehicleHandler struct {
	svc    *service.VehicleService
	logger *slog.Logger
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(svc *service.VehicleService, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/veicoli.
// Returns only the vehicles owned by the authenticated caller.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	vehicles, err := h.svc.ListVehicles(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, vehicles)
}

// Create handles POST /api/veicoli. User role only.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	vehicle, err := h.svc.CreateVehicle(r.Context(), userID, service.CreateVehicleInput{
		Marca:   req.Marca,
		Modello: req.Modello,
		Targa:   req.Targa,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("vehicle_created",
		"vehicle_id", vehicle.ID,
		"user_id", userID,
	)

	writeJSON(w, http.StatusCreated, vehicle)
}
