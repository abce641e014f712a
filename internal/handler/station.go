package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/voltpoint/voltpoint/internal/handler/dto"
	"github.com/voltpoint/voltpoint/internal/service"
)

// StationHandler handles HTTP requests for charging stations.
type StationHandler struct {
	svc    *service.StationService
	logger *slog.Logger
}

// NewStationHandler creates a new StationHandler.
func NewStationHandler(svc *service.StationService, logger *slog.Logger) *StationHandler {
	return &StationHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/colonnine.
// Public: returns every station with usage figures and classification.
func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.svc.ListStations(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, stations)
}

// Create handles POST /api/colonnine. Admin only.
func (h *StationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	station, err := h.svc.CreateStation(r.Context(), service.CreateStationInput{
		Indirizzo:   req.Indirizzo,
		Latitudine:  req.Latitudine,
		Longitudine: req.Longitudine,
		PotenzaKW:   req.PotenzaKW,
		Zona:        req.Zona,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("station_created",
		"station_id", station.ID,
		"zona", station.Zona,
	)

	writeJSON(w, http.StatusCreated, station)
}
