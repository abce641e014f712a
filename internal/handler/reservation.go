package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/voltpoint/voltpoint/internal/auth"
	"github.com/voltpoint/voltpoint/internal/handler/dto"
	"github.com/voltpoint/voltpoint/internal/service"
)

// ReservationHandler handles HTTP requests for charging reservations.
type ReservationHandler struct {
	svc    *service.ReservationService
	logger *slog.Logger
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(svc *service.ReservationService, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/prenotazioni. User role only.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.DataOraInizio == "" || req.DataOraFine == "" {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", "All required fields must be provided")
		return
	}

	inizio, err := dto.ParseTimestamp(req.DataOraInizio)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TIMESTAMP", "Unrecognized start timestamp format")
		return
	}
	fine, err := dto.ParseTimestamp(req.DataOraFine)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_TIMESTAMP", "Unrecognized end timestamp format")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	res, err := h.svc.CreateReservation(r.Context(), userID, service.CreateReservationInput{
		VehicleID:  req.IDVeicolo,
		StationID:  req.IDColonnina,
		Inizio:     inizio,
		Fine:       fine,
		EnergiaKWh: req.EnergiaKWh,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("reservation_created",
		"reservation_id", res.ID,
		"station_id", res.StationID,
		"user_id", userID,
	)

	writeJSON(w, http.StatusCreated, res)
}
