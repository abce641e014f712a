package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/voltpoint/voltpoint/internal/cache"
	"github.com/voltpoint/voltpoint/internal/metrics"
	"github.com/voltpoint/voltpoint/internal/model"
	"github.com/voltpoint/voltpoint/internal/repository"
)

// Reservation service errors.
var (
	// ErrInvalidVehicle covers both an unknown vehicle and a vehicle owned
	// by someone else; callers cannot tell the two apart.
	ErrInvalidVehicle = errors.New("invalid vehicle")
	ErrInvalidWindow  = errors.New("end must be after start")
	ErrSlotConflict   = errors.New("station not available in this time slot")
	ErrInvalidStation = errors.New("invalid station")
)

// ReservationService handles reservation creation.
type ReservationService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	metrics metrics.Recorder
}

// NewReservationService creates a new ReservationService.
func NewReservationService(repo *repository.Repository, c *cache.Cache, recorder metrics.Recorder) *ReservationService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ReservationService{
		repo:    repo,
		cache:   c,
		metrics: recorder,
	}
}

// CreateReservationInput defines input for booking a charging slot.
type CreateReservationInput struct {
	VehicleID  string
	StationID  string
	Inizio     time.Time
	Fine       time.Time
	EnergiaKWh *float64
}

// CreateReservation books a charging slot for the given user.
// The vehicle must belong to the user and the station must be free over
// the proposed window under the documented overlap test. Availability
// check and insert share one transaction in the repository; concurrent
// requests for the same window are not serialized beyond that.
func (s *ReservationService) CreateReservation(ctx context.Context, userID string, input CreateReservationInput) (*model.Reservation, error) {
	if input.VehicleID == "" || input.StationID == "" || input.Inizio.IsZero() || input.Fine.IsZero() {
		return nil, ErrMissingFields
	}
	if !input.Fine.After(input.Inizio) {
		return nil, ErrInvalidWindow
	}

	vehicle, err := s.repo.GetVehicleByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, ErrInvalidVehicle
		}
		return nil, fmt.Errorf("failed to look up vehicle: %w", err)
	}
	if !vehicle.OwnedBy(userID) {
		return nil, ErrInvalidVehicle
	}

	if _, err := s.repo.GetStationByID(ctx, input.StationID); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, ErrInvalidStation
		}
		return nil, fmt.Errorf("failed to look up station: %w", err)
	}

	res := &model.Reservation{
		ID:         ulid.Make().String(),
		UserID:     userID,
		VehicleID:  input.VehicleID,
		StationID:  input.StationID,
		Inizio:     input.Inizio,
		Fine:       input.Fine,
		EnergiaKWh: input.EnergiaKWh,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.CreateReservation(ctx, res); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			s.metrics.IncReservationConflict()
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.metrics.IncReservationCreated()

	// Usage counts in the public listing just changed.
	if s.cache != nil {
		_ = s.cache.InvalidateStationList(ctx)
	}

	return res, nil
}
