package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/voltpoint/voltpoint/internal/model"
	"github.com/voltpoint/voltpoint/internal/repository"
)

// ErrPlateTaken indicates the license plate is already registered.
var ErrPlateTaken = errors.New("license plate already registered")

// VehicleService handles vehicle registration and listing.
type VehicleService struct {
	repo *repository.Repository
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(repo *repository.Repository) *VehicleService {
	return &VehicleService{repo: repo}
}

// CreateVehicleInput defines input for registering a vehicle.
type CreateVehicleInput struct {
	Marca   string
	Modello string
	Targa   string
}

// CreateVehicle registers a vehicle owned by the given user.
func (s *VehicleService) CreateVehicle(ctx context.Context, userID string, input CreateVehicleInput) (*model.Vehicle, error) {
	if input.Marca == "" || input.Modello == "" || input.Targa == "" {
		return nil, ErrMissingFields
	}

	vehicle := &model.Vehicle{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Marca:     input.Marca,
		Modello:   input.Modello,
		Targa:     input.Targa,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateVehicle(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrPlateExists) {
			return nil, ErrPlateTaken
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	return vehicle, nil
}

// ListVehicles returns every vehicle owned by the given user.
func (s *VehicleService) ListVehicles(ctx context.Context, userID string) ([]*model.Vehicle, error) {
	vehicles, err := s.repo.ListVehiclesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}
