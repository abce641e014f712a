package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/voltpoint/voltpoint/internal/model"
)

// Common errors for vehicle repository operations.
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrPlateExists     = errors.New("license plate already exists")
)

// CreateVehicle inserts a new vehicle into the database.
// Returns ErrPlateExists when the license plate is already registered.
func (r *Repository) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	query := `
		INSERT INTO veicoli (id, id_utente, marca, modello, targa, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		vehicle.ID,
		vehicle.UserID,
		vehicle.Marca,
		vehicle.Modello,
		vehicle.Targa,
		vehicle.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrPlateExists
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

// GetVehicleByID retrieves a vehicle by its ID.
func (r *Repository) GetVehicleByID(ctx context.Context, id string) (*model.Vehicle, error) {
	query := `
		SELECT id, id_utente, marca, modello, targa, created_at
		FROM veicoli
		WHERE id = $1
	`

	var vehicle model.Vehicle
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.UserID,
		&vehicle.Marca,
		&vehicle.Modello,
		&vehicle.Targa,
		&vehicle.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle by ID: %w", err)
	}

	return &vehicle, nil
}

// ListVehiclesByUser retrieves all vehicles owned by a user.
func (r *Repository) ListVehiclesByUser(ctx context.Context, userID string) ([]*model.Vehicle, error) {
	query := `
		SELECT id, id_utente, marca, modello, targa, created_at
		FROM veicoli
		WHERE id_utente = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*model.Vehicle
	for rows.Next() {
		var vehicle model.Vehicle
		if err := rows.Scan(
			&vehicle.ID,
			&vehicle.UserID,
			&vehicle.Marca,
			&vehicle.Modello,
			&vehicle.Targa,
			&vehicle.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicles: %w", err)
	}

	return vehicles, nil
}
