package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voltpoint/voltpoint/internal/model"
)

// ErrSlotConflict indicates an existing reservation blocks the proposed window.
var ErrSlotConflict = errors.New("station not available in this time slot")

// overlapQuery detects an existing reservation whose start or end falls
// inside the proposed window, bounds included. A reservation that fully
// contains the window without either endpoint inside it is not detected;
// this matches model.Reservation.ConflictsWith.
const overlapQuery = `
	SELECT EXISTS(
		SELECT 1 FROM ricariche
		WHERE id_colonnina = $1
		  AND (data_ora_inizio BETWEEN $2 AND $3
		       OR data_ora_fine BETWEEN $2 AND $3)
	)
`

// HasOverlap reports whether any existing reservation at the station
// conflicts with the proposed window.
func (r *Repository) HasOverlap(ctx context.Context, stationID string, start, end time.Time) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, overlapQuery, stationID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check availability: %w", err)
	}
	return exists, nil
}

// CreateReservation runs the availability check and the insert inside a
// single transaction. Default isolation, no row locks: two concurrent
// requests for the same window can both pass the check and both commit.
// Returns ErrSlotConflict when the check fails.
func (r *Repository) CreateReservation(ctx context.Context, res *model.Reservation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var exists bool
	if err := tx.QueryRow(ctx, overlapQuery, res.StationID, res.Inizio, res.Fine).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check availability: %w", err)
	}
	if exists {
		return ErrSlotConflict
	}

	insert := `
		INSERT INTO ricariche (id, id_utente, id_veicolo, id_colonnina, data_ora_inizio, data_ora_fine, energia_kwh, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, insert,
		res.ID,
		res.UserID,
		res.VehicleID,
		res.StationID,
		res.Inizio,
		res.Fine,
		res.EnergiaKWh,
		res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reservation: %w", err)
	}

	return nil
}

// CountReservationsByStation returns the lifetime reservation count for a station.
func (r *Repository) CountReservationsByStation(ctx context.Context, stationID string) (int64, error) {
	query := `SELECT COUNT(*) FROM ricariche WHERE id_colonnina = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, stationID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	return count, nil
}
