package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/voltpoint/voltpoint/internal/model"
)

// ErrStationNotFound indicates the requested station does not exist.
var ErrStationNotFound = errors.New("station not found")

// CreateStation inserts a new charging station into the database.
func (r *Repository) CreateStation(ctx context.Context, station *model.Station) error {
	query := `
		INSERT INTO colonnine (id, indirizzo, latitudine, longitudine, potenza_kw, nil_zona, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		station.ID,
		station.Indirizzo,
		station.Latitudine,
		station.Longitudine,
		station.PotenzaKW,
		station.Zona,
		station.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}

	return nil
}

// GetStationByID retrieves a station by its ID.
func (r *Repository) GetStationByID(ctx context.Context, id string) (*model.Station, error) {
	query := `
		SELECT id, indirizzo, latitudine, longitudine, potenza_kw, nil_zona, created_at
		FROM colonnine
		WHERE id = $1
	`

	var station model.Station
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&station.ID,
		&station.Indirizzo,
		&station.Latitudine,
		&station.Longitudine,
		&station.PotenzaKW,
		&station.Zona,
		&station.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, fmt.Errorf("failed to get station by ID: %w", err)
	}

	return &station, nil
}

// ListStationsWithUsage retrieves every station joined with its lifetime
// reservation count and mean energy. The usage classification is computed
// at the service layer, not in SQL.
func (r *Repository) ListStationsWithUsage(ctx context.Context) ([]*model.StationUsage, error) {
	query := `
		SELECT c.id, c.indirizzo, c.latitudine, c.longitudine, c.potenza_kw, c.nil_zona, c.created_at,
		       COUNT(r.id) AS utilizzi_totali,
		       COALESCE(AVG(r.energia_kwh), 0) AS energia_media
		FROM colonnine c
		LEFT JOIN ricariche r ON r.id_colonnina = c.id
		GROUP BY c.id
		ORDER BY c.created_at, c.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	defer rows.Close()

	var stations []*model.StationUsage
	for rows.Next() {
		var su model.StationUsage
		if err := rows.Scan(
			&su.ID,
			&su.Indirizzo,
			&su.Latitudine,
			&su.Longitudine,
			&su.PotenzaKW,
			&su.Zona,
			&su.CreatedAt,
			&su.UtilizziTotali,
			&su.EnergiaMedia,
		); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, &su)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stations: %w", err)
	}

	return stations, nil
}
