package repository

import (
	"context"
	"fmt"

	"github.com/voltpoint/voltpoint/internal/model"
)

// StationStats returns per-station lifetime usage aggregates ordered by
// reservation count descending. Stations without reservations appear with
// zero counts.
func (r *Repository) StationStats(ctx context.Context) ([]*model.StationStat, error) {
	query := `
		SELECT c.id, c.indirizzo,
		       COUNT(r.id) AS utilizzi,
		       COALESCE(AVG(r.energia_kwh), 0) AS energia_media,
		       COALESCE(SUM(r.energia_kwh), 0) AS energia_totale
		FROM colonnine c
		LEFT JOIN ricariche r ON r.id_colonnina = c.id
		GROUP BY c.id
		ORDER BY utilizzi DESC, c.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query station stats: %w", err)
	}
	defer rows.Close()

	var stats []*model.StationStat
	for rows.Next() {
		var s model.StationStat
		if err := rows.Scan(
			&s.StationID,
			&s.Indirizzo,
			&s.Utilizzi,
			&s.EnergiaMedia,
			&s.EnergiaTotale,
		); err != nil {
			return nil, fmt.Errorf("failed to scan station stat: %w", err)
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating station stats: %w", err)
	}

	return stats, nil
}

// MonthlyDemand returns reservation counts and mean energy over the
// trailing 12 months, grouped by calendar month number (1-12) alone and
// ordered ascending. Same-numbered months from different years share a
// bucket; that is the documented behavior, not a defect to fix here.
func (r *Repository) MonthlyDemand(ctx context.Context) ([]*model.MonthlyDemand, error) {
	query := `
		SELECT EXTRACT(MONTH FROM data_ora_inizio)::int AS mese,
		       COUNT(*) AS prenotazioni,
		       COALESCE(AVG(energia_kwh), 0) AS energia_media
		FROM ricariche
		WHERE data_ora_inizio >= NOW() - INTERVAL '12 months'
		GROUP BY mese
		ORDER BY mese
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly demand: %w", err)
	}
	defer rows.Close()

	var trend []*model.MonthlyDemand
	for rows.Next() {
		var m model.MonthlyDemand
		if err := rows.Scan(&m.Mese, &m.Prenotazioni, &m.EnergiaMedia); err != nil {
			return nil, fmt.Errorf("failed to scan monthly demand: %w", err)
		}
		trend = append(trend, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly demand: %w", err)
	}

	return trend, nil
}
