package model

import "time"

// Reservation represents a charging reservation (table ricariche).
// Reservations are immutable once created; there is no update or cancel.
type Reservation struct {
	ID         string     `json:"id"`
	UserID     string     `json:"id_utente"`
	VehicleID  string     `json:"id_veicolo"`
	StationID  string     `json:"id_colonnina"`
	Inizio     time.Time  `json:"data_ora_inizio"`
	Fine       time.Time  `json:"data_ora_fine"`
	EnergiaKWh *float64   `json:"energia_kwh,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ConflictsWith reports whether this reservation blocks a proposed window.
// A conflict exists when this reservation's start or end falls inside
// [start, end], bounds included. The test is asymmetric: a reservation
// that fully contains the proposed window without either endpoint inside
// it is not detected. Mirrors the availability query in the repository.
func (r *Reservation) ConflictsWith(start, end time.Time) bool {
	return within(r.Inizio, start, end) || within(r.Fine, start, end)
}

// within reports t ∈ [start, end] inclusive.
func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// StationStat is a per-station usage aggregate for the admin statistics.
type StationStat struct {
	StationID     string  `json:"id_colonnina"`
	Indirizzo     string  `json:"indirizzo"`
	Utilizzi      int64   `json:"utilizzi"`
	EnergiaMedia  float64 `json:"energia_media"`
	EnergiaTotale float64 `json:"energia_totale"`
}

// MonthlyDemand is one bucket of the trailing-12-month demand trend.
// Grouping is by calendar month number alone (1-12); reservations from
// different years that share a month number land in the same bucket.
type MonthlyDemand struct {
	Mese         int     `json:"mese"`
	Prenotazioni int64   `json:"prenotazioni"`
	EnergiaMedia float64 `json:"energia_media"`
}
