package model

import "time"

// UsageTier buckets a station's lifetime reservation count.
type UsageTier string

const (
	UsageNone   UsageTier = "none"
	UsageLow    UsageTier = "low"
	UsageMedium UsageTier = "medium"
	UsageHigh   UsageTier = "high"
)

// Usage tier thresholds. A station with zero reservations is unused;
// from 15 reservations on it counts as high demand.
const (
	usageLowMax    = 4
	usageMediumMax = 14
)

// ClassifyUsage maps a lifetime reservation count to a usage tier.
func ClassifyUsage(count int64) UsageTier {
	switch {
	case count == 0:
		return UsageNone
	case count <= usageLowMax:
		return UsageLow
	case count <= usageMediumMax:
		return UsageMedium
	default:
		return UsageHigh
	}
}

// Station represents a charging station (table colonnine).
type Station struct {
	ID          string    `json:"id"`
	Indirizzo   string    `json:"indirizzo"`
	Latitudine  float64   `json:"latitudine"`
	Longitudine float64   `json:"longitudine"`
	PotenzaKW   float64   `json:"potenza_kw"`
	Zona        string    `json:"nil,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// StationUsage is a station decorated with its lifetime usage figures,
// as returned by the public station listing.
type StationUsage struct {
	Station
	UtilizziTotali  int64     `json:"utilizzi_totali"`
	EnergiaMedia    float64   `json:"energia_media"`
	Classificazione UsageTier `json:"classificazione"`
}
