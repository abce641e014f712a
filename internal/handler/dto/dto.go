// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"errors"
	"time"

	"github.com/voltpoint/voltpoint/internal/model"
)

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the caller identity echoed back by login and check-auth.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message  string   `json:"message"`
	UserType string   `json:"user_type"`
	User     UserInfo `json:"user"`
}

// CheckAuthResponse reports the current session identity, if any.
type CheckAuthResponse struct {
	Authenticated bool      `json:"authenticated"`
	UserType      string    `json:"user_type,omitempty"`
	User          *UserInfo `json:"user,omitempty"`
}

// RegisterRequest represents the request body for registration and for
// the admin add-user operation (same shape).
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nome      string `json:"nome"`
	Cognome   string `json:"cognome"`
	Telefono  string `json:"telefono,omitempty"`
	Indirizzo string `json:"indirizzo,omitempty"`
	Citta     string `json:"citta,omitempty"`
}

// CreateStationRequest represents the request body for creating a station.
// Numeric fields are pointers so that absent and zero can be told apart.
type CreateStationRequest struct {
	Indirizzo   string   `json:"indirizzo"`
	Latitudine  *float64 `json:"latitudine"`
	Longitudine *float64 `json:"longitudine"`
	PotenzaKW   *float64 `json:"potenza_kw"`
	Zona        string   `json:"nil,omitempty"`
}

// CreateVehicleRequest represents the request body for registering a vehicle.
type CreateVehicleRequest struct {
	Marca   string `json:"marca"`
	Modello string `json:"modello"`
	Targa   string `json:"targa"`
}

// CreateReservationRequest represents the request body for booking a slot.
// Timestamps are strings parsed with ParseTimestamp.
type CreateReservationRequest struct {
	IDVeicolo     string   `json:"id_veicolo"`
	IDColonnina   string   `json:"id_colonnina"`
	DataOraInizio string   `json:"data_ora_inizio"`
	DataOraFine   string   `json:"data_ora_fine"`
	EnergiaKWh    *float64 `json:"energia_kwh,omitempty"`
}

// StatisticsResponse bundles the two admin statistics projections, keyed
// the way the original API named them.
type StatisticsResponse struct {
	StatsColonnine []*model.StationStat   `json:"stats_colonnine"`
	Previsioni     []*model.MonthlyDemand `json:"previsioni"`
}

// MessageResponse is a generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ErrBadTimestamp indicates a timestamp string matched none of the
// accepted layouts.
var ErrBadTimestamp = errors.New("unrecognized timestamp format")

// timestampLayouts are the accepted wire formats for reservation windows,
// most specific first. HTML datetime-local inputs produce the minute-
// precision variants.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a reservation timestamp in any accepted layout.
// Layouts without an offset are interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadTimestamp
}

// ToUserInfo converts a session identity to the wire representation.
func ToUserInfo(id *model.Identity) UserInfo {
	return UserInfo{
		ID:    id.ID,
		Email: id.Email,
		Name:  id.Name,
	}
}
