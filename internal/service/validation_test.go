package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

// Validation happens before any store access; a nil repository proves
// these paths never reach the database.

func TestAuthService_Login_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, nil)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"both empty", "", ""},
		{"empty password", "mario@example.com", ""},
		{"empty email", "", "password"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("Login error = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, nil)

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"empty", RegisterInput{}},
		{"no password", RegisterInput{Email: "a@b.com", Nome: "Mario", Cognome: "Rossi"}},
		{"no nome", RegisterInput{Email: "a@b.com", Password: "pw", Cognome: "Rossi"}},
		{"no cognome", RegisterInput{Email: "a@b.com", Password: "pw", Nome: "Mario"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Register(context.Background(), tt.input)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("Register error = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestVehicleService_Create_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewVehicleService(nil)

	tests := []struct {
		name  string
		input CreateVehicleInput
	}{
		{"empty", CreateVehicleInput{}},
		{"no targa", CreateVehicleInput{Marca: "Tesla", Modello: "Model 3"}},
		{"no marca", CreateVehicleInput{Modello: "Model 3", Targa: "AB123CD"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateVehicle(context.Background(), "user-1", tt.input)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("CreateVehicle error = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestStationService_Create_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewStationService(nil, nil, time.Minute, nil)
	lat, lon, kw := 45.4642, 9.1900, 22.0

	tests := []struct {
		name  string
		input CreateStationInput
	}{
		{"empty", CreateStationInput{}},
		{"no indirizzo", CreateStationInput{Latitudine: &lat, Longitudine: &lon, PotenzaKW: &kw}},
		{"no latitudine", CreateStationInput{Indirizzo: "Via Roma 1", Longitudine: &lon, PotenzaKW: &kw}},
		{"no potenza", CreateStationInput{Indirizzo: "Via Roma 1", Latitudine: &lat, Longitudine: &lon}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateStation(context.Background(), tt.input)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("CreateStation error = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestReservationService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewReservationService(nil, nil, nil)
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   CreateReservationInput
		wantErr error
	}{
		{
			name:    "empty",
			input:   CreateReservationInput{},
			wantErr: ErrMissingFields,
		},
		{
			name: "no station",
			input: CreateReservationInput{
				VehicleID: "v1",
				Inizio:    start,
				Fine:      start.Add(time.Hour),
			},
			wantErr: ErrMissingFields,
		},
		{
			name: "end before start",
			input: CreateReservationInput{
				VehicleID: "v1",
				StationID: "c1",
				Inizio:    start,
				Fine:      start.Add(-time.Hour),
			},
			wantErr: ErrInvalidWindow,
		},
		{
			name: "zero length window",
			input: CreateReservationInput{
				VehicleID: "v1",
				StationID: "c1",
				Inizio:    start,
				Fine:      start,
			},
			wantErr: ErrInvalidWindow,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateReservation(context.Background(), "user-1", tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateReservation error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
