//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/voltpoint/voltpoint/internal/model"
	"github.com/voltpoint/voltpoint/internal/testutil"
)

// newTestEnv connects to the test database, serializes against other DB
// tests and resets the schema.
func newTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	return ctx, repo
}

// seedUser inserts a user and returns it.
func seedUser(t *testing.T, ctx context.Context, repo *Repository) *model.User {
	t.Helper()
	user := testutil.NewTestUser(t, testutil.UniqueEmail("seed"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// seedStation inserts a station and returns it.
func seedStation(t *testing.T, ctx context.Context, repo *Repository) *model.Station {
	t.Helper()
	station := testutil.NewTestStation(t, "Via Dante "+testutil.UniqueID(""))
	if err := repo.CreateStation(ctx, station); err != nil {
		t.Fatalf("seed station: %v", err)
	}
	return station
}

// seedVehicle inserts a vehicle owned by the given user and returns it.
func seedVehicle(t *testing.T, ctx context.Context, repo *Repository, userID string) *model.Vehicle {
	t.Helper()
	vehicle := testutil.NewTestVehicle(t, userID, testutil.UniquePlate())
	if err := repo.CreateVehicle(ctx, vehicle); err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return vehicle
}

// seedReservation inserts a reservation for the given window.
func seedReservation(t *testing.T, ctx context.Context, repo *Repository, userID, vehicleID, stationID string, start, end time.Time) *model.Reservation {
	t.Helper()
	res := testutil.NewTestReservation(t, userID, vehicleID, stationID, start)
	res.Fine = end
	if err := repo.CreateReservation(ctx, res); err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	return res
}
