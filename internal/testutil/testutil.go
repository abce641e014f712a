package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/voltpoint/voltpoint/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 730730

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// migrationOrder lists the schema migrations oldest first. Down migrations
// run in reverse because ricariche references veicoli and colonnine.
var migrationOrder = []string{
	"000001_accounts",
	"000002_fleet",
	"000003_ricariche",
}

// ResetSchema drops and recreates every table for tests.
func ResetSchema(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	for i := len(migrationOrder) - 1; i >= 0; i-- {
		downPath := filepath.Join(root, "migrations", migrationOrder[i]+".down.sql")
		downSQL, err := os.ReadFile(downPath)
		if err != nil {
			return fmt.Errorf("read down migration %s: %w", migrationOrder[i], err)
		}
		if _, err := pool.Exec(ctx, string(downSQL)); err != nil {
			return fmt.Errorf("apply down migration %s: %w", migrationOrder[i], err)
		}
	}

	for _, name := range migrationOrder {
		upPath := filepath.Join(root, "migrations", name+".up.sql")
		upSQL, err := os.ReadFile(upPath)
		if err != nil {
			return fmt.Errorf("read up migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(upSQL)); err != nil {
			return fmt.Errorf("apply up migration %s: %w", name, err)
		}
	}

	return nil
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB, email string) *model.User {
	t.Helper()
	now := time.Now().UTC()
	return &model.User{
		ID:           fmt.Sprintf("user-%d", now.UnixNano()),
		Nome:         "Test",
		Cognome:      "Utente",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
	}
}

// NewTestStation creates a test charging station with sensible defaults.
func NewTestStation(t testing.TB, indirizzo string) *model.Station {
	t.Helper()
	now := time.Now().UTC()
	return &model.Station{
		ID:          fmt.Sprintf("station-%d", now.UnixNano()),
		Indirizzo:   indirizzo,
		Latitudine:  45.4642,
		Longitudine: 9.1900,
		PotenzaKW:   22,
		CreatedAt:   now,
	}
}

// NewTestVehicle creates a test vehicle owned by the given user.
func NewTestVehicle(t testing.TB, userID, targa string) *model.Vehicle {
	t.Helper()
	now := time.Now().UTC()
	return &model.Vehicle{
		ID:        fmt.Sprintf("vehicle-%d", now.UnixNano()),
		UserID:    userID,
		Targa:     targa,
		Marca:     "Tesla",
		Modello:   "Model 3",
		CreatedAt: now,
	}
}

// NewTestReservation creates a one-hour test reservation starting at start.
func NewTestReservation(t testing.TB, userID, vehicleID, stationID string, start time.Time) *model.Reservation {
	t.Helper()
	return &model.Reservation{
		ID:        fmt.Sprintf("resv-%d", time.Now().UnixNano()),
		UserID:    userID,
		VehicleID: vehicleID,
		StationID: stationID,
		Inizio:    start,
		Fine:      start.Add(time.Hour),
		CreatedAt: time.Now().UTC(),
	}
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// UniqueEmail generates a unique email address for tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

// UniquePlate generates a unique license plate for tests.
func UniquePlate() string {
	return fmt.Sprintf("ZZ%06dXX", time.Now().UnixNano()%1000000)
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}
