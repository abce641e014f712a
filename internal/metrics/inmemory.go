package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	AdminLogins            uint64
	UserLogins             uint64
	LoginFailures          uint64
	Registrations          uint64
	ReservationsCreated    uint64
	ReservationConflicts   uint64
	StationListCacheHits   uint64
	StationListCacheMisses uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	adminLogins            uint64
	userLogins             uint64
	loginFailures          uint64
	registrations          uint64
	reservationsCreated    uint64
	reservationConflicts   uint64
	stationListCacheHits   uint64
	stationListCacheMisses uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		AdminLogins:            atomic.LoadUint64(&m.adminLogins),
		UserLogins:             atomic.LoadUint64(&m.userLogins),
		LoginFailures:          atomic.LoadUint64(&m.loginFailures),
		Registrations:          atomic.LoadUint64(&m.registrations),
		ReservationsCreated:    atomic.LoadUint64(&m.reservationsCreated),
		ReservationConflicts:   atomic.LoadUint64(&m.reservationConflicts),
		StationListCacheHits:   atomic.LoadUint64(&m.stationListCacheHits),
		StationListCacheMisses: atomic.LoadUint64(&m.stationListCacheMisses),
	}
}

// IncLoginSuccess increments the login counter for the given role.
func (m *InMemoryRecorder) IncLoginSuccess(role string) {
	if role == "admin" {
		atomic.AddUint64(&m.adminLogins, 1)
		return
	}
	atomic.AddUint64(&m.userLogins, 1)
}

// IncLoginFailure increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncRegistration increments the registration counter.
func (m *InMemoryRecorder) IncRegistration() {
	atomic.AddUint64(&m.registrations, 1)
}

// IncReservationCreated increments the reservation counter.
func (m *InMemoryRecorder) IncReservationCreated() {
	atomic.AddUint64(&m.reservationsCreated, 1)
}

// IncReservationConflict increments the slot conflict counter.
func (m *InMemoryRecorder) IncReservationConflict() {
	atomic.AddUint64(&m.reservationConflicts, 1)
}

// IncStationListCacheHit increments the station cache hit counter.
func (m *InMemoryRecorder) IncStationListCacheHit() {
	atomic.AddUint64(&m.stationListCacheHits, 1)
}

// IncStationListCacheMiss increments the station cache miss counter.
func (m *InMemoryRecorder) IncStationListCacheMiss() {
	atomic.AddUint64(&m.stationListCacheMisses, 1)
}
