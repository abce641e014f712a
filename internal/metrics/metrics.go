// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Authentication metrics
	IncLoginSuccess(role string) // role: "admin" or "user"
	IncLoginFailure()
	IncRegistration()

	// Reservation metrics
	IncReservationCreated()
	IncReservationConflict()

	// Station listing cache metrics
	IncStationListCacheHit()
	IncStationListCacheMiss()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
