package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess(role string) {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure() {}

// IncRegistration is a no-op.
func (n *NoopRecorder) IncRegistration() {}

// IncReservationCreated is a no-op.
func (n *NoopRecorder) IncReservationCreated() {}

// IncReservationConflict is a no-op.
func (n *NoopRecorder) IncReservationConflict() {}

// IncStationListCacheHit is a no-op.
func (n *NoopRecorder) IncStationListCacheHit() {}

// IncStationListCacheMiss is a no-op.
func (n *NoopRecorder) IncStationListCacheMiss() {}
