// capture.go — the per-invocation capture record.
//
// Lifecycle: created fresh for every Invoke, installed as the ambient handler
// for exactly the duration of the generator call, consulted once afterwards,
// then discarded. No reuse, no identity beyond one call.
//
// Semantics:
//   • Every event routed to the sink re-invokes recovery; value and error are
//     overwritten each time. The LAST triggering event wins. This mirrors the
//     ambient mechanism firing once per report, not once per scope.
//   • The full event sequence is retained in order (Events) so callers that
//     care about earlier reports can still see them.
//   • A recovery panic unwinds straight through Handle — and therefore
//     through the generator — to Invoke's deferred restore.
package xgxtrap

// captureRecord wraps the recovery function as a Handler and accumulates the
// outcome of one suppressed scope.
type captureRecord struct {
	recovery recoveryFunc

	invoked bool
	value   any
	err     error
	events  []Event
}

func newCaptureRecord(rec recoveryFunc) *captureRecord {
	return &captureRecord{recovery: rec}
}

// Handle is the sink: forward the event to recovery, record the outcome,
// and consume the event so no default treatment runs.
func (c *captureRecord) Handle(ev Event) bool {
	c.events = append(c.events, ev)
	c.invoked = true
	c.value, c.err = c.recovery.call(ev)
	return true
}

// isInvoked reports whether the sink fired at least once during the scope.
func (c *captureRecord) isInvoked() bool { return c.invoked }

// capturedValue returns recovery's result for the last event (nil before any
// event fires).
func (c *captureRecord) capturedValue() any { return c.value }

// capturedErr returns the error recovery raised for the last event, if any.
func (c *captureRecord) capturedErr() error { return c.err }

// Events returns the events routed to the sink, in order.
func (c *captureRecord) Events() []Event { return c.events }

var _ Handler = (*captureRecord)(nil)
