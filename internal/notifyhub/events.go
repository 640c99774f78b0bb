package notifyhub

import "time"

// RefreshEvent is broadcast after each aggregation pass triggered over the
// API, so connected clients know fresh data is available.
type RefreshEvent struct {
	Type  string    `json:"type"` // "digest.refresh"
	RunID string    `json:"run_id"`
	Keys  []string  `json:"keys"`
	At    time.Time `json:"at"`
}
