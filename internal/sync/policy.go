package sync

import (
	"time"
)

// Policy names an idempotency window for ledger markers.
//
// The three policies are deliberately distinct: daily site views
// expire after 24 hours, per-review views count once per browser for
// ever, and like state is an unbounded toggle. Call sites pick the
// policy by name instead of sharing one generic mechanism.
type Policy struct {
	Name   string
	Window time.Duration // zero means the marker never expires
}

var (
	// DailyWindowPolicy gates the sitewide daily view counter
	DailyWindowPolicy = Policy{Name: "daily_window", Window: 24 * time.Hour}

	// OnceEverPolicy gates per-review view counting, once per browser
	OnceEverPolicy = Policy{Name: "once_ever"}

	// TogglePolicy covers like state, which flips freely and never expires
	TogglePolicy = Policy{Name: "toggle"}
)

// Expired reports whether a marker written at markedAt is stale under
// this policy at the given instant
func (p Policy) Expired(markedAt, now time.Time) bool {
	if p.Window == 0 {
		return false
	}
	return now.Sub(markedAt) >= p.Window
}
