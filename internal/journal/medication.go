package journal

import "time"

// Default labels applied by surfaces when the user doesn't name a dose.
const (
	QuickDoseName = "Quick Dose"
	PhotoLogName  = "Photo Log"
)

// MedicationLog is one medication-taken event. The collection is append-only:
// logs are never mutated or removed, and multiple logs per day are expected.
type MedicationLog struct {
	// ID is a ULID assigned at logging time
	ID string `json:"id"`

	// Name is the dose label; surfaces default it, the core doesn't validate
	Name string `json:"name"`

	// Timestamp is the Unix timestamp of the logging action
	Timestamp int64 `json:"timestamp"`

	// Taken is always true in current flows; kept for future missed-dose tracking
	Taken bool `json:"taken"`

	// PhotoRef is an optional opaque attachment reference
	PhotoRef string `json:"photo_ref,omitempty"`
}

// TodaysLogs filters to logs whose timestamp falls within the current local
// calendar day, preserving storage order. The result is a derived view and
// is never stored; display surfaces reverse it for most-recent-first order.
func TodaysLogs(logs []MedicationLog, now time.Time) []MedicationLog {
	dayStart := StartOfDay(now).Unix()
	out := make([]MedicationLog, 0, len(logs))
	for _, l := range logs {
		if l.Timestamp >= dayStart {
			out = append(out, l)
		}
	}
	return out
}
