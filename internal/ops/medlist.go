package ops

import (
	"time"

	"github.com/hpungsan/flux/internal/journal"
)

// MedListInput contains parameters for the MedList operation.
type MedListInput struct {
	Now time.Time // zero: current wall clock
}

// MedListOutput contains the result of the MedList operation.
type MedListOutput struct {
	Logs  []journal.MedicationLog `json:"logs"` // most recent first
	Count int                     `json:"count"`
}

// MedList returns today's medication history for display, most recent
// first. The reversal is a presentation choice here at the surface
// boundary; storage order stays append order.
func MedList(s *Session, input MedListInput) (*MedListOutput, error) {
	now := orNow(input.Now)

	s.mu.Lock()
	todays := journal.TodaysLogs(s.medications, now)
	s.mu.Unlock()

	// reverse into most-recent-first
	logs := make([]journal.MedicationLog, len(todays))
	for i, l := range todays {
		logs[len(todays)-1-i] = l
	}

	return &MedListOutput{
		Logs:  logs,
		Count: len(logs),
	}, nil
}
