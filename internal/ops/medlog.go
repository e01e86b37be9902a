package ops

import (
	"time"

	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/journal"
	"github.com/hpungsan/flux/internal/store"
)

// MedLogInput contains parameters for the MedLog operation.
type MedLogInput struct {
	// Name labels the dose; empty defaults to "Quick Dose"
	// (or "Photo Log" when a photo is attached)
	Name string

	// PhotoRef is an opaque attachment reference, e.g. a file path or data URL
	PhotoRef string

	Now time.Time // zero: current wall clock
}

// MedLogOutput contains the result of the MedLog operation.
type MedLogOutput struct {
	Log        journal.MedicationLog `json:"log"`
	TodayCount int                   `json:"today_count"`
}

// MedLog appends one medication-taken event. The log is append-only: no
// deduplication, no name validation, entries are never mutated afterward.
func MedLog(s *Session, input MedLogInput) (*MedLogOutput, error) {
	now := orNow(input.Now)

	name := input.Name
	if name == "" {
		name = journal.QuickDoseName
		if input.PhotoRef != "" {
			name = journal.PhotoLogName
		}
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	entry := journal.MedicationLog{
		ID:        id,
		Name:      name,
		Timestamp: now.Unix(),
		Taken:     true,
		PhotoRef:  input.PhotoRef,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]journal.MedicationLog, len(s.medications), len(s.medications)+1)
	copy(next, s.medications)
	next = append(next, entry)

	if err := store.SaveMedications(s.db, next); err != nil {
		return nil, err
	}
	s.medications = next

	return &MedLogOutput{
		Log:        entry,
		TodayCount: len(journal.TodaysLogs(next, now)),
	}, nil
}
