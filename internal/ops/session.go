package ops

import (
	"database/sql"
	"sync"

	"github.com/hpungsan/flux/internal/journal"
	"github.com/hpungsan/flux/internal/store"
)

// Session is the explicit context object every operation works against: the
// open store handle plus the in-memory collections it owns. The collections
// and the persisted store never diverge: a mutation first writes the full
// collection to the store and only then replaces the in-memory copy, so a
// failed save leaves memory at the last durable state.
//
// A mutex serializes mutations so the commit step's read-modify-write is
// never interleaved, even when the MCP or web surface handles calls
// concurrently.
type Session struct {
	db *sql.DB

	mu          sync.Mutex
	records     []journal.DailyRecord
	medications []journal.MedicationLog
	plan        journal.SafetyPlan
}

// OpenSession loads all three collections and returns a session owning them.
// Missing collections default (empty records/medications, built-in safety
// plan); a corrupt payload fails the open loudly.
func OpenSession(db *sql.DB) (*Session, error) {
	records, err := store.LoadRecords(db)
	if err != nil {
		return nil, err
	}
	medications, err := store.LoadMedications(db)
	if err != nil {
		return nil, err
	}
	plan, err := store.LoadPlan(db)
	if err != nil {
		return nil, err
	}

	return &Session{
		db:          db,
		records:     records,
		medications: medications,
		plan:        plan,
	}, nil
}

// Records returns a snapshot copy of the record collection in storage order.
func (s *Session) Records() []journal.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]journal.DailyRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Medications returns a snapshot copy of the medication log in append order.
func (s *Session) Medications() []journal.MedicationLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]journal.MedicationLog, len(s.medications))
	copy(out, s.medications)
	return out
}

// Plan returns the current safety plan.
func (s *Session) Plan() journal.SafetyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}
