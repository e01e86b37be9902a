package ops

import (
	"time"

	"github.com/hpungsan/flux/internal/errors"
	"github.com/hpungsan/flux/internal/journal"
	"github.com/hpungsan/flux/internal/store"
)

// RecordInput contains parameters for the Record operation.
type RecordInput struct {
	// Date addresses a specific calendar day; default: today
	Date string

	// Partial carries the field updates to merge into the day's record
	Partial journal.Partial

	Now time.Time // zero: current wall clock
}

// RecordOutput contains the result of the Record operation.
type RecordOutput struct {
	Record   journal.DailyRecord `json:"record"`
	Created  bool                `json:"created"`
	Crisis   bool                `json:"crisis"`
	Elevated bool                `json:"elevated"`
	Total    int                 `json:"total"` // entries in the collection after commit
}

// Record merges a partial update into the day's record and commits it: the
// full collection is written to the store, then the in-memory collection is
// replaced. One discrete user action maps to one such transaction; there is
// no batching or debounce. A storage failure aborts the whole step; memory
// keeps the last durable state and the caller must warn the user.
func Record(s *Session, input RecordInput) (*RecordOutput, error) {
	if input.Partial.IsEmpty() {
		return nil, errors.NewInvalidRequest("at least one field must be provided")
	}
	if err := ValidateDate(input.Date); err != nil {
		return nil, err
	}

	now := orNow(input.Now)
	date := input.Date
	if date == "" {
		date = journal.DateKey(now)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	active, found := journal.FindByDate(s.records, date)
	if !found {
		id, err := generateULID()
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		active = journal.NewDailyRecord(id, date, now)
	}

	updated := input.Partial.Apply(active)
	next := journal.Commit(updated, s.records)

	if err := store.SaveRecords(s.db, next); err != nil {
		return nil, err
	}
	s.records = next

	return &RecordOutput{
		Record:   updated,
		Created:  !found,
		Crisis:   journal.IsCrisisRange(updated.MoodValue),
		Elevated: journal.IsElevatedRange(updated.MoodValue),
		Total:    len(next),
	}, nil
}
