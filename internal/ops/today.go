package ops

import (
	"time"

	"github.com/hpungsan/flux/internal/journal"
)

// TodayInput contains parameters for the Today operation.
type TodayInput struct {
	Now time.Time // zero: current wall clock
}

// TodayOutput contains the result of the Today operation.
type TodayOutput struct {
	Record   journal.DailyRecord `json:"record"`
	Created  bool                `json:"created"` // true when no entry existed for today yet
	Crisis   bool                `json:"crisis"`
	Elevated bool                `json:"elevated"`
}

// Today resolves the active record for the current calendar date: the
// persisted entry when one exists, else a freshly constructed default.
// Absence is not an error, and nothing is persisted; the default record
// reaches the store on its first Record call.
func Today(s *Session, input TodayInput) (*TodayOutput, error) {
	now := orNow(input.Now)
	date := journal.DateKey(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, found := journal.FindByDate(s.records, date)
	if !found {
		id, err := generateULID()
		if err != nil {
			return nil, err
		}
		rec = journal.NewDailyRecord(id, date, now)
	}

	return &TodayOutput{
		Record:   rec,
		Created:  !found,
		Crisis:   journal.IsCrisisRange(rec.MoodValue),
		Elevated: journal.IsElevatedRange(rec.MoodValue),
	}, nil
}
