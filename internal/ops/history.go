package ops

import (
	"github.com/hpungsan/flux/internal/journal"
)

// HistoryInput contains parameters for the History operation.
type HistoryInput struct {
	Limit  int // default: 20, max: 100
	Offset int // default: 0
}

// HistoryOutput contains the result of the History operation.
type HistoryOutput struct {
	Items      []journal.DailyRecord `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

// History pages through the record collection in storage order (insertion
// order). Consumers needing chronological order use Trend, which sorts.
func History(s *Session, input HistoryInput) (*HistoryOutput, error) {
	// Apply limit defaults and bounds
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	// Ensure offset is non-negative
	offset := max(input.Offset, 0)

	records := s.Records()
	total := len(records)

	items := []journal.DailyRecord{}
	if offset < total {
		end := min(offset+limit, total)
		items = records[offset:end]
	}

	return &HistoryOutput{
		Items: items,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(items) < total,
			Total:   total,
		},
	}, nil
}
