package ops

import (
	"sort"

	"github.com/hpungsan/flux/internal/config"
	"github.com/hpungsan/flux/internal/journal"
)

// TrendInput contains parameters for the Trend operation.
type TrendInput struct {
	Days int // default: cfg.TrendWindowDays
}

// TrendPoint is one chart-ready sample: mood alongside sleep quality and a
// numeric energy score on a shared axis.
type TrendPoint struct {
	Date         string `json:"date"`
	Mood         int    `json:"mood"`
	SleepQuality int    `json:"sleep_quality"`
	Energy       int    `json:"energy"` // Low=1, Medium=3, High=5
}

// TrendOutput contains the result of the Trend operation.
type TrendOutput struct {
	Points []TrendPoint `json:"points"`
	Window int          `json:"window"`
}

// Trend projects the record collection into a date-ascending series capped
// at the most recent window entries. Read-only: the projection never writes
// back to the collection.
func Trend(s *Session, cfg *config.Config, input TrendInput) (*TrendOutput, error) {
	window := input.Days
	if window <= 0 {
		window = cfg.TrendWindowDays
	}

	records := s.Records()
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	if len(records) > window {
		records = records[len(records)-window:]
	}

	points := make([]TrendPoint, len(records))
	for i, r := range records {
		points[i] = TrendPoint{
			Date:         r.Date,
			Mood:         r.MoodValue,
			SleepQuality: r.SleepQuality,
			Energy:       energyScore(r.EnergyLevel),
		}
	}

	return &TrendOutput{
		Points: points,
		Window: window,
	}, nil
}

// energyScore maps the energy enum onto the chart's numeric axis.
func energyScore(level journal.EnergyLevel) int {
	switch level {
	case journal.EnergyLow:
		return 1
	case journal.EnergyHigh:
		return 5
	default:
		return 3
	}
}
