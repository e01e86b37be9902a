package journal

import "time"

// EnergyLevel is the coarse energy rating attached to a daily record.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "Low"
	EnergyMedium EnergyLevel = "Medium"
	EnergyHigh   EnergyLevel = "High"
)

// EventImpact is the overall impact rating for the day's events.
// It is only meaningful when the Events set is non-empty.
type EventImpact string

const (
	ImpactNegative EventImpact = "negative"
	ImpactNeutral  EventImpact = "neutral"
	ImpactPositive EventImpact = "positive"
)

// DailyRecord is one journal entry per calendar date.
// Date is the true uniqueness key for reconciliation; ID and Timestamp are
// informational only.
type DailyRecord struct {
	// ID is a ULID assigned when the record is first created
	ID string `json:"id"`

	// Date is the calendar date in YYYY-MM-DD form (local time)
	Date string `json:"date"`

	// Timestamp is the Unix timestamp of the record's creation
	Timestamp int64 `json:"timestamp"`

	// MoodValue is the mood rating in [-5, 5], 0 = neutral baseline
	MoodValue int `json:"mood_value"`

	// EnergyLevel is the coarse energy rating
	EnergyLevel EnergyLevel `json:"energy_level"`

	// Keywords are free-text mood tags in selection order
	Keywords []string `json:"keywords"`

	// Note is unconstrained free text about the day
	Note string `json:"note"`

	// SleepTime and WakeTime are wall-clock HH:MM strings, unvalidated
	SleepTime string `json:"sleep_time"`
	WakeTime  string `json:"wake_time"`

	// SleepQuality is a rating in [1, 5]
	SleepQuality int `json:"sleep_quality"`

	// SleepIssues are tags from the SleepIssues vocabulary
	SleepIssues []string `json:"sleep_issues"`

	// Events are tags from the Events vocabulary
	Events []string `json:"events"`

	// EventImpact rates the day's events as a whole
	EventImpact EventImpact `json:"event_impact"`

	// WarningSigns are tags from the WarningSigns vocabulary signaling
	// possible mood-episode onset
	WarningSigns []string `json:"warning_signs"`
}

// NewDailyRecord constructs a default record for the given date.
// Defaults match a blank journal entry: neutral mood, medium energy,
// mid-scale sleep quality, all tag sets empty.
func NewDailyRecord(id, date string, now time.Time) DailyRecord {
	return DailyRecord{
		ID:           id,
		Date:         date,
		Timestamp:    now.Unix(),
		MoodValue:    0,
		EnergyLevel:  EnergyMedium,
		Keywords:     []string{},
		Note:         "",
		SleepTime:    "",
		WakeTime:     "",
		SleepQuality: 3,
		SleepIssues:  []string{},
		Events:       []string{},
		EventImpact:  ImpactNeutral,
		WarningSigns: []string{},
	}
}

// DateKey formats a time as the YYYY-MM-DD reconciliation key in its own
// location. "Today" always means the device's local calendar day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Contact is a single safety-plan contact.
type Contact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// SafetyPlan is the singleton crisis-support configuration: emergency
// contacts plus grounding reminders, shown on demand.
type SafetyPlan struct {
	Contacts  []Contact `json:"contacts"`
	Reminders []string  `json:"reminders"`
}
