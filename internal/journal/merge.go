package journal

// Partial is a set of field updates for the active record. Nil fields are
// left untouched by Apply; non-nil set fields replace the record's set
// wholly (shallow merge, no element-level merging).
type Partial struct {
	MoodValue    *int         `json:"mood_value,omitempty"`
	EnergyLevel  *EnergyLevel `json:"energy_level,omitempty"`
	Keywords     *[]string    `json:"keywords,omitempty"`
	Note         *string      `json:"note,omitempty"`
	SleepTime    *string      `json:"sleep_time,omitempty"`
	WakeTime     *string      `json:"wake_time,omitempty"`
	SleepQuality *int         `json:"sleep_quality,omitempty"`
	SleepIssues  *[]string    `json:"sleep_issues,omitempty"`
	Events       *[]string    `json:"events,omitempty"`
	EventImpact  *EventImpact `json:"event_impact,omitempty"`
	WarningSigns *[]string    `json:"warning_signs,omitempty"`
}

// IsEmpty reports whether the partial carries no updates.
func (p Partial) IsEmpty() bool {
	return p.MoodValue == nil && p.EnergyLevel == nil && p.Keywords == nil &&
		p.Note == nil && p.SleepTime == nil && p.WakeTime == nil &&
		p.SleepQuality == nil && p.SleepIssues == nil && p.Events == nil &&
		p.EventImpact == nil && p.WarningSigns == nil
}

// Apply produces a new record identical to active except for the fields
// present in the partial. Pure function: neither input is mutated. Field
// values are taken as-is; range and vocabulary checks belong to the surfaces.
func (p Partial) Apply(active DailyRecord) DailyRecord {
	out := active
	if p.MoodValue != nil {
		out.MoodValue = *p.MoodValue
	}
	if p.EnergyLevel != nil {
		out.EnergyLevel = *p.EnergyLevel
	}
	if p.Keywords != nil {
		out.Keywords = cloneTags(*p.Keywords)
	}
	if p.Note != nil {
		out.Note = *p.Note
	}
	if p.SleepTime != nil {
		out.SleepTime = *p.SleepTime
	}
	if p.WakeTime != nil {
		out.WakeTime = *p.WakeTime
	}
	if p.SleepQuality != nil {
		out.SleepQuality = *p.SleepQuality
	}
	if p.SleepIssues != nil {
		out.SleepIssues = cloneTags(*p.SleepIssues)
	}
	if p.Events != nil {
		out.Events = cloneTags(*p.Events)
	}
	if p.EventImpact != nil {
		out.EventImpact = *p.EventImpact
	}
	if p.WarningSigns != nil {
		out.WarningSigns = cloneTags(*p.WarningSigns)
	}
	return out
}

// cloneTags copies a tag set so the result never aliases caller memory.
// A nil input becomes an empty set; set fields are never nil on a record.
func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
