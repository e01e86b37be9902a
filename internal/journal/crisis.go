package journal

// Mood thresholds for the derived safety signals. Only the depressive pole
// triggers the safety-plan affordance; the manic pole gets a passive
// informational notice. This asymmetry is intentional: the safety plan
// targets self-harm risk, not mania risk.
const (
	CrisisThreshold   = -4
	ElevatedThreshold = 4
)

// IsCrisisRange reports whether the mood value should surface crisis-support
// affordances. Total over all integers: out-of-range values are treated as
// ordinary integers, no clamping. Stateless: leaving and re-entering the
// range re-enables the affordance with no cooldown.
func IsCrisisRange(moodValue int) bool {
	return moodValue <= CrisisThreshold
}

// IsElevatedRange reports whether the mood value is at the manic pole.
// Gates an informational notice only, never the safety plan.
func IsElevatedRange(moodValue int) bool {
	return moodValue >= ElevatedThreshold
}
