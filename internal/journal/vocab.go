package journal

// Fixed tag vocabularies offered by the journal surfaces. These are display
// conventions, not invariants: the core stores whatever tags the caller sends.

// MoodKeywords are the suggested free-text mood tags.
var MoodKeywords = []string{
	"Anxious", "Irritable", "Empty", "Excited", "Numb", "Creative",
	"Tearful", "Restless", "Focused", "Overwhelmed", "Confident",
}

// SleepIssues are the suggested sleep-problem tags.
var SleepIssues = []string{
	"Insomnia", "Early Wake", "Oversleeping", "Day/Night Reversal", "Nightmares",
}

// Events are the suggested daily-event tags.
var Events = []string{
	"Conflict", "High Stress", "Late Night", "Alcohol/Substances",
	"Social Overload", "Travel", "Missed Meds",
}

// WarningSigns are the suggested episode-onset warning tags.
var WarningSigns = []string{
	"Spending Spree", "Hypersexuality", "No Appetite", "Racing Thoughts",
	"Social Withdrawal", "Talking Fast", "Paranoia",
}

// DefaultSafetyPlan returns the built-in safety plan used when none has been
// saved: two contacts and three reminders. 988 is the US crisis hotline;
// localization of the number is an explicit non-goal.
func DefaultSafetyPlan() SafetyPlan {
	return SafetyPlan{
		Contacts: []Contact{
			{Name: "Therapist", Phone: "", Relation: "Professional"},
			{Name: "Emergency", Phone: "988", Relation: "Hotline"},
		},
		Reminders: []string{
			"This feeling is temporary.",
			"You have survived 100% of your bad days so far.",
			"Breathe. Just breathe.",
		},
	}
}
