package alignment

// Kind identifies a countable activity type.
type Kind string

const (
	KindMeditation  Kind = "meditation"  // guided meditation session
	KindAffirmation Kind = "affirmation" // spoken/written affirmation practice
	KindJournal     Kind = "journal"     // journal entry
	KindBreath      Kind = "breath"      // quick breathwork exercise
)

// AllKinds returns the countable activity kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindMeditation, KindAffirmation, KindJournal, KindBreath}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindMeditation:
		return "Meditation"
	case KindAffirmation:
		return "Affirmation"
	case KindJournal:
		return "Journal"
	case KindBreath:
		return "Breathwork"
	default:
		return string(k)
	}
}

// Mood is one of five ordered levels, best first.
type Mood string

const (
	MoodRadiant Mood = "radiant"
	MoodBright  Mood = "bright"
	MoodSteady  Mood = "steady"
	MoodLow     Mood = "low"
	MoodHeavy   Mood = "heavy"
)

// AllMoods returns the mood levels in order, best first.
func AllMoods() []Mood {
	return []Mood{MoodRadiant, MoodBright, MoodSteady, MoodLow, MoodHeavy}
}

// valid reports whether m is one of the five levels.
func (m Mood) valid() bool {
	switch m {
	case MoodRadiant, MoodBright, MoodSteady, MoodLow, MoodHeavy:
		return true
	}
	return false
}

// StreakType identifies one of the three independent day-continuity streaks.
type StreakType string

const (
	StreakMeditation  StreakType = "meditation"
	StreakAffirmation StreakType = "affirmation"
	StreakOverall     StreakType = "overall"
)

// AllStreakTypes returns the streak types in display order.
func AllStreakTypes() []StreakType {
	return []StreakType{StreakMeditation, StreakAffirmation, StreakOverall}
}
