package alignment

// DayRecord holds one calendar day's activity counters. Records are
// append-only: counters are incremented, never decremented, and a past
// day's record is immutable once the calendar rolls over.
type DayRecord struct {
	Date          string // YYYY-MM-DD, local calendar
	Meditations   int
	Affirmations  int
	Journals      int
	Breaths       int
	LatestMood    *Mood
	ExercisesDone map[string]bool
}

func newDayRecord(date string) *DayRecord {
	return &DayRecord{
		Date:          date,
		ExercisesDone: make(map[string]bool),
	}
}

// clone returns a deep copy so callers can't mutate engine state.
func (r *DayRecord) clone() DayRecord {
	out := *r
	if r.LatestMood != nil {
		m := *r.LatestMood
		out.LatestMood = &m
	}
	out.ExercisesDone = make(map[string]bool, len(r.ExercisesDone))
	for id := range r.ExercisesDone {
		out.ExercisesDone[id] = true
	}
	return out
}

// TotalActivities sums the four activity counters.
func (r *DayRecord) TotalActivities() int {
	return r.Meditations + r.Affirmations + r.Journals + r.Breaths
}
