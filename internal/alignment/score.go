package alignment

// Score weights. Each component saturates at its cap; the caps sum to 100,
// so a full day lands exactly on the top of the scale.
const (
	meditationPoints = 10
	meditationCap    = 30

	journalPoints = 20 // flat: present or not, count irrelevant

	breathPoints = 5
	breathCap    = 15

	exercisePoints = 5
	exerciseCap    = 20

	// MaxScore is the upper bound of the alignment scale.
	MaxScore = 100
)

// moodPoints maps each mood level to its score contribution, best first.
var moodPoints = map[Mood]int{
	MoodRadiant: 15,
	MoodBright:  12,
	MoodSteady:  8,
	MoodLow:     5,
	MoodHeavy:   3,
}

// Score computes the 0-100 alignment score for a day's record. Pure
// function of the record; never persisted, always recomputed.
func Score(r *DayRecord) int {
	if r == nil {
		return 0
	}

	score := capped(r.Meditations*meditationPoints, meditationCap)
	if r.Journals > 0 {
		score += journalPoints
	}
	score += capped(r.Breaths*breathPoints, breathCap)
	score += capped(len(r.ExercisesDone)*exercisePoints, exerciseCap)
	if r.LatestMood != nil {
		score += moodPoints[*r.LatestMood]
	}

	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

func capped(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
