package alignment

import "testing"

func moodPtr(m Mood) *Mood { return &m }

func TestScoreComponents(t *testing.T) {
	tests := []struct {
		name string
		rec  DayRecord
		want int
	}{
		{"empty day", DayRecord{}, 0},
		{"one meditation", DayRecord{Meditations: 1}, 10},
		{"meditation saturates at three", DayRecord{Meditations: 3}, 30},
		{"fourth meditation adds nothing", DayRecord{Meditations: 4}, 30},
		{"journal is flat", DayRecord{Journals: 1}, 20},
		{"journal count doesn't scale", DayRecord{Journals: 5}, 20},
		{"breath", DayRecord{Breaths: 2}, 10},
		{"breath saturates", DayRecord{Breaths: 7}, 15},
		{"affirmations don't score", DayRecord{Affirmations: 10}, 0},
		{"exercises", DayRecord{ExercisesDone: map[string]bool{"a": true, "b": true}}, 10},
		{"exercises saturate", DayRecord{ExercisesDone: map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true}}, 20},
		{"full day is exactly 100", DayRecord{
			Meditations:   3,
			Journals:      1,
			Breaths:       3,
			ExercisesDone: map[string]bool{"a": true, "b": true, "c": true, "d": true},
			LatestMood:    moodPtr(MoodRadiant),
		}, 100},
		{"everything over the caps clamps to 100", DayRecord{
			Meditations:   9,
			Journals:      9,
			Breaths:       9,
			ExercisesDone: map[string]bool{"a": true, "b": true, "c": true, "d": true, "e": true, "f": true},
			LatestMood:    moodPtr(MoodRadiant),
		}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(&tt.rec); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreMoodTable(t *testing.T) {
	tests := []struct {
		mood Mood
		want int
	}{
		{MoodRadiant, 15},
		{MoodBright, 12},
		{MoodSteady, 8},
		{MoodLow, 5},
		{MoodHeavy, 3},
	}

	for _, tt := range tests {
		rec := DayRecord{LatestMood: moodPtr(tt.mood)}
		if got := Score(&rec); got != tt.want {
			t.Errorf("Score(mood=%s) = %d, want %d", tt.mood, got, tt.want)
		}
	}
}

func TestScoreMonotonicUnderMoreActivity(t *testing.T) {
	rec := DayRecord{ExercisesDone: map[string]bool{}}
	prev := Score(&rec)
	for i := 0; i < 6; i++ {
		rec.Meditations++
		got := Score(&rec)
		if got < prev {
			t.Fatalf("score dropped from %d to %d after meditation %d", prev, got, rec.Meditations)
		}
		prev = got
	}
}

func TestScoreNilRecord(t *testing.T) {
	if got := Score(nil); got != 0 {
		t.Errorf("Score(nil) = %d, want 0", got)
	}
}
