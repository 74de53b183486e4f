package alignment

import (
	"sort"

	"github.com/abhisek/attune/internal/store"
)

// daysFromData rebuilds the day map from its wire form. Individual entries
// that don't hold up (bad day key, unknown mood, negative counter) are
// skipped rather than taking the whole history down with them.
func daysFromData(data map[string]*store.DayRecordData) map[string]*DayRecord {
	days := make(map[string]*DayRecord, len(data))
	for key, rd := range data {
		if rd == nil || !validDayKey(key) || rd.Date != key {
			continue
		}
		if rd.MeditationCount < 0 || rd.AffirmationCount < 0 ||
			rd.JournalCount < 0 || rd.BreathCount < 0 {
			continue
		}
		rec := newDayRecord(key)
		rec.Meditations = rd.MeditationCount
		rec.Affirmations = rd.AffirmationCount
		rec.Journals = rd.JournalCount
		rec.Breaths = rd.BreathCount
		if rd.LatestMood != nil {
			if m := Mood(*rd.LatestMood); m.valid() {
				rec.LatestMood = &m
			}
		}
		for _, id := range rd.ExercisesDone {
			if id != "" {
				rec.ExercisesDone[id] = true
			}
		}
		days[key] = rec
	}
	return days
}

// streaksFromData rebuilds the streak counters, dropping malformed entries
// and unknown streak types. Missing streaks start at zero.
func streaksFromData(data map[string]*store.StreakData) map[StreakType]*Streak {
	streaks := make(map[StreakType]*Streak, len(AllStreakTypes()))
	for _, st := range AllStreakTypes() {
		streaks[st] = &Streak{}
	}
	for key, sd := range data {
		if sd == nil {
			continue
		}
		st := StreakType(key)
		if _, ok := streaks[st]; !ok {
			continue
		}
		if sd.Current < 0 || sd.Longest < sd.Current {
			continue
		}
		if sd.LastCredited != "" && !validDayKey(sd.LastCredited) {
			continue
		}
		streaks[st] = &Streak{
			Current:      sd.Current,
			Longest:      sd.Longest,
			LastCredited: sd.LastCredited,
		}
	}
	return streaks
}

// dataFromState exports the engine state in its wire form.
func dataFromState(days map[string]*DayRecord, streaks map[StreakType]*Streak) *store.AlignmentStateData {
	data := &store.AlignmentStateData{
		Days:    make(map[string]*store.DayRecordData, len(days)),
		Streaks: make(map[string]*store.StreakData, len(streaks)),
	}

	for key, rec := range days {
		rd := &store.DayRecordData{
			Date:             rec.Date,
			MeditationCount:  rec.Meditations,
			AffirmationCount: rec.Affirmations,
			JournalCount:     rec.Journals,
			BreathCount:      rec.Breaths,
		}
		if rec.LatestMood != nil {
			m := string(*rec.LatestMood)
			rd.LatestMood = &m
		}
		for id := range rec.ExercisesDone {
			rd.ExercisesDone = append(rd.ExercisesDone, id)
		}
		sort.Strings(rd.ExercisesDone)
		data.Days[key] = rd
	}

	for st, s := range streaks {
		data.Streaks[string(st)] = &store.StreakData{
			Current:      s.Current,
			Longest:      s.Longest,
			LastCredited: s.LastCredited,
		}
	}
	return data
}
