package alignment

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/abhisek/attune/internal/store"
)

// Service owns the daily activity log, the derived alignment score and the
// three day-continuity streaks. Scores are never stored; they are recomputed
// from the canonical day records on every read.
//
// "Today" comes from the injected clock, so day rollovers are testable.
// The service is not safe for concurrent use; the caller serializes access.
type Service struct {
	days    map[string]*DayRecord
	streaks map[StreakType]*Streak

	repo     store.StateRepo
	activity store.ActivityLog
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a score/streak service from previously persisted state.
// A nil snapshot (first run, or a discarded corrupt blob) starts empty.
func NewService(data *store.AlignmentStateData, repo store.StateRepo, activity store.ActivityLog, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		days:     make(map[string]*DayRecord),
		streaks:  make(map[StreakType]*Streak),
		repo:     repo,
		activity: activity,
		log:      log,
		now:      time.Now,
	}
	for _, st := range AllStreakTypes() {
		s.streaks[st] = &Streak{}
	}

	if data == nil {
		return s
	}
	s.days = daysFromData(data.Days)
	s.streaks = streaksFromData(data.Streaks)
	return s
}

// RecordActivity counts one completed unit of the given kind against today,
// then refreshes streaks and persists. Unknown kinds are ignored.
func (s *Service) RecordActivity(kind Kind) {
	rec := s.todayRecord()
	switch kind {
	case KindMeditation:
		rec.Meditations++
	case KindAffirmation:
		rec.Affirmations++
	case KindJournal:
		rec.Journals++
	case KindBreath:
		rec.Breaths++
	default:
		s.log.Warn("ignoring unknown activity kind", "kind", string(kind))
		return
	}

	s.logActivity(string(kind), "")
	s.refreshStreaks(rec)
	s.persist()
}

// RecordMood stores today's latest mood level. The last entry of the day
// wins. Invalid levels are ignored.
func (s *Service) RecordMood(m Mood) {
	if !m.valid() {
		s.log.Warn("ignoring unknown mood level", "mood", string(m))
		return
	}
	rec := s.todayRecord()
	rec.LatestMood = &m

	s.logActivity("mood", string(m))
	s.refreshStreaks(rec)
	s.persist()
}

// CompleteExercise marks a distinct exercise as done today. Repeat
// completions of the same exercise on the same day don't count twice.
func (s *Service) CompleteExercise(id string) {
	if id == "" {
		return
	}
	rec := s.todayRecord()
	rec.ExercisesDone[id] = true

	s.logActivity("exercise", id)
	s.refreshStreaks(rec)
	s.persist()
}

// TodayScore returns today's 0-100 alignment score.
func (s *Service) TodayScore() int {
	return Score(s.days[DayKey(s.now())])
}

// StreakFor returns a copy of the named streak counter.
func (s *Service) StreakFor(t StreakType) Streak {
	if st, ok := s.streaks[t]; ok {
		return *st
	}
	return Streak{}
}

// History returns the last n calendar days in chronological order (oldest
// first), synthesizing zeroed records for days with no stored activity.
// The result is always exactly n records.
func (s *Service) History(n int) []DayRecord {
	if n <= 0 {
		return []DayRecord{}
	}

	now := s.now()
	out := make([]DayRecord, 0, n)
	for i := n - 1; i >= 0; i-- {
		key := DayKey(now.AddDate(0, 0, -i))
		if rec, ok := s.days[key]; ok {
			out = append(out, rec.clone())
			continue
		}
		out = append(out, *newDayRecord(key))
	}
	return out
}

// WeeklyStats returns the integer-rounded average score of the last 7 days
// and the total activity count across them.
func (s *Service) WeeklyStats() (avgScore, totalActivities int) {
	week := s.History(7)
	sum := 0
	for i := range week {
		sum += Score(&week[i])
		totalActivities += week[i].TotalActivities()
	}
	avgScore = int(math.Round(float64(sum) / float64(len(week))))
	return avgScore, totalActivities
}

// todayRecord returns today's record, creating it on first activity.
func (s *Service) todayRecord() *DayRecord {
	key := DayKey(s.now())
	if rec, ok := s.days[key]; ok {
		return rec
	}
	rec := newDayRecord(key)
	s.days[key] = rec
	return rec
}

// refreshStreaks credits every streak whose trigger fired today. Crediting
// is idempotent within a day, so calling this after each mutation is safe.
// The overall streak triggers on meditation, journal or breath activity.
func (s *Service) refreshStreaks(rec *DayRecord) {
	today := rec.Date
	yesterday := DayKey(s.now().AddDate(0, 0, -1))

	if rec.Meditations > 0 {
		s.streaks[StreakMeditation].credit(today, yesterday)
	}
	if rec.Affirmations > 0 {
		s.streaks[StreakAffirmation].credit(today, yesterday)
	}
	if rec.Meditations > 0 || rec.Journals > 0 || rec.Breaths > 0 {
		s.streaks[StreakOverall].credit(today, yesterday)
	}
}

// logActivity appends to the diagnostics log, fire-and-forget.
func (s *Service) logActivity(kind, detail string) {
	if s.activity == nil {
		return
	}
	err := s.activity.Append(context.Background(), store.ActivityEventData{
		Kind:      kind,
		Day:       DayKey(s.now()),
		Detail:    detail,
		Timestamp: s.now(),
	})
	if err != nil {
		s.log.Warn("activity event not logged", "kind", kind, "err", err)
	}
}

// persist writes the full state blob. A failed write only costs durability
// for this tick; the in-memory state remains the source of truth.
func (s *Service) persist() {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveAlignment(context.Background(), dataFromState(s.days, s.streaks)); err != nil {
		s.log.Warn("alignment state not saved", "err", err)
	}
}
