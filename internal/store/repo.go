package store

import (
	"context"
	"time"
)

// Versioned storage keys. Bumping a version orphans old blobs: the loader
// simply never sees them and the engine starts from defaults.
const (
	JourneyStateKey   = "journey.v1"
	AlignmentStateKey = "alignment.v1"
)

// JourneyStateData is the wire form of the journey engine state.
type JourneyStateData struct {
	Mode            string   `json:"mode"`
	SelectedPathID  string   `json:"selected_path_id,omitempty"`
	StagesCompleted int      `json:"stages_completed"`
	MasteredPathIDs []string `json:"mastered_path_ids"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

// DayRecordData is the wire form of a single day's activity counters.
type DayRecordData struct {
	Date             string   `json:"date"`
	MeditationCount  int      `json:"meditation_count"`
	AffirmationCount int      `json:"affirmation_count"`
	JournalCount     int      `json:"journal_count"`
	BreathCount      int      `json:"breath_count"`
	LatestMood       *string  `json:"latest_mood,omitempty"`
	ExercisesDone    []string `json:"exercises_done,omitempty"`
}

// StreakData is the wire form of a single streak counter.
type StreakData struct {
	Current      int    `json:"current"`
	Longest      int    `json:"longest"`
	LastCredited string `json:"last_credited,omitempty"`
}

// AlignmentStateData is the wire form of the score/streak engine state.
type AlignmentStateData struct {
	Days    map[string]*DayRecordData `json:"days"`
	Streaks map[string]*StreakData    `json:"streaks"`
}

// StateRepo persists whole-state blobs under fixed versioned keys.
// Load methods return (nil, nil) when no blob exists or when the stored
// blob fails validation; callers fall back to default state.
type StateRepo interface {
	SaveJourney(ctx context.Context, data *JourneyStateData) error
	LoadJourney(ctx context.Context) (*JourneyStateData, error)

	SaveAlignment(ctx context.Context, data *AlignmentStateData) error
	LoadAlignment(ctx context.Context) (*AlignmentStateData, error)
}

// ActivityEventData captures one recorded activity for the diagnostics log.
type ActivityEventData struct {
	ID        string
	Kind      string
	Day       string
	Detail    string // mood level or exercise ID, empty otherwise
	Timestamp time.Time
}

// ActivityLog provides append access to the activity diagnostics log.
// The log is advisory: engines never read it back to derive state.
type ActivityLog interface {
	Append(ctx context.Context, data ActivityEventData) error
	Recent(ctx context.Context, limit int) ([]ActivityEventData, error)
}
