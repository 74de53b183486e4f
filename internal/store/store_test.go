package store

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "attune.db")
	s, err := Open(dbPath, slog.Default())
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestJourneyStateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	// Nothing stored yet.
	data, err := repo.LoadJourney(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	in := &JourneyStateData{
		Mode:            "active",
		SelectedPathID:  "ruby",
		StagesCompleted: 2,
		MasteredPathIDs: []string{"citrine", "jade"},
		UpdatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	require.NoError(t, repo.SaveJourney(ctx, in))

	out, err := repo.LoadJourney(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, out)

	// Saving again replaces the blob in place.
	in.Mode = "complete"
	in.StagesCompleted = 3
	in.MasteredPathIDs = append(in.MasteredPathIDs, "ruby")
	require.NoError(t, repo.SaveJourney(ctx, in))

	out, err = repo.LoadJourney(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "complete", out.Mode)
	assert.Len(t, out.MasteredPathIDs, 3)
}

func TestAlignmentStateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	mood := "bright"
	in := &AlignmentStateData{
		Days: map[string]*DayRecordData{
			"2026-08-30": {
				Date:            "2026-08-30",
				MeditationCount: 2,
				JournalCount:    1,
				LatestMood:      &mood,
				ExercisesDone:   []string{"body-scan"},
			},
		},
		Streaks: map[string]*StreakData{
			"meditation": {Current: 4, Longest: 9, LastCredited: "2026-08-30"},
			"overall":    {Current: 4, Longest: 12, LastCredited: "2026-08-30"},
		},
	}
	require.NoError(t, repo.SaveAlignment(ctx, in))

	out, err := repo.LoadAlignment(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, out)
}

func TestLoadDiscardsCorruptBlobs(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not JSON", `{{{`},
		{"wrong shape", `[1, 2, 3]`},
		{"bogus mode", `{"mode":"bogus","stages_completed":0,"mastered_path_ids":[]}`},
		{"stages out of range", `{"mode":"active","selected_path_id":"ruby","stages_completed":7,"mastered_path_ids":[]}`},
		{"mistyped mastered set", `{"mode":"selecting","stages_completed":0,"mastered_path_ids":[1,2]}`},
		{"unknown field", `{"mode":"selecting","stages_completed":0,"mastered_path_ids":[],"extra":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t)
			ctx := context.Background()

			_, err := s.DB().ExecContext(ctx,
				`INSERT INTO app_state (key, data, updated_at) VALUES (?, ?, ?)`,
				JourneyStateKey, tt.blob, time.Now().UTC())
			require.NoError(t, err)

			data, err := s.StateRepo().LoadJourney(ctx)
			require.NoError(t, err, "corrupt blob must not surface as an error")
			assert.Nil(t, data, "corrupt blob must be discarded")
		})
	}
}

func TestLoadDiscardsCorruptAlignmentBlobs(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"negative count", `{"days":{"2026-08-30":{"date":"2026-08-30","meditation_count":-1}},"streaks":{}}`},
		{"bad mood", `{"days":{"2026-08-30":{"date":"2026-08-30","latest_mood":"ecstatic"}},"streaks":{}}`},
		{"bad day key shape", `{"days":{"x":{"date":"yesterday"}},"streaks":{}}`},
		{"missing streaks", `{"days":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t)
			ctx := context.Background()

			_, err := s.DB().ExecContext(ctx,
				`INSERT INTO app_state (key, data, updated_at) VALUES (?, ?, ?)`,
				AlignmentStateKey, tt.blob, time.Now().UTC())
			require.NoError(t, err)

			data, err := s.StateRepo().LoadAlignment(ctx)
			require.NoError(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestActivityLogAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	log := s.ActivityLog()
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	kinds := []string{"meditation", "journal", "breath"}
	for i, kind := range kinds {
		err := log.Append(ctx, ActivityEventData{
			Kind:      kind,
			Day:       "2026-08-30",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	events, err := log.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Most recent first.
	assert.Equal(t, "breath", events[0].Kind)
	assert.Equal(t, "journal", events[1].Kind)
	assert.NotEmpty(t, events[0].ID, "IDs are assigned on append")
}
