package journey

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/attune/internal/catalog"
	"github.com/abhisek/attune/internal/store"
)

// Service owns the journey state machine. All mutation goes through
// SelectPath, CompleteStage and the reset operations; everything else is a
// pure read of the in-memory state. Mutations report preconditions as plain
// booleans so the calling UI can present a rejection instead of an error.
//
// The service is not safe for concurrent use; the caller serializes access
// (one user, one action at a time).
type Service struct {
	state State
	repo  store.StateRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a journey service from previously persisted state.
// A nil or invariant-violating snapshot yields the default first-run state;
// stored state is never worth crashing over.
func NewService(data *store.JourneyStateData, repo store.StateRepo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		state: defaultState(),
		repo:  repo,
		log:   log,
		now:   time.Now,
	}

	if data == nil {
		return s
	}
	st, ok := stateFromData(data)
	if !ok {
		log.Warn("journey state failed invariant check, starting fresh",
			"mode", data.Mode, "selected", data.SelectedPathID)
		return s
	}
	s.state = st
	return s
}

// SelectPath activates a path for the user to work on.
// It fails when the path is unknown, already mastered, or when a different
// path is active. Re-selecting the already-active path is a no-op success.
func (s *Service) SelectPath(pathID string) bool {
	if !catalog.Exists(pathID) {
		return false
	}
	if s.state.MasteredPathIDs[pathID] {
		return false
	}
	if s.state.Mode == ModeActive {
		// Single-threaded catalog: only the active path itself is re-selectable.
		return pathID == s.state.SelectedPathID
	}

	s.state.Mode = ModeActive
	s.state.SelectedPathID = pathID
	s.state.StagesCompleted = 0
	s.touch()
	s.persist()
	return true
}

// CompleteStage marks the next stage of the active path as done. On the
// final stage the path transitions to complete and joins the mastered set;
// the selected path is retained so the UI can show a completion summary.
func (s *Service) CompleteStage() bool {
	if s.state.Mode != ModeActive {
		return false
	}

	s.state.StagesCompleted++
	if s.state.StagesCompleted >= catalog.StagesPerPath {
		s.state.Mode = ModeComplete
		s.state.MasteredPathIDs[s.state.SelectedPathID] = true
	}
	s.touch()
	s.persist()
	return true
}

// ResetToSelection returns to path selection. Used both to abandon an active
// path and to acknowledge a completed one. Mastered history is kept.
func (s *Service) ResetToSelection() {
	s.state.Mode = ModeSelecting
	s.state.SelectedPathID = ""
	s.state.StagesCompleted = 0
	s.touch()
	s.persist()
}

// ResetAll wipes everything, mastered history included.
func (s *Service) ResetAll() {
	s.state = defaultState()
	s.touch()
	s.persist()
}

// SlotState derives the UI-facing status of a path. Mastery wins over
// everything; while another path is active the rest of the catalog is locked.
func (s *Service) SlotState(pathID string) SlotState {
	if s.state.MasteredPathIDs[pathID] {
		return SlotMastered
	}
	if pathID == s.state.SelectedPathID {
		return SlotActive
	}
	if s.state.Mode == ModeActive {
		return SlotLocked
	}
	return SlotAvailable
}

// CurrentTask returns the next stage of the active path, or nil when no
// path is active.
func (s *Service) CurrentTask() *Task {
	if s.state.Mode != ModeActive {
		return nil
	}
	p, err := catalog.Get(s.state.SelectedPathID)
	if err != nil {
		return nil
	}
	stage := s.state.StagesCompleted + 1
	return &Task{Stage: stage, Text: p.Stage(stage)}
}

// AllPathsMastered reports whether every catalog path has been mastered.
func (s *Service) AllPathsMastered() bool {
	return len(s.state.MasteredPathIDs) == catalog.Count()
}

// Snapshot returns a read-only copy of the full state.
func (s *Service) Snapshot() State {
	return s.state.clone()
}

func (s *Service) touch() {
	s.state.UpdatedAt = s.now()
}

// persist writes the full state blob. A failed write only costs durability
// for this tick; the in-memory state remains the source of truth.
func (s *Service) persist() {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveJourney(context.Background(), dataFromState(s.state)); err != nil {
		s.log.Warn("journey state not saved", "err", err)
	}
}
