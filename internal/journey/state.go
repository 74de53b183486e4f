package journey

import "time"

// Mode tracks where the user is in the path lifecycle.
type Mode string

const (
	ModeSelecting Mode = "selecting" // choosing a path
	ModeActive    Mode = "active"    // working a path
	ModeComplete  Mode = "complete"  // just finished a path, awaiting acknowledgement
)

// SlotState is the derived, UI-facing status of a catalog path.
type SlotState string

const (
	SlotLocked    SlotState = "locked"
	SlotAvailable SlotState = "available"
	SlotActive    SlotState = "active"
	SlotMastered  SlotState = "mastered"
)

// Task is the next stage to work on the active path.
type Task struct {
	Stage int // 1-indexed
	Text  string
}

// State is the full journey state. The catalog is single-threaded: at most
// one path is active at a time, and a mastered path never leaves the
// mastered set.
type State struct {
	Mode            Mode
	SelectedPathID  string
	StagesCompleted int
	MasteredPathIDs map[string]bool
	UpdatedAt       time.Time
}

// defaultState is the first-run state: choosing, nothing mastered.
func defaultState() State {
	return State{
		Mode:            ModeSelecting,
		MasteredPathIDs: make(map[string]bool),
	}
}

// clone returns a deep copy so callers can't mutate engine state.
func (s State) clone() State {
	out := s
	out.MasteredPathIDs = make(map[string]bool, len(s.MasteredPathIDs))
	for id := range s.MasteredPathIDs {
		out.MasteredPathIDs[id] = true
	}
	return out
}
