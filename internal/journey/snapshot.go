package journey

import (
	"sort"
	"time"

	"github.com/abhisek/attune/internal/catalog"
	"github.com/abhisek/attune/internal/store"
)

// stateFromData rebuilds State from its wire form. The second return is false
// when the data violates the state invariants, in which case the caller must
// fall back to the default state. Structural checks happen earlier, at the
// store's schema boundary; this covers the cross-field rules a schema can't.
func stateFromData(data *store.JourneyStateData) (State, bool) {
	if data == nil {
		return State{}, false
	}

	st := State{
		Mode:            Mode(data.Mode),
		SelectedPathID:  data.SelectedPathID,
		StagesCompleted: data.StagesCompleted,
		MasteredPathIDs: make(map[string]bool, len(data.MasteredPathIDs)),
	}
	for _, id := range data.MasteredPathIDs {
		st.MasteredPathIDs[id] = true
	}
	if t, err := time.Parse(time.RFC3339, data.UpdatedAt); err == nil {
		st.UpdatedAt = t
	}

	if data.StagesCompleted < 0 || data.StagesCompleted > catalog.StagesPerPath {
		return State{}, false
	}

	switch st.Mode {
	case ModeSelecting:
		if st.SelectedPathID != "" || st.StagesCompleted != 0 {
			return State{}, false
		}
	case ModeActive:
		if !catalog.Exists(st.SelectedPathID) {
			return State{}, false
		}
		if st.StagesCompleted >= catalog.StagesPerPath {
			return State{}, false
		}
		if st.MasteredPathIDs[st.SelectedPathID] {
			return State{}, false
		}
	case ModeComplete:
		if !catalog.Exists(st.SelectedPathID) {
			return State{}, false
		}
		if st.StagesCompleted != catalog.StagesPerPath {
			return State{}, false
		}
		if !st.MasteredPathIDs[st.SelectedPathID] {
			return State{}, false
		}
	default:
		return State{}, false
	}

	return st, true
}

// dataFromState exports State in its wire form, with the mastered set
// sorted for a stable serialization.
func dataFromState(st State) *store.JourneyStateData {
	mastered := make([]string, 0, len(st.MasteredPathIDs))
	for id := range st.MasteredPathIDs {
		mastered = append(mastered, id)
	}
	sort.Strings(mastered)

	data := &store.JourneyStateData{
		Mode:            string(st.Mode),
		SelectedPathID:  st.SelectedPathID,
		StagesCompleted: st.StagesCompleted,
		MasteredPathIDs: mastered,
	}
	if !st.UpdatedAt.IsZero() {
		data.UpdatedAt = st.UpdatedAt.Format(time.RFC3339)
	}
	return data
}
