package catalog

// StagesPerPath is the fixed number of stages a path requires for mastery.
const StagesPerPath = 3

// Path represents one of the fixed growth themes a user can work through.
// Paths are defined once at build time and never change at runtime.
type Path struct {
	ID     string
	Name   string
	Theme  string
	Stages [StagesPerPath]string
}

// Stage returns the 1-indexed stage description for the path.
// Returns an empty string for an out-of-range stage number.
func (p Path) Stage(n int) string {
	if n < 1 || n > StagesPerPath {
		return ""
	}
	return p.Stages[n-1]
}
