package catalog

import "fmt"

// validateSeed checks the structural integrity of the static catalog.
// Run once at init; a bad seed is a programming error, not a runtime condition.
func validateSeed(paths []Path) error {
	if len(paths) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p.ID == "" {
			return fmt.Errorf("path with empty ID (name %q)", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate path ID %q", p.ID)
		}
		seen[p.ID] = true

		if p.Name == "" {
			return fmt.Errorf("path %s: empty name", p.ID)
		}
		if p.Theme == "" {
			return fmt.Errorf("path %s: empty theme", p.ID)
		}
		for i, stage := range p.Stages {
			if stage == "" {
				return fmt.Errorf("path %s: empty stage %d", p.ID, i+1)
			}
		}
	}
	return nil
}
