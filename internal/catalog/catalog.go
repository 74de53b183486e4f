package catalog

import "fmt"

// index holds the path catalog with a precomputed ID lookup.
type index struct {
	paths []Path
	byID  map[string]*Path
}

// idx is the package-level catalog singleton, built by init().
var idx *index

func init() {
	if err := validateSeed(seed); err != nil {
		panic(fmt.Sprintf("invalid path catalog: %v", err))
	}
	idx = buildIndex(seed)
}

func buildIndex(paths []Path) *index {
	ix := &index{
		paths: paths,
		byID:  make(map[string]*Path, len(paths)),
	}
	for i := range ix.paths {
		ix.byID[ix.paths[i].ID] = &ix.paths[i]
	}
	return ix
}

// Get returns the path with the given ID.
func Get(id string) (*Path, error) {
	p, ok := idx.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown path: %s", id)
	}
	return p, nil
}

// Exists reports whether a path with the given ID is in the catalog.
func Exists(id string) bool {
	_, ok := idx.byID[id]
	return ok
}

// All returns every path in display order.
func All() []Path {
	out := make([]Path, len(idx.paths))
	copy(out, idx.paths)
	return out
}

// Count returns the number of paths in the catalog.
func Count() int {
	return len(idx.paths)
}
