package catalog

import "testing"

func TestCatalogSize(t *testing.T) {
	if Count() != 8 {
		t.Errorf("Count() = %d, want 8", Count())
	}
	if len(All()) != 8 {
		t.Errorf("len(All()) = %d, want 8", len(All()))
	}
}

func TestGetKnownPaths(t *testing.T) {
	for _, id := range []string{"ruby", "citrine", "amethyst", "rose-quartz", "obsidian", "moonstone", "jade", "clear-quartz"} {
		p, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", id, err)
		}
		if p.ID != id {
			t.Errorf("Get(%q).ID = %q", id, p.ID)
		}
		if !Exists(id) {
			t.Errorf("Exists(%q) = false", id)
		}
	}
}

func TestGetUnknownPath(t *testing.T) {
	if _, err := Get("topaz"); err == nil {
		t.Error("Get(topaz) succeeded, want error")
	}
	if Exists("topaz") {
		t.Error("Exists(topaz) = true")
	}
}

func TestEveryPathHasThreeStages(t *testing.T) {
	for _, p := range All() {
		for i := 1; i <= StagesPerPath; i++ {
			if p.Stage(i) == "" {
				t.Errorf("path %s: stage %d is empty", p.ID, i)
			}
		}
		if p.Stage(0) != "" || p.Stage(StagesPerPath+1) != "" {
			t.Errorf("path %s: out-of-range stage is non-empty", p.ID)
		}
	}
}

func TestValidateSeedRejectsBadCatalogs(t *testing.T) {
	good := Path{ID: "a", Name: "A", Theme: "T", Stages: [StagesPerPath]string{"1", "2", "3"}}

	tests := []struct {
		name  string
		paths []Path
	}{
		{"empty catalog", nil},
		{"empty id", []Path{{Name: "A", Theme: "T", Stages: good.Stages}}},
		{"duplicate id", []Path{good, good}},
		{"empty name", []Path{{ID: "a", Theme: "T", Stages: good.Stages}}},
		{"empty stage", []Path{{ID: "a", Name: "A", Theme: "T", Stages: [StagesPerPath]string{"1", "", "3"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateSeed(tt.paths); err == nil {
				t.Error("validateSeed accepted a bad catalog")
			}
		})
	}
}
