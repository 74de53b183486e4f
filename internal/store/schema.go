package store

// JSON Schemas for the persisted state blobs. Stored blobs are validated
// against these before unmarshalling; anything that fails is discarded and
// the owning engine starts from its default state.

const (
	journeySchemaName   = "journey-state"
	alignmentSchemaName = "alignment-state"
)

var journeySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"mode": map[string]any{
			"type": "string",
			"enum": []any{"selecting", "active", "complete"},
		},
		"selected_path_id": map[string]any{
			"type": "string",
		},
		"stages_completed": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 3,
		},
		"mastered_path_ids": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"updated_at": map[string]any{
			"type": "string",
		},
	},
	"required":             []any{"mode", "stages_completed", "mastered_path_ids"},
	"additionalProperties": false,
}

var dayRecordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"date": map[string]any{
			"type":    "string",
			"pattern": `^\d{4}-\d{2}-\d{2}$`,
		},
		"meditation_count":  map[string]any{"type": "integer", "minimum": 0},
		"affirmation_count": map[string]any{"type": "integer", "minimum": 0},
		"journal_count":     map[string]any{"type": "integer", "minimum": 0},
		"breath_count":      map[string]any{"type": "integer", "minimum": 0},
		"latest_mood": map[string]any{
			"type": "string",
			"enum": []any{"radiant", "bright", "steady", "low", "heavy"},
		},
		"exercises_done": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required":             []any{"date"},
	"additionalProperties": false,
}

var streakSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"current":       map[string]any{"type": "integer", "minimum": 0},
		"longest":       map[string]any{"type": "integer", "minimum": 0},
		"last_credited": map[string]any{"type": "string"},
	},
	"required":             []any{"current", "longest"},
	"additionalProperties": false,
}

var alignmentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"days": map[string]any{
			"type":                 "object",
			"additionalProperties": dayRecordSchema,
		},
		"streaks": map[string]any{
			"type":                 "object",
			"additionalProperties": streakSchema,
		},
	},
	"required":             []any{"days", "streaks"},
	"additionalProperties": false,
}
