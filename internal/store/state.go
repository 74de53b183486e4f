package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// stateRepo implements StateRepo over the app_state table.
// Each engine owns exactly one row, keyed by a fixed versioned key; every
// save replaces the whole blob.
type stateRepo struct {
	db  *sql.DB
	log *slog.Logger
}

func (r *stateRepo) SaveJourney(ctx context.Context, data *JourneyStateData) error {
	return r.save(ctx, JourneyStateKey, data)
}

func (r *stateRepo) LoadJourney(ctx context.Context) (*JourneyStateData, error) {
	raw, err := r.load(ctx, JourneyStateKey, journeySchemaName, journeySchema)
	if err != nil || raw == nil {
		return nil, err
	}
	var data JourneyStateData
	if err := json.Unmarshal(raw, &data); err != nil {
		// Schema passed but decode failed; treat as corruption.
		r.log.Warn("discarding stored state", "key", JourneyStateKey, "err", err)
		return nil, nil
	}
	return &data, nil
}

func (r *stateRepo) SaveAlignment(ctx context.Context, data *AlignmentStateData) error {
	return r.save(ctx, AlignmentStateKey, data)
}

func (r *stateRepo) LoadAlignment(ctx context.Context) (*AlignmentStateData, error) {
	raw, err := r.load(ctx, AlignmentStateKey, alignmentSchemaName, alignmentSchema)
	if err != nil || raw == nil {
		return nil, err
	}
	var data AlignmentStateData
	if err := json.Unmarshal(raw, &data); err != nil {
		r.log.Warn("discarding stored state", "key", AlignmentStateKey, "err", err)
		return nil, nil
	}
	return &data, nil
}

// save upserts the full blob for a key.
func (r *stateRepo) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal state %s: %w", key, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO app_state (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save state %s: %w", key, err)
	}
	return nil
}

// load reads and schema-validates a blob. A missing row or a blob that fails
// validation yields (nil, nil): stored state is never trusted enough to crash
// over, it is only worth a diagnostic.
func (r *stateRepo) load(ctx context.Context, key, schemaName string, schemaDef map[string]any) (json.RawMessage, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM app_state WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state %s: %w", key, err)
	}

	if err := validateState(schemaName, schemaDef, []byte(raw)); err != nil {
		r.log.Warn("discarding stored state", "key", key, "err", err)
		return nil, nil
	}
	return json.RawMessage(raw), nil
}
