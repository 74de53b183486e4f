package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// activityLog implements ActivityLog over the activity_log table.
type activityLog struct {
	db *sql.DB
}

func (l *activityLog) Append(ctx context.Context, data ActivityEventData) error {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	if data.Timestamp.IsZero() {
		data.Timestamp = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO activity_log (id, kind, day, detail, timestamp) VALUES (?, ?, ?, ?, ?)`,
		data.ID, data.Kind, data.Day, data.Detail, data.Timestamp)
	if err != nil {
		return fmt.Errorf("append activity event: %w", err)
	}
	return nil
}

func (l *activityLog) Recent(ctx context.Context, limit int) ([]ActivityEventData, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, kind, day, detail, timestamp FROM activity_log
		 ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}
	defer rows.Close()

	var events []ActivityEventData
	for rows.Next() {
		var e ActivityEventData
		if err := rows.Scan(&e.ID, &e.Kind, &e.Day, &e.Detail, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity events: %w", err)
	}
	return events, nil
}
