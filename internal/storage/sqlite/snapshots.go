package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iwantdrugsxd/evea-sub002/internal/storage"
)

// SaveSnapshot upserts the serialized session snapshot. Last write
// wins; the planner treats this as best-effort durable storage.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, sessionID string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (session_id, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		sessionID, data, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the stored payload for a session, or
// storage.ErrNotFound.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM snapshots WHERE session_id = ?", sessionID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %s: %w", sessionID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return payload, nil
}
