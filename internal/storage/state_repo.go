package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"supercharge/internal/engine"
)

// StateKey is the single key under which the whole aggregate is stored.
const StateKey = "supercharge_state"

// StateRepo persists the engine aggregate as one JSON snapshot.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load reads the stored snapshot. No row means no prior state (nil, nil).
// A blob that fails to parse, or one written by a newer schema, is purged and
// also treated as no prior state: startup must never be blocked by a corrupt
// entry.
func (r *StateRepo) Load(ctx context.Context) (*engine.State, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, StateKey)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("state load: %w", err)
	}

	var s engine.State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		if purgeErr := r.Purge(ctx); purgeErr != nil {
			return nil, fmt.Errorf("purge corrupt state: %w", purgeErr)
		}
		return nil, nil
	}
	if s.SchemaVersion > engine.SchemaVersion {
		if purgeErr := r.Purge(ctx); purgeErr != nil {
			return nil, fmt.Errorf("purge newer-schema state: %w", purgeErr)
		}
		return nil, nil
	}
	s.Normalize()
	return &s, nil
}

// Save overwrites the snapshot.
func (r *StateRepo) Save(ctx context.Context, s engine.State) error {
	s.SchemaVersion = engine.SchemaVersion
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("state marshal: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, StateKey, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}

// Purge deletes the snapshot.
func (r *StateRepo) Purge(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, StateKey); err != nil {
		return fmt.Errorf("state purge: %w", err)
	}
	return nil
}
