// Package sqlite contains the SQLite implementation of the StateStore
// port. Each record is stored as a single JSON value in the records table
// and rewritten whole on every save.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/guardpost/internal/models"
)

// Record keys. These names are the storage protocol and must stay stable
// across versions.
const (
	rosterKey   = "guardsData"
	settingsKey = "shiftSettings"
)

// StateStore implements secondary.StateStore with SQLite.
type StateStore struct {
	db *sql.DB
}

// NewStateStore creates a new SQLite state store.
func NewStateStore(db *sql.DB) *StateStore {
	return &StateStore{db: db}
}

// LoadRoster reads the roster record. A missing record or a value that no
// longer parses is treated as "no data yet" and yields an empty roster.
func (s *StateStore) LoadRoster(ctx context.Context) (*models.RosterData, error) {
	value, ok, err := s.get(ctx, rosterKey)
	if err != nil {
		return nil, err
	}
	data := &models.RosterData{}
	if !ok {
		return data, nil
	}
	if err := json.Unmarshal(value, data); err != nil {
		return &models.RosterData{}, nil
	}
	return data, nil
}

// SaveRoster overwrites the roster record with the full snapshot.
func (s *StateStore) SaveRoster(ctx context.Context, data *models.RosterData) error {
	value, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	return s.put(ctx, rosterKey, value)
}

// ClearRoster removes the roster record.
func (s *StateStore) ClearRoster(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE key = ?", rosterKey)
	if err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}
	return nil
}

// LoadSettings reads the settings record, falling back to the documented
// defaults when the record is absent or unparseable.
func (s *StateStore) LoadSettings(ctx context.Context) (models.ShiftSettings, error) {
	value, ok, err := s.get(ctx, settingsKey)
	if err != nil {
		return models.ShiftSettings{}, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	var settings models.ShiftSettings
	if err := json.Unmarshal(value, &settings); err != nil {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

// SaveSettings overwrites the settings record.
func (s *StateStore) SaveSettings(ctx context.Context, settings models.ShiftSettings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return s.put(ctx, settingsKey, value)
}

func (s *StateStore) get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *StateStore) put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO records (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}
