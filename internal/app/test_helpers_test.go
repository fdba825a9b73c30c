package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/guardpost/internal/models"
)

// memStore implements secondary.StateStore in memory for testing. It keeps
// deep-ish copies via the same whole-record overwrite semantics as the
// SQLite adapter.
type memStore struct {
	roster      *models.RosterData
	settings    *models.ShiftSettings
	rosterSaves int
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) LoadRoster(ctx context.Context) (*models.RosterData, error) {
	if m.roster == nil {
		return &models.RosterData{}, nil
	}
	copied := *m.roster
	copied.Guards = append([]models.Guard(nil), m.roster.Guards...)
	copied.Assignments = append([]models.Assignment(nil), m.roster.Assignments...)
	copied.Patrols = append([]models.PatrolAssignment(nil), m.roster.Patrols...)
	copied.Meals = append([]models.MealAssignment(nil), m.roster.Meals...)
	copied.Breaks = append([]models.BreakAssignment(nil), m.roster.Breaks...)
	return &copied, nil
}

func (m *memStore) SaveRoster(ctx context.Context, data *models.RosterData) error {
	m.roster = data
	m.rosterSaves++
	return nil
}

func (m *memStore) ClearRoster(ctx context.Context) error {
	m.roster = nil
	return nil
}

func (m *memStore) LoadSettings(ctx context.Context) (models.ShiftSettings, error) {
	if m.settings == nil {
		return models.DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *memStore) SaveSettings(ctx context.Context, settings models.ShiftSettings) error {
	m.settings = &settings
	return nil
}

// newTestLedger wires a ledger service over a memStore with a fixed clock
// and sequential task IDs.
func newTestLedger(store *memStore, now time.Time) *LedgerServiceImpl {
	svc := NewLedgerService(store, NewSettingsService(store))
	svc.now = func() time.Time { return now }
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("task-%03d", seq)
	}
	return svc
}
