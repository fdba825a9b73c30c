package app

import (
	"context"
	"time"

	"github.com/example/guardpost/internal/core/alerting"
	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/ports/primary"
	"github.com/example/guardpost/internal/ports/secondary"
)

// AlertServiceImpl implements the AlertService interface.
type AlertServiceImpl struct {
	store    secondary.StateStore
	settings primary.SettingsService
	now      func() time.Time
}

// NewAlertService creates a new AlertService with injected dependencies.
func NewAlertService(store secondary.StateStore, settings primary.SettingsService) *AlertServiceImpl {
	return &AlertServiceImpl{
		store:    store,
		settings: settings,
		now:      time.Now,
	}
}

// CurrentAlerts recomputes the live alert list. Ledger and settings are
// both re-read so the result always reflects the latest saved state.
func (s *AlertServiceImpl) CurrentAlerts(ctx context.Context) ([]models.Alert, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return alerting.Evaluate(data, settings, s.now()), nil
}

// Ensure AlertServiceImpl implements the interface
var _ primary.AlertService = (*AlertServiceImpl)(nil)
