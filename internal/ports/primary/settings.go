package primary

import (
	"context"

	"github.com/example/guardpost/internal/models"
)

// SettingsService reads and updates the shift-wide settings record. It is
// also the settings provider injected into the scoring and alerting paths,
// which re-read it on every evaluation.
type SettingsService interface {
	// Get returns the current settings, defaulted when the record is
	// absent.
	Get(ctx context.Context) (models.ShiftSettings, error)

	// Update validates and applies the given changes, persisting the full
	// record. Nil fields are left unchanged.
	Update(ctx context.Context, req UpdateSettingsRequest) (models.ShiftSettings, error)
}

// UpdateSettingsRequest carries optional settings changes.
type UpdateSettingsRequest struct {
	AlertThresholdMinutes *int
	BreakThresholdMinutes *int
	MealThresholdMinutes  *int

	// Score table edits, applied key by key.
	NamedSlots    map[string]float64
	Families      map[string]float64
	Posts         map[string]float64
	DefaultPatrol *float64
}

// AlertService exposes the live alert list.
type AlertService interface {
	// CurrentAlerts recomputes the alert list from the current ledger and
	// settings. The result is never deduplicated.
	CurrentAlerts(ctx context.Context) ([]models.Alert, error)
}
