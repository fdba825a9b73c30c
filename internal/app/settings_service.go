package app

import (
	"context"
	"fmt"

	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/ports/primary"
	"github.com/example/guardpost/internal/ports/secondary"
)

// SettingsServiceImpl implements the SettingsService interface. It holds
// no cache: every Get goes to the store so saved changes apply on the next
// evaluation.
type SettingsServiceImpl struct {
	store secondary.StateStore
}

// NewSettingsService creates a new SettingsService with injected dependencies.
func NewSettingsService(store secondary.StateStore) *SettingsServiceImpl {
	return &SettingsServiceImpl{store: store}
}

// Get returns the current settings, defaulted when the record is absent.
func (s *SettingsServiceImpl) Get(ctx context.Context) (models.ShiftSettings, error) {
	return s.store.LoadSettings(ctx)
}

// Update validates the requested changes, applies them to the stored
// settings and persists the full record. Validation happens before any
// field is touched, so a rejected update leaves the record as it was.
func (s *SettingsServiceImpl) Update(ctx context.Context, req primary.UpdateSettingsRequest) (models.ShiftSettings, error) {
	for _, threshold := range []*int{req.AlertThresholdMinutes, req.BreakThresholdMinutes, req.MealThresholdMinutes} {
		if threshold != nil && *threshold <= 0 {
			return models.ShiftSettings{}, fmt.Errorf("%w: %d", primary.ErrBadThreshold, *threshold)
		}
	}
	for _, edits := range []map[string]float64{req.NamedSlots, req.Families, req.Posts} {
		for name, points := range edits {
			if points < 0 {
				return models.ShiftSettings{}, fmt.Errorf("%w: %s = %v", primary.ErrBadScore, name, points)
			}
		}
	}
	if req.DefaultPatrol != nil && *req.DefaultPatrol < 0 {
		return models.ShiftSettings{}, fmt.Errorf("%w: defaultPatrol = %v", primary.ErrBadScore, *req.DefaultPatrol)
	}

	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		return models.ShiftSettings{}, err
	}

	if req.AlertThresholdMinutes != nil {
		settings.AlertThresholdMinutes = *req.AlertThresholdMinutes
	}
	if req.BreakThresholdMinutes != nil {
		settings.BreakThresholdMinutes = *req.BreakThresholdMinutes
	}
	if req.MealThresholdMinutes != nil {
		settings.MealThresholdMinutes = *req.MealThresholdMinutes
	}
	if req.DefaultPatrol != nil {
		settings.Scores.DefaultPatrol = *req.DefaultPatrol
	}

	if settings.Scores.NamedSlots == nil {
		settings.Scores.NamedSlots = make(map[string]float64)
	}
	if settings.Scores.Families == nil {
		settings.Scores.Families = make(map[string]float64)
	}
	if settings.Scores.Posts == nil {
		settings.Scores.Posts = make(map[string]float64)
	}
	for name, points := range req.NamedSlots {
		settings.Scores.NamedSlots[name] = points
	}
	for name, points := range req.Families {
		settings.Scores.Families[name] = points
	}
	for name, points := range req.Posts {
		settings.Scores.Posts[name] = points
	}

	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return models.ShiftSettings{}, err
	}
	return settings, nil
}

// Ensure SettingsServiceImpl implements the interface
var _ primary.SettingsService = (*SettingsServiceImpl)(nil)
