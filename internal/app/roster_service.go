package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/ports/primary"
	"github.com/example/guardpost/internal/ports/secondary"
)

// RosterServiceImpl implements the RosterService interface.
type RosterServiceImpl struct {
	store secondary.StateStore
}

// NewRosterService creates a new RosterService with injected dependencies.
func NewRosterService(store secondary.StateStore) *RosterServiceImpl {
	return &RosterServiceImpl{store: store}
}

// AddGuard validates and appends a guard, assigning the next palette color.
func (s *RosterServiceImpl) AddGuard(ctx context.Context, req primary.AddGuardRequest) (*models.Guard, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, primary.ErrEmptyGuardName
	}

	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}

	if _, exists := data.FindGuard(name); exists {
		return nil, fmt.Errorf("%w: %s", primary.ErrGuardExists, name)
	}

	guard := models.Guard{
		Name:         name,
		Certified:    req.Certified,
		Color:        models.NextGuardColor(len(data.Guards)),
		ShiftLabel:   req.ShiftLabel,
		Supplemental: req.Supplemental,
	}
	data.Guards = append(data.Guards, guard)

	if err := s.store.SaveRoster(ctx, data); err != nil {
		return nil, err
	}
	return &guard, nil
}

// UpdateGuard applies partial changes to an existing guard.
func (s *RosterServiceImpl) UpdateGuard(ctx context.Context, name string, req primary.UpdateGuardRequest) (*models.Guard, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}

	guard, ok := data.FindGuard(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", primary.ErrGuardNotFound, name)
	}

	if req.Certified != nil {
		guard.Certified = *req.Certified
	}
	if req.ShiftLabel != nil {
		guard.ShiftLabel = *req.ShiftLabel
	}
	if req.Supplemental != nil {
		guard.Supplemental = *req.Supplemental
	}

	if err := s.store.SaveRoster(ctx, data); err != nil {
		return nil, err
	}
	updated := *guard
	return &updated, nil
}

// RemoveGuard deletes a guard from the roster. Their tasks stay behind as
// dangling references by design.
func (s *RosterServiceImpl) RemoveGuard(ctx context.Context, name string) error {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return err
	}

	for i, g := range data.Guards {
		if g.Name == name {
			data.Guards = append(data.Guards[:i], data.Guards[i+1:]...)
			return s.store.SaveRoster(ctx, data)
		}
	}
	return fmt.Errorf("%w: %s", primary.ErrGuardNotFound, name)
}

// ListGuards returns the roster in insertion order.
func (s *RosterServiceImpl) ListGuards(ctx context.Context) ([]models.Guard, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}
	return data.Guards, nil
}

// ResetAll clears the roster record: guards and all tasks. Settings stay.
func (s *RosterServiceImpl) ResetAll(ctx context.Context) error {
	return s.store.ClearRoster(ctx)
}

// EveningReset retains only supplemental-duty guards and their tasks. A
// pruned guard's tasks go with them, even if the guard is later re-added
// under the same name.
func (s *RosterServiceImpl) EveningReset(ctx context.Context) (*primary.EveningResetResult, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}

	kept := make(map[string]bool)
	var guards []models.Guard
	for _, g := range data.Guards {
		if g.Supplemental {
			kept[g.Name] = true
			guards = append(guards, g)
		}
	}

	result := &primary.EveningResetResult{
		GuardsKept:   len(guards),
		GuardsPruned: len(data.Guards) - len(guards),
	}

	pruned := &models.RosterData{Guards: guards}
	for _, a := range data.Assignments {
		if kept[a.Guard] {
			pruned.Assignments = append(pruned.Assignments, a)
		} else {
			result.TasksPruned++
		}
	}
	for _, p := range data.Patrols {
		if kept[p.Guard] {
			pruned.Patrols = append(pruned.Patrols, p)
		} else {
			result.TasksPruned++
		}
	}
	for _, m := range data.Meals {
		if kept[m.Guard] {
			pruned.Meals = append(pruned.Meals, m)
		} else {
			result.TasksPruned++
		}
	}
	for _, b := range data.Breaks {
		if kept[b.Guard] {
			pruned.Breaks = append(pruned.Breaks, b)
		} else {
			result.TasksPruned++
		}
	}

	if err := s.store.SaveRoster(ctx, pruned); err != nil {
		return nil, err
	}
	return result, nil
}

// Export serializes the full roster record.
func (s *RosterServiceImpl) Export(ctx context.Context) ([]byte, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return payload, nil
}

// importKeys are the five collections every import payload must carry.
var importKeys = []string{"guards", "assignments", "patrols", "meals", "breaks"}

// Import validates and replaces the roster record. A payload missing any
// collection is rejected before anything is written, so existing data is
// untouched.
func (s *RosterServiceImpl) Import(ctx context.Context, payload []byte) (*primary.ImportResult, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", primary.ErrBadImportPayload, err)
	}
	for _, key := range importKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", primary.ErrBadImportPayload, key)
		}
	}

	var data models.RosterData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", primary.ErrBadImportPayload, err)
	}

	// Legacy payloads encode supplemental duty as a shift-label substring.
	for i := range data.Guards {
		if !data.Guards[i].Supplemental && strings.Contains(data.Guards[i].ShiftLabel, models.SupplementalMarker) {
			data.Guards[i].Supplemental = true
		}
	}

	if err := s.store.SaveRoster(ctx, &data); err != nil {
		return nil, err
	}

	return &primary.ImportResult{
		Guards: len(data.Guards),
		Tasks:  len(data.Assignments) + len(data.Patrols) + len(data.Meals) + len(data.Breaks),
	}, nil
}

// Ensure RosterServiceImpl implements the interface
var _ primary.RosterService = (*RosterServiceImpl)(nil)
