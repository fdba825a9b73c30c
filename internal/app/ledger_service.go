// Package app implements the primary ports: service orchestration over the
// core engines and the state store.
package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/guardpost/internal/core/activity"
	"github.com/example/guardpost/internal/core/scoring"
	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/ports/primary"
	"github.com/example/guardpost/internal/ports/secondary"
)

// LedgerServiceImpl implements the LedgerService interface.
type LedgerServiceImpl struct {
	store    secondary.StateStore
	settings primary.SettingsService

	now   func() time.Time
	newID func() string
}

// NewLedgerService creates a new LedgerService with injected dependencies.
func NewLedgerService(store secondary.StateStore, settings primary.SettingsService) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		store:    store,
		settings: settings,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Assign creates a pending task and persists the full ledger snapshot.
// Guards are referenced by name only; a guard missing from the roster is
// allowed and must not break later reads.
func (s *LedgerServiceImpl) Assign(ctx context.Context, req primary.AssignRequest) (models.Activity, error) {
	guard := strings.TrimSpace(req.Guard)
	if guard == "" {
		return models.Activity{}, primary.ErrEmptyGuardName
	}

	switch req.Kind {
	case models.TaskPost:
		if !models.KnownPost(req.Target) {
			return models.Activity{}, fmt.Errorf("%w: %q", primary.ErrUnknownTarget, req.Target)
		}
	case models.TaskPatrol:
		if !models.KnownPatrol(req.Target) {
			return models.Activity{}, fmt.Errorf("%w: %q", primary.ErrUnknownTarget, req.Target)
		}
	case models.TaskMeal, models.TaskBreak:
		// Fixed-label kinds take no target.
	default:
		return models.Activity{}, fmt.Errorf("unknown task kind %q", req.Kind)
	}

	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return models.Activity{}, err
	}

	id := s.newID()
	planned := s.now()

	switch req.Kind {
	case models.TaskPost:
		data.Assignments = append(data.Assignments, models.Assignment{ID: id, Guard: guard, Post: req.Target, Time: planned})
	case models.TaskPatrol:
		data.Patrols = append(data.Patrols, models.PatrolAssignment{ID: id, Guard: guard, Patrol: req.Target, Time: planned})
	case models.TaskMeal:
		data.Meals = append(data.Meals, models.MealAssignment{ID: id, Guard: guard, Time: planned})
	case models.TaskBreak:
		data.Breaks = append(data.Breaks, models.BreakAssignment{ID: id, Guard: guard, Time: planned})
	}

	if err := s.store.SaveRoster(ctx, data); err != nil {
		return models.Activity{}, err
	}

	act, _ := activityByID(data, req.Kind, id)
	return act, nil
}

// Remove deletes a task by id. Removing an absent id is a no-op and does
// not rewrite the record.
func (s *LedgerServiceImpl) Remove(ctx context.Context, kind models.TaskKind, id string) error {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return err
	}

	removed := false
	switch kind {
	case models.TaskPost:
		for i, a := range data.Assignments {
			if a.ID == id {
				data.Assignments = append(data.Assignments[:i], data.Assignments[i+1:]...)
				removed = true
				break
			}
		}
	case models.TaskPatrol:
		for i, p := range data.Patrols {
			if p.ID == id {
				data.Patrols = append(data.Patrols[:i], data.Patrols[i+1:]...)
				removed = true
				break
			}
		}
	case models.TaskMeal:
		for i, m := range data.Meals {
			if m.ID == id {
				data.Meals = append(data.Meals[:i], data.Meals[i+1:]...)
				removed = true
				break
			}
		}
	case models.TaskBreak:
		for i, b := range data.Breaks {
			if b.ID == id {
				data.Breaks = append(data.Breaks[:i], data.Breaks[i+1:]...)
				removed = true
				break
			}
		}
	}

	if !removed {
		return nil
	}
	return s.store.SaveRoster(ctx, data)
}

// ToggleActual flips the execution mark: a pending task starts now, an
// executing task reverts to pending. Re-invoking restores the original
// state.
func (s *LedgerServiceImpl) ToggleActual(ctx context.Context, kind models.TaskKind, id string) (models.Activity, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return models.Activity{}, err
	}

	field, ok := actualField(data, kind, id)
	if !ok {
		return models.Activity{}, fmt.Errorf("%w: %s %s", primary.ErrTaskNotFound, kind, id)
	}

	if *field == nil {
		now := s.now()
		*field = &now
	} else {
		*field = nil
	}

	if err := s.store.SaveRoster(ctx, data); err != nil {
		return models.Activity{}, err
	}

	act, _ := activityByID(data, kind, id)
	return act, nil
}

// SetActualTime corrects the execution time of an already-executing task.
// Pending tasks are rejected: there is nothing to correct.
func (s *LedgerServiceImpl) SetActualTime(ctx context.Context, kind models.TaskKind, id string, at time.Time) (models.Activity, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return models.Activity{}, err
	}

	field, ok := actualField(data, kind, id)
	if !ok {
		return models.Activity{}, fmt.Errorf("%w: %s %s", primary.ErrTaskNotFound, kind, id)
	}
	if *field == nil {
		return models.Activity{}, fmt.Errorf("%w: %s %s", primary.ErrTaskNotExecuting, kind, id)
	}

	*field = &at

	if err := s.store.SaveRoster(ctx, data); err != nil {
		return models.Activity{}, err
	}

	act, _ := activityByID(data, kind, id)
	return act, nil
}

// Board builds the posts/patrols board with latest markers.
func (s *LedgerServiceImpl) Board(ctx context.Context) (*primary.BoardView, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}

	view := &primary.BoardView{}
	acts := data.Activities()

	entry := func(a models.Activity) primary.BoardEntry {
		return primary.BoardEntry{
			Activity: a,
			Latest:   activity.IsLatest(data, a.Guard, a.Kind, a.ID),
		}
	}

	for _, post := range models.DefaultPosts {
		row := primary.TargetRow{Target: post}
		for _, a := range acts {
			if a.Kind == models.TaskPost && a.Target == post {
				row.Entries = append(row.Entries, entry(a))
			}
		}
		view.Posts = append(view.Posts, row)
	}

	for _, patrol := range models.DefaultPatrols {
		row := primary.TargetRow{Target: patrol}
		for _, a := range acts {
			if a.Kind == models.TaskPatrol && a.Target == patrol {
				row.Entries = append(row.Entries, entry(a))
			}
		}
		view.Patrols = append(view.Patrols, row)
	}

	for _, a := range acts {
		switch a.Kind {
		case models.TaskMeal:
			view.Meals = append(view.Meals, entry(a))
		case models.TaskBreak:
			view.Breaks = append(view.Breaks, entry(a))
		}
	}

	return view, nil
}

// History lists every ledger entry, most recently planned first.
func (s *LedgerServiceImpl) History(ctx context.Context) ([]models.Activity, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}

	acts := data.Activities()
	sort.SliceStable(acts, func(i, j int) bool {
		return acts[i].Planned.After(acts[j].Planned)
	})
	return acts, nil
}

// LatestActivity resolves the guard's latest executed entry and attaches
// the alert threshold for its kind. Settings are re-read from the store so
// saved changes apply immediately.
func (s *LedgerServiceImpl) LatestActivity(ctx context.Context, guard string) (*primary.LatestView, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}

	latest, ok := activity.Latest(data, guard)
	if !ok {
		return nil, nil
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &primary.LatestView{
		Activity:         latest,
		ThresholdMinutes: settings.ThresholdFor(latest.Kind),
	}, nil
}

// GuardScores computes every roster guard's accumulated score.
func (s *LedgerServiceImpl) GuardScores(ctx context.Context) ([]primary.GuardScore, error) {
	data, err := s.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	table := scoring.NewTable(settings.Scores, models.DefaultPatrols)
	scores := make([]primary.GuardScore, 0, len(data.Guards))
	for _, guard := range data.Guards {
		scores = append(scores, primary.GuardScore{
			Guard: guard,
			Score: scoring.GuardScore(data, table, guard.Name),
		})
	}
	return scores, nil
}

// actualField returns a pointer to the task's ActualTime field so the
// caller can set or clear it in place.
func actualField(data *models.RosterData, kind models.TaskKind, id string) (**time.Time, bool) {
	switch kind {
	case models.TaskPost:
		for i := range data.Assignments {
			if data.Assignments[i].ID == id {
				return &data.Assignments[i].ActualTime, true
			}
		}
	case models.TaskPatrol:
		for i := range data.Patrols {
			if data.Patrols[i].ID == id {
				return &data.Patrols[i].ActualTime, true
			}
		}
	case models.TaskMeal:
		for i := range data.Meals {
			if data.Meals[i].ID == id {
				return &data.Meals[i].ActualTime, true
			}
		}
	case models.TaskBreak:
		for i := range data.Breaks {
			if data.Breaks[i].ID == id {
				return &data.Breaks[i].ActualTime, true
			}
		}
	}
	return nil, false
}

// activityByID finds the generic view of one entry.
func activityByID(data *models.RosterData, kind models.TaskKind, id string) (models.Activity, bool) {
	for _, a := range data.Activities() {
		if a.Kind == kind && a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}

// Ensure LedgerServiceImpl implements the interface
var _ primary.LedgerService = (*LedgerServiceImpl)(nil)
