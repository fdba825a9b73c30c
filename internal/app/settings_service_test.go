package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/guardpost/internal/ports/primary"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies threshold and score edits", func(t *testing.T) {
		store := newMemStore()
		svc := NewSettingsService(store)

		updated, err := svc.Update(ctx, primary.UpdateSettingsRequest{
			BreakThresholdMinutes: intp(20),
			NamedSlots:            map[string]float64{"RL-9": 4},
			DefaultPatrol:         floatp(2),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.BreakThresholdMinutes != 20 {
			t.Errorf("BreakThresholdMinutes = %d, want 20", updated.BreakThresholdMinutes)
		}
		if updated.AlertThresholdMinutes != 60 {
			t.Errorf("AlertThresholdMinutes = %d, want untouched default 60", updated.AlertThresholdMinutes)
		}
		if updated.Scores.NamedSlots["RL-9"] != 4 || updated.Scores.DefaultPatrol != 2 {
			t.Errorf("scores = %+v", updated.Scores)
		}

		// The next Get reflects the saved record: no cache.
		got, err := svc.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.BreakThresholdMinutes != 20 {
			t.Errorf("Get BreakThresholdMinutes = %d, want 20", got.BreakThresholdMinutes)
		}
	})

	t.Run("rejects non-positive threshold without writing", func(t *testing.T) {
		store := newMemStore()
		svc := NewSettingsService(store)

		_, err := svc.Update(ctx, primary.UpdateSettingsRequest{MealThresholdMinutes: intp(0)})
		if !errors.Is(err, primary.ErrBadThreshold) {
			t.Fatalf("err = %v, want ErrBadThreshold", err)
		}
		if store.settings != nil {
			t.Error("rejected update wrote the record")
		}
	})

	t.Run("rejects negative score", func(t *testing.T) {
		svc := NewSettingsService(newMemStore())
		_, err := svc.Update(ctx, primary.UpdateSettingsRequest{Posts: map[string]float64{"Desk 15": -1}})
		if !errors.Is(err, primary.ErrBadScore) {
			t.Fatalf("err = %v, want ErrBadScore", err)
		}
	})
}
