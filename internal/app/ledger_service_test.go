package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/ports/primary"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestLedgerService_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending task with planned time", func(t *testing.T) {
		store := newMemStore()
		svc := newTestLedger(store, testNow)

		act, err := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskPost, Guard: "Dana", Target: "Lobby Desk"})
		if err != nil {
			t.Fatalf("Assign failed: %v", err)
		}
		if act.ID == "" || !act.Planned.Equal(testNow) {
			t.Errorf("activity = %+v", act)
		}
		if act.Actual != nil {
			t.Error("new task must be pending")
		}
		if store.rosterSaves != 1 {
			t.Errorf("rosterSaves = %d, want 1 (persist after each mutation)", store.rosterSaves)
		}
	})

	t.Run("guard need not exist in the roster", func(t *testing.T) {
		store := newMemStore()
		svc := newTestLedger(store, testNow)

		if _, err := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskMeal, Guard: "Nobody"}); err != nil {
			t.Fatalf("Assign failed: %v", err)
		}
	})

	t.Run("rejects empty guard name", func(t *testing.T) {
		svc := newTestLedger(newMemStore(), testNow)
		_, err := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskBreak, Guard: "  "})
		if !errors.Is(err, primary.ErrEmptyGuardName) {
			t.Fatalf("err = %v, want ErrEmptyGuardName", err)
		}
	})

	t.Run("rejects unknown post", func(t *testing.T) {
		svc := newTestLedger(newMemStore(), testNow)
		_, err := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskPost, Guard: "Dana", Target: "Roof"})
		if !errors.Is(err, primary.ErrUnknownTarget) {
			t.Fatalf("err = %v, want ErrUnknownTarget", err)
		}
	})

	t.Run("rejects unknown patrol", func(t *testing.T) {
		svc := newTestLedger(newMemStore(), testNow)
		_, err := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskPatrol, Guard: "Dana", Target: "RL-99"})
		if !errors.Is(err, primary.ErrUnknownTarget) {
			t.Fatalf("err = %v, want ErrUnknownTarget", err)
		}
	})
}

func TestLedgerService_ToggleActual(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestLedger(store, testNow)

	act, err := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskBreak, Guard: "Dana"})
	if err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	t.Run("first toggle sets actual time to now", func(t *testing.T) {
		toggled, err := svc.ToggleActual(ctx, models.TaskBreak, act.ID)
		if err != nil {
			t.Fatalf("ToggleActual failed: %v", err)
		}
		if toggled.Actual == nil || !toggled.Actual.Equal(testNow) {
			t.Errorf("Actual = %v, want %v", toggled.Actual, testNow)
		}
	})

	t.Run("second toggle returns task to pending", func(t *testing.T) {
		toggled, err := svc.ToggleActual(ctx, models.TaskBreak, act.ID)
		if err != nil {
			t.Fatalf("ToggleActual failed: %v", err)
		}
		if toggled.Actual != nil {
			t.Errorf("Actual = %v, want nil after round trip", toggled.Actual)
		}
	})

	t.Run("unknown id errors", func(t *testing.T) {
		_, err := svc.ToggleActual(ctx, models.TaskBreak, "missing")
		if !errors.Is(err, primary.ErrTaskNotFound) {
			t.Fatalf("err = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestLedgerService_SetActualTime(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestLedger(store, testNow)

	act, _ := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskPost, Guard: "Dana", Target: "Desk 15"})
	corrected := testNow.Add(-25 * time.Minute)

	t.Run("rejects pending task", func(t *testing.T) {
		_, err := svc.SetActualTime(ctx, models.TaskPost, act.ID, corrected)
		if !errors.Is(err, primary.ErrTaskNotExecuting) {
			t.Fatalf("err = %v, want ErrTaskNotExecuting", err)
		}
	})

	t.Run("corrects executing task", func(t *testing.T) {
		if _, err := svc.ToggleActual(ctx, models.TaskPost, act.ID); err != nil {
			t.Fatalf("ToggleActual failed: %v", err)
		}
		updated, err := svc.SetActualTime(ctx, models.TaskPost, act.ID, corrected)
		if err != nil {
			t.Fatalf("SetActualTime failed: %v", err)
		}
		if updated.Actual == nil || !updated.Actual.Equal(corrected) {
			t.Errorf("Actual = %v, want %v", updated.Actual, corrected)
		}
	})
}

func TestLedgerService_Remove(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestLedger(store, testNow)

	act, _ := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskPatrol, Guard: "Dana", Target: "RL-9"})

	t.Run("removes by id", func(t *testing.T) {
		if err := svc.Remove(ctx, models.TaskPatrol, act.ID); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		hist, _ := svc.History(ctx)
		if len(hist) != 0 {
			t.Errorf("history = %+v, want empty", hist)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		saves := store.rosterSaves
		if err := svc.Remove(ctx, models.TaskPatrol, "missing"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if store.rosterSaves != saves {
			t.Error("no-op remove rewrote the record")
		}
	})
}

func TestLedgerService_BoardLatestMarkers(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestLedger(store, testNow)

	post, _ := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskPost, Guard: "Dana", Target: "Lobby Desk"})
	patrol, _ := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskPatrol, Guard: "Dana", Target: "RL-9"})

	// Execute the post first, then the patrol: the patrol supersedes it.
	svc.now = func() time.Time { return testNow.Add(10 * time.Minute) }
	svc.ToggleActual(ctx, models.TaskPost, post.ID)
	svc.now = func() time.Time { return testNow.Add(20 * time.Minute) }
	svc.ToggleActual(ctx, models.TaskPatrol, patrol.ID)

	board, err := svc.Board(ctx)
	if err != nil {
		t.Fatalf("Board failed: %v", err)
	}

	var postEntry, patrolEntry *primary.BoardEntry
	for i := range board.Posts {
		for j := range board.Posts[i].Entries {
			if board.Posts[i].Entries[j].ID == post.ID {
				postEntry = &board.Posts[i].Entries[j]
			}
		}
	}
	for i := range board.Patrols {
		for j := range board.Patrols[i].Entries {
			if board.Patrols[i].Entries[j].ID == patrol.ID {
				patrolEntry = &board.Patrols[i].Entries[j]
			}
		}
	}

	if postEntry == nil || patrolEntry == nil {
		t.Fatal("board is missing entries")
	}
	if postEntry.Latest {
		t.Error("superseded post still marked latest")
	}
	if !patrolEntry.Latest {
		t.Error("latest patrol not marked")
	}
}

func TestLedgerService_LatestActivityThreshold(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestLedger(store, testNow)

	t.Run("none for inactive guard", func(t *testing.T) {
		latest, err := svc.LatestActivity(ctx, "Dana")
		if err != nil {
			t.Fatalf("LatestActivity failed: %v", err)
		}
		if latest != nil {
			t.Fatalf("latest = %+v, want nil", latest)
		}
	})

	t.Run("attaches kind threshold from settings", func(t *testing.T) {
		act, _ := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskMeal, Guard: "Dana"})
		svc.ToggleActual(ctx, models.TaskMeal, act.ID)

		latest, err := svc.LatestActivity(ctx, "Dana")
		if err != nil {
			t.Fatalf("LatestActivity failed: %v", err)
		}
		if latest == nil {
			t.Fatal("expected a latest activity")
		}
		if latest.ThresholdMinutes != 32 {
			t.Errorf("ThresholdMinutes = %d, want 32 (meal default)", latest.ThresholdMinutes)
		}
	})
}

func TestLedgerService_GuardScores(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.roster = &models.RosterData{Guards: []models.Guard{{Name: "Dana"}, {Name: "Noa"}}}
	svc := newTestLedger(store, testNow)

	p1, _ := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskPatrol, Guard: "Dana", Target: "RL-9"})
	svc.ToggleActual(ctx, models.TaskPatrol, p1.ID)
	p2, _ := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskPatrol, Guard: "Dana", Target: "Foot-7"})
	svc.ToggleActual(ctx, models.TaskPatrol, p2.ID)
	m1, _ := svc.Assign(ctx, primary.AssignRequest{Kind: models.TaskMeal, Guard: "Dana"})
	svc.ToggleActual(ctx, models.TaskMeal, m1.ID)

	scores, err := svc.GuardScores(ctx)
	if err != nil {
		t.Fatalf("GuardScores failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}
	// RL-9 named slot (2) + generic patrol (1); the meal adds nothing.
	if scores[0].Guard.Name != "Dana" || scores[0].Score != 3 {
		t.Errorf("Dana score = %v, want 3", scores[0].Score)
	}
	if scores[1].Guard.Name != "Noa" || scores[1].Score != 0 {
		t.Errorf("Noa score = %v, want 0", scores[1].Score)
	}
}
