package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/ports/primary"
)

func TestRosterService_AddGuard(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewRosterService(store)

	t.Run("adds guard with palette color", func(t *testing.T) {
		guard, err := svc.AddGuard(ctx, primary.AddGuardRequest{Name: "Dana", Certified: true, ShiftLabel: "morning 7-15"})
		if err != nil {
			t.Fatalf("AddGuard failed: %v", err)
		}
		if guard.Color != models.GuardColors[0] {
			t.Errorf("Color = %q, want %q", guard.Color, models.GuardColors[0])
		}
	})

	t.Run("second guard gets next color", func(t *testing.T) {
		guard, err := svc.AddGuard(ctx, primary.AddGuardRequest{Name: "Noa"})
		if err != nil {
			t.Fatalf("AddGuard failed: %v", err)
		}
		if guard.Color != models.GuardColors[1] {
			t.Errorf("Color = %q, want %q", guard.Color, models.GuardColors[1])
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := svc.AddGuard(ctx, primary.AddGuardRequest{Name: " "})
		if !errors.Is(err, primary.ErrEmptyGuardName) {
			t.Fatalf("err = %v, want ErrEmptyGuardName", err)
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := svc.AddGuard(ctx, primary.AddGuardRequest{Name: "Dana"})
		if !errors.Is(err, primary.ErrGuardExists) {
			t.Fatalf("err = %v, want ErrGuardExists", err)
		}
	})
}

func TestRosterService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewRosterService(store)

	svc.AddGuard(ctx, primary.AddGuardRequest{Name: "Dana"})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		supplemental := true
		guard, err := svc.UpdateGuard(ctx, "Dana", primary.UpdateGuardRequest{Supplemental: &supplemental})
		if err != nil {
			t.Fatalf("UpdateGuard failed: %v", err)
		}
		if !guard.Supplemental {
			t.Error("Supplemental not applied")
		}
		if guard.Color != models.GuardColors[0] {
			t.Errorf("Color changed to %q", guard.Color)
		}
	})

	t.Run("update of unknown guard errors", func(t *testing.T) {
		_, err := svc.UpdateGuard(ctx, "missing", primary.UpdateGuardRequest{})
		if !errors.Is(err, primary.ErrGuardNotFound) {
			t.Fatalf("err = %v, want ErrGuardNotFound", err)
		}
	})

	t.Run("remove leaves tasks dangling", func(t *testing.T) {
		ledger := newTestLedger(store, testNow)
		act, _ := ledger.Assign(ctx, primary.AssignRequest{Kind: models.TaskPost, Guard: "Dana", Target: "Event 1"})

		if err := svc.RemoveGuard(ctx, "Dana"); err != nil {
			t.Fatalf("RemoveGuard failed: %v", err)
		}

		// The dangling task must not break reads.
		if _, err := ledger.ToggleActual(ctx, models.TaskPost, act.ID); err != nil {
			t.Fatalf("ToggleActual on dangling task failed: %v", err)
		}
		board, err := ledger.Board(ctx)
		if err != nil {
			t.Fatalf("Board failed: %v", err)
		}
		found := false
		for _, row := range board.Posts {
			for _, e := range row.Entries {
				if e.ID == act.ID {
					found = true
				}
			}
		}
		if !found {
			t.Error("dangling task missing from board")
		}
	})
}

func TestRosterService_EveningReset(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewRosterService(store)
	ledger := newTestLedger(store, testNow)

	svc.AddGuard(ctx, primary.AddGuardRequest{Name: "A", Supplemental: true, ShiftLabel: "support 7-19"})
	svc.AddGuard(ctx, primary.AddGuardRequest{Name: "B", ShiftLabel: "morning 7-15"})
	ledger.Assign(ctx, primary.AssignRequest{Kind: models.TaskPost, Guard: "A", Target: "Lobby Desk"})
	ledger.Assign(ctx, primary.AssignRequest{Kind: models.TaskPost, Guard: "B", Target: "Desk 15"})
	ledger.Assign(ctx, primary.AssignRequest{Kind: models.TaskBreak, Guard: "B"})

	result, err := svc.EveningReset(ctx)
	if err != nil {
		t.Fatalf("EveningReset failed: %v", err)
	}
	if result.GuardsKept != 1 || result.GuardsPruned != 1 || result.TasksPruned != 2 {
		t.Errorf("result = %+v, want kept 1 / pruned 1 / tasks 2", result)
	}

	guards, _ := svc.ListGuards(ctx)
	if len(guards) != 1 || guards[0].Name != "A" {
		t.Fatalf("guards = %+v, want only A", guards)
	}

	// B's tasks are gone for good, even if B comes back under the same name.
	svc.AddGuard(ctx, primary.AddGuardRequest{Name: "B"})
	hist, _ := ledger.History(ctx)
	for _, a := range hist {
		if a.Guard == "B" {
			t.Errorf("B's task %s survived the reset", a.ID)
		}
	}
}

func TestRosterService_ExportImport(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewRosterService(store)
	ledger := newTestLedger(store, testNow)

	svc.AddGuard(ctx, primary.AddGuardRequest{Name: "Dana", Certified: true})
	ledger.Assign(ctx, primary.AssignRequest{Kind: models.TaskPatrol, Guard: "Dana", Target: "RL-9"})

	t.Run("export/import roundtrip", func(t *testing.T) {
		payload, err := svc.Export(ctx)
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		fresh := newMemStore()
		freshSvc := NewRosterService(fresh)
		result, err := freshSvc.Import(ctx, payload)
		if err != nil {
			t.Fatalf("Import failed: %v", err)
		}
		if result.Guards != 1 || result.Tasks != 1 {
			t.Errorf("result = %+v, want 1 guard / 1 task", result)
		}
	})

	t.Run("rejects payload missing a collection", func(t *testing.T) {
		var partial map[string]json.RawMessage
		payload, _ := svc.Export(ctx)
		json.Unmarshal(payload, &partial)
		delete(partial, "breaks")
		broken, _ := json.Marshal(partial)

		before, _ := store.LoadRoster(ctx)
		_, err := svc.Import(ctx, broken)
		if !errors.Is(err, primary.ErrBadImportPayload) {
			t.Fatalf("err = %v, want ErrBadImportPayload", err)
		}

		// Existing data untouched.
		after, _ := store.LoadRoster(ctx)
		if len(after.Guards) != len(before.Guards) || len(after.Patrols) != len(before.Patrols) {
			t.Error("rejected import modified stored data")
		}
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		_, err := svc.Import(ctx, []byte("not json"))
		if !errors.Is(err, primary.ErrBadImportPayload) {
			t.Fatalf("err = %v, want ErrBadImportPayload", err)
		}
	})

	t.Run("legacy supplemental marker becomes the explicit flag", func(t *testing.T) {
		legacy := []byte(`{
			"guards": [{"name": "Gil", "certified": true, "shiftType": "תמך 7-19"}],
			"assignments": [], "patrols": [], "meals": [], "breaks": []
		}`)
		fresh := newMemStore()
		freshSvc := NewRosterService(fresh)
		if _, err := freshSvc.Import(ctx, legacy); err != nil {
			t.Fatalf("Import failed: %v", err)
		}
		guards, _ := freshSvc.ListGuards(ctx)
		if len(guards) != 1 || !guards[0].Supplemental {
			t.Errorf("guards = %+v, want Gil supplemental", guards)
		}
		if guards[0].ShiftLabel != "תמך 7-19" {
			t.Error("free-text shift label must be preserved for display")
		}
	})
}

func TestRosterService_ResetAll(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewRosterService(store)

	svc.AddGuard(ctx, primary.AddGuardRequest{Name: "Dana"})
	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("ResetAll failed: %v", err)
	}

	guards, err := svc.ListGuards(ctx)
	if err != nil {
		t.Fatalf("ListGuards failed: %v", err)
	}
	if len(guards) != 0 {
		t.Errorf("guards = %+v, want empty after reset", guards)
	}

	// Settings survive a shift reset.
	settings, err := store.LoadSettings(ctx)
	if err != nil || settings.AlertThresholdMinutes != 60 {
		t.Errorf("settings after reset = %+v, %v", settings, err)
	}
}
