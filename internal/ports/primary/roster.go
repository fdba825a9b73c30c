// Package primary defines the primary ports (driving interfaces) for the
// application. CLI adapters call these; internal/app implements them.
package primary

import (
	"context"

	"github.com/example/guardpost/internal/models"
)

// RosterService manages the guard roster and whole-shift lifecycle.
type RosterService interface {
	// AddGuard validates and appends a guard to the roster. Names must be
	// non-empty and unique; the display color is assigned from the palette.
	AddGuard(ctx context.Context, req AddGuardRequest) (*models.Guard, error)

	// UpdateGuard changes a guard's flags and shift label. Renaming is not
	// supported: tasks reference guards by name.
	UpdateGuard(ctx context.Context, name string, req UpdateGuardRequest) (*models.Guard, error)

	// RemoveGuard deletes a guard from the roster. The guard's tasks are
	// left in place as dangling references; read paths tolerate them.
	RemoveGuard(ctx context.Context, name string) error

	// ListGuards returns the roster in insertion order.
	ListGuards(ctx context.Context) ([]models.Guard, error)

	// ResetAll clears the whole roster record: guards and all four task
	// collections. Settings are untouched.
	ResetAll(ctx context.Context) error

	// EveningReset retains only supplemental-duty guards and their tasks,
	// pruning everything else.
	EveningReset(ctx context.Context) (*EveningResetResult, error)

	// Export serializes the full roster record for manual transfer.
	Export(ctx context.Context) ([]byte, error)

	// Import replaces the roster record with a parsed payload. Payloads
	// missing any of the five collections are rejected without writing.
	Import(ctx context.Context, payload []byte) (*ImportResult, error)
}

// AddGuardRequest carries the fields for a new guard.
type AddGuardRequest struct {
	Name         string
	Certified    bool
	ShiftLabel   string
	Supplemental bool
}

// UpdateGuardRequest carries optional guard updates. Nil fields are left
// unchanged.
type UpdateGuardRequest struct {
	Certified    *bool
	ShiftLabel   *string
	Supplemental *bool
}

// EveningResetResult reports what the reset kept and pruned.
type EveningResetResult struct {
	GuardsKept   int
	GuardsPruned int
	TasksPruned  int
}

// ImportResult summarizes an accepted import payload.
type ImportResult struct {
	Guards int
	Tasks  int
}
