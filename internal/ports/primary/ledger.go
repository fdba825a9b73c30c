package primary

import (
	"context"
	"time"

	"github.com/example/guardpost/internal/models"
)

// LedgerService manages the four task collections and their derived views.
type LedgerService interface {
	// Assign creates a pending task for a guard. The guard is referenced
	// by name and is not required to exist in the roster; post and patrol
	// targets must be known board targets.
	Assign(ctx context.Context, req AssignRequest) (models.Activity, error)

	// Remove deletes a task by kind and id. Removing an absent id is a
	// no-op.
	Remove(ctx context.Context, kind models.TaskKind, id string) error

	// ToggleActual flips a task's execution mark: pending tasks get the
	// current time, executing tasks revert to pending.
	ToggleActual(ctx context.Context, kind models.TaskKind, id string) (models.Activity, error)

	// SetActualTime corrects the execution time of a task that is already
	// executing. Pending tasks are rejected with ErrTaskNotExecuting.
	SetActualTime(ctx context.Context, kind models.TaskKind, id string, at time.Time) (models.Activity, error)

	// Board returns the posts/patrols board with latest markers.
	Board(ctx context.Context) (*BoardView, error)

	// History returns every ledger entry, most recently planned first.
	History(ctx context.Context) ([]models.Activity, error)

	// LatestActivity resolves the guard's most recent executed entry, with
	// the kind threshold attached. Returns nil when the guard has none.
	LatestActivity(ctx context.Context, guard string) (*LatestView, error)

	// GuardScores computes the productivity score of every roster guard.
	GuardScores(ctx context.Context) ([]GuardScore, error)
}

// AssignRequest creates one task. Target is required for post and patrol
// kinds and ignored for meals and breaks.
type AssignRequest struct {
	Kind   models.TaskKind
	Guard  string
	Target string
}

// BoardEntry is one task as shown on the board.
type BoardEntry struct {
	models.Activity
	// Latest marks the guard's single live entry; superseded executed
	// entries render dimmed.
	Latest bool
}

// TargetRow groups the board entries of one post or patrol.
type TargetRow struct {
	Target  string
	Entries []BoardEntry
}

// BoardView is the full rendered state of the shift board.
type BoardView struct {
	Posts   []TargetRow
	Patrols []TargetRow
	Meals   []BoardEntry
	Breaks  []BoardEntry
}

// LatestView is a resolved latest activity plus its alert threshold.
type LatestView struct {
	models.Activity
	ThresholdMinutes int
}

// GuardScore pairs a guard with their accumulated score.
type GuardScore struct {
	Guard models.Guard
	Score float64
}
