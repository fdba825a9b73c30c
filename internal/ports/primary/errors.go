package primary

import "errors"

// Validation and lookup errors surfaced to the user. Services wrap these
// with context; CLI adapters branch on them with errors.Is.
var (
	// ErrEmptyGuardName rejects blank guard names.
	ErrEmptyGuardName = errors.New("guard name must not be empty")

	// ErrGuardExists rejects duplicate roster names.
	ErrGuardExists = errors.New("guard already on the roster")

	// ErrGuardNotFound reports a roster lookup miss.
	ErrGuardNotFound = errors.New("guard not on the roster")

	// ErrUnknownTarget rejects assignment to a post or patrol that is not
	// on the board.
	ErrUnknownTarget = errors.New("unknown post or patrol")

	// ErrTaskNotFound reports a ledger lookup miss.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskNotExecuting rejects a manual time correction on a task whose
	// execution mark is not set.
	ErrTaskNotExecuting = errors.New("task has no execution time to correct")

	// ErrBadImportPayload rejects import payloads missing one of the five
	// required collections.
	ErrBadImportPayload = errors.New("import payload is not a complete shift record")

	// ErrBadThreshold rejects non-positive alert thresholds.
	ErrBadThreshold = errors.New("threshold must be a positive number of minutes")

	// ErrBadScore rejects negative score values.
	ErrBadScore = errors.New("score must not be negative")
)
