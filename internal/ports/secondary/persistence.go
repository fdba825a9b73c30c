// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import (
	"context"

	"github.com/example/guardpost/internal/models"
)

// StateStore is the secondary port for shift state persistence. State
// lives in two independent records — the roster/ledger record and the
// settings record — each read fully and written fully on every mutation.
// There are no partial updates; the last full write wins.
type StateStore interface {
	// LoadRoster reads the roster record. An absent or unparseable record
	// yields an empty roster, never an error.
	LoadRoster(ctx context.Context) (*models.RosterData, error)

	// SaveRoster overwrites the roster record with the full snapshot.
	SaveRoster(ctx context.Context, data *models.RosterData) error

	// ClearRoster removes the roster record entirely.
	ClearRoster(ctx context.Context) error

	// LoadSettings reads the settings record. An absent or unparseable
	// record yields the documented defaults, never an error.
	LoadSettings(ctx context.Context) (models.ShiftSettings, error)

	// SaveSettings overwrites the settings record.
	SaveSettings(ctx context.Context, settings models.ShiftSettings) error
}

// Notifier is the secondary port for alert delivery. The alert monitor
// pushes each newly announced alert through it.
type Notifier interface {
	Notify(alert models.Alert)
}
