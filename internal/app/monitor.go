package app

import (
	"context"
	"time"

	"github.com/example/guardpost/internal/core/alerting"
	"github.com/example/guardpost/internal/models"
	"github.com/example/guardpost/internal/ports/primary"
	"github.com/example/guardpost/internal/ports/secondary"
)

// DefaultMonitorInterval is the alert polling cadence.
const DefaultMonitorInterval = 30 * time.Second

// Monitor drives the alert engine on a fixed cadence, announcing newly
// crossed alerts through the notifier. Interval and Clock are exported so
// callers (and tests) can substitute them before Run.
type Monitor struct {
	store    secondary.StateStore
	settings primary.SettingsService
	notifier secondary.Notifier
	deduper  *alerting.Deduper

	Interval time.Duration
	Clock    func() time.Time
}

// NewMonitor creates a monitor with the default 30-second cadence.
func NewMonitor(store secondary.StateStore, settings primary.SettingsService, notifier secondary.Notifier) *Monitor {
	return &Monitor{
		store:    store,
		settings: settings,
		notifier: notifier,
		deduper:  alerting.NewDeduper(),
		Interval: DefaultMonitorInterval,
		Clock:    time.Now,
	}
}

// Tick runs one evaluation pass and returns the announcements made. The
// loop runs unattended, so a failed read skips the tick instead of
// propagating: missing or malformed state must never kill the monitor.
func (m *Monitor) Tick(ctx context.Context) []models.Alert {
	data, err := m.store.LoadRoster(ctx)
	if err != nil {
		return nil
	}
	settings, err := m.settings.Get(ctx)
	if err != nil {
		return nil
	}

	alerts := alerting.Evaluate(data, settings, m.Clock())
	fresh := m.deduper.Fresh(alerts)
	for _, alert := range fresh {
		m.notifier.Notify(alert)
	}
	return fresh
}

// Run ticks immediately, then on every interval until the context is
// cancelled. The ticker is the process's only scheduled resource and is
// released on return.
func (m *Monitor) Run(ctx context.Context) {
	m.Tick(ctx)

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Tick(ctx)
		}
	}
}
