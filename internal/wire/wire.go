// Package wire provides dependency injection for the guardpost
// application. It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/guardpost/internal/adapters/cli"
	"github.com/example/guardpost/internal/adapters/sqlite"
	"github.com/example/guardpost/internal/app"
	"github.com/example/guardpost/internal/db"
	"github.com/example/guardpost/internal/ports/primary"
)

var (
	rosterService   primary.RosterService
	ledgerService   primary.LedgerService
	settingsService primary.SettingsService
	alertService    primary.AlertService
	stateStore      *sqlite.StateStore
	once            sync.Once
)

// RosterService returns the singleton RosterService instance.
func RosterService() primary.RosterService {
	once.Do(initServices)
	return rosterService
}

// LedgerService returns the singleton LedgerService instance.
func LedgerService() primary.LedgerService {
	once.Do(initServices)
	return ledgerService
}

// SettingsService returns the singleton SettingsService instance.
func SettingsService() primary.SettingsService {
	once.Do(initServices)
	return settingsService
}

// AlertService returns the singleton AlertService instance.
func AlertService() primary.AlertService {
	once.Do(initServices)
	return alertService
}

// Monitor returns a new alert monitor announcing to stdout.
// Each call creates a new monitor with fresh dedup state.
func Monitor() *app.Monitor {
	return MonitorWithOutput(os.Stdout)
}

// MonitorWithOutput returns a new alert monitor announcing to the given
// output. This variant allows testing or alternate output destinations.
func MonitorWithOutput(out io.Writer) *app.Monitor {
	once.Do(initServices)
	return app.NewMonitor(stateStore, settingsService, cliadapter.NewAlertNotifier(out))
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	stateStore = sqlite.NewStateStore(database)

	settingsService = app.NewSettingsService(stateStore)
	rosterService = app.NewRosterService(stateStore)
	ledgerService = app.NewLedgerService(stateStore, settingsService)
	alertService = app.NewAlertService(stateStore, settingsService)
}
